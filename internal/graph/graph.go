package graph

import (
	"context"

	"github.com/exploride/social-gateway/internal/domain"
)

// OEmbedRequest carries the caller-facing parameters of an embed-HTML lookup.
type OEmbedRequest struct {
	URL        string
	MaxWidth   string
	OmitScript string
}

//go:generate go run go.uber.org/mock/mockgen -source=graph.go -destination=mocks/mock.go -package=mocks
type Client interface {
	// PagePosts returns the raw posts of a Facebook page. A non-success
	// upstream status is a hard error carrying the upstream message.
	PagePosts(ctx context.Context, pageID string, limit int) ([]*domain.RawPost, error)

	// InstagramAccountID resolves the Instagram business account linked to a
	// Facebook page. A non-success upstream status means "no data" and yields
	// ("", nil), not an error.
	InstagramAccountID(ctx context.Context, pageID string) (string, error)

	// InstagramMedia returns the raw media of an Instagram account. Error
	// semantics match PagePosts.
	InstagramMedia(ctx context.Context, igUserID string, limit int) ([]*domain.RawMediaItem, error)

	// OEmbed returns embed HTML for a Facebook URL. Requires a configured
	// access token.
	OEmbed(ctx context.Context, req OEmbedRequest) (string, error)
}
