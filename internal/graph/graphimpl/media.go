package graphimpl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/exploride/social-gateway/internal/domain"
	"github.com/exploride/social-gateway/pkg/errors"
)

const mediaFields = "id,caption,media_type,media_url,permalink,thumbnail_url,timestamp," +
	"children{media_type,media_url,thumbnail_url}"

func (g *GraphImpl) InstagramAccountID(ctx context.Context, pageID string) (string, error) {
	q := url.Values{}
	q.Set("fields", "instagram_business_account{id,username}")
	q.Set("access_token", g.token)

	requestURL := fmt.Sprintf("%s/%s?%s", g.baseURL, url.PathEscape(pageID), q.Encode())

	var payload struct {
		InstagramBusinessAccount *struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"instagram_business_account"`
		Error *graphError `json:"error"`
	}
	status, err := g.fetchJSON(ctx, "ig_account", requestURL, &payload)
	if err != nil {
		return "", errors.Wrap(err, "IG account lookup failed")
	}
	if !is2xx(status) {
		// Lookup failures mean "no data", not an error for the caller.
		var msg string
		if payload.Error != nil {
			msg = payload.Error.Message
		}
		g.logger.Error("IG account lookup returned an error", "status", status, "message", msg)
		return "", nil
	}
	if payload.InstagramBusinessAccount == nil {
		return "", nil
	}
	return payload.InstagramBusinessAccount.ID, nil
}

func (g *GraphImpl) InstagramMedia(ctx context.Context, igUserID string, limit int) ([]*domain.RawMediaItem, error) {
	q := url.Values{}
	q.Set("fields", mediaFields)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("access_token", g.token)

	requestURL := fmt.Sprintf("%s/%s/media?%s", g.baseURL, url.PathEscape(igUserID), q.Encode())

	var payload struct {
		Data  []*domain.RawMediaItem `json:"data"`
		Error *graphError            `json:"error"`
	}
	status, err := g.fetchJSON(ctx, "ig_media", requestURL, &payload)
	if err != nil {
		return nil, errors.Wrap(err, "IG media fetch failed")
	}
	if !is2xx(status) {
		var msg string
		if payload.Error != nil {
			msg = payload.Error.Message
		}
		return nil, errors.Wrap(errors.NewUpstream(status, msg), "IG media fetch failed")
	}
	return payload.Data, nil
}
