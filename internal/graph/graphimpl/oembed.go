package graphimpl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/exploride/social-gateway/internal/graph"
	"github.com/exploride/social-gateway/pkg/errors"
)

func (g *GraphImpl) OEmbed(ctx context.Context, req graph.OEmbedRequest) (string, error) {
	if g.token == "" {
		return "", errors.Wrap(errors.ErrMissingConfig, "Embed lookup requires an access token")
	}

	// Video URLs need the video oEmbed endpoint, everything else the page one.
	endpoint := "oembed_page"
	if strings.Contains(req.URL, "/videos/") || strings.Contains(req.URL, "/reel/") {
		endpoint = "oembed_video"
	}

	q := url.Values{}
	q.Set("url", req.URL)
	q.Set("fields", "html")
	q.Set("access_token", g.token)
	if req.MaxWidth != "" {
		q.Set("maxwidth", req.MaxWidth)
	}
	if req.OmitScript != "" {
		q.Set("omitscript", req.OmitScript)
	}

	requestURL := fmt.Sprintf("%s/%s?%s", g.baseURL, endpoint, q.Encode())

	var payload struct {
		HTML  string      `json:"html"`
		Error *graphError `json:"error"`
	}
	status, err := g.fetchJSON(ctx, endpoint, requestURL, &payload)
	if err != nil {
		return "", errors.Wrap(err, "Embed lookup failed")
	}
	if !is2xx(status) {
		var msg string
		if payload.Error != nil {
			msg = payload.Error.Message
		}
		return "", errors.Wrap(errors.NewUpstream(status, msg), "Embed lookup failed")
	}
	return payload.HTML, nil
}
