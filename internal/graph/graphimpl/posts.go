package graphimpl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/exploride/social-gateway/internal/domain"
	"github.com/exploride/social-gateway/pkg/errors"
)

const postFields = "id,message,permalink_url,created_time,full_picture,is_published," +
	"attachments{media,unshimmed_url,url,target,subattachments{media,unshimmed_url,url,target}}"

func (g *GraphImpl) PagePosts(ctx context.Context, pageID string, limit int) ([]*domain.RawPost, error) {
	q := url.Values{}
	q.Set("fields", postFields)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("access_token", g.token)

	requestURL := fmt.Sprintf("%s/%s/posts?%s", g.baseURL, url.PathEscape(pageID), q.Encode())

	var payload struct {
		Data  []*domain.RawPost `json:"data"`
		Error *graphError       `json:"error"`
	}
	status, err := g.fetchJSON(ctx, "fb_posts", requestURL, &payload)
	if err != nil {
		return nil, errors.Wrap(err, "FB posts fetch failed")
	}
	if !is2xx(status) {
		var msg string
		if payload.Error != nil {
			msg = payload.Error.Message
		}
		return nil, errors.Wrap(errors.NewUpstream(status, msg), "FB posts fetch failed")
	}
	return payload.Data, nil
}
