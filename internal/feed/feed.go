// Package feed turns raw Graph API payloads into display-ready, ordered,
// deduplicated item lists. Everything here is a pure function over
// already-decoded data; fetching lives in internal/graph.
package feed

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/exploride/social-gateway/internal/domain"
)

const (
	MaxLimit          = 50
	DefaultMediaLimit = 9
	DefaultPostLimit  = 6
)

// ParseLimit parses a caller-supplied limit parameter. Non-numeric or
// non-positive values fall back to def; the result is clamped to MaxLimit.
func ParseLimit(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return def
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// NormalizeMediaItem resolves the single best source URL for one media item.
// The second return is false when no source could be resolved, in which case
// the item must be dropped.
func NormalizeMediaItem(m *domain.RawMediaItem) (domain.DisplayMediaItem, bool) {
	if m == nil {
		return domain.DisplayMediaItem{}, false
	}

	var src string
	switch m.MediaType {
	case domain.MediaTypeImage:
		src = m.MediaURL
	case domain.MediaTypeVideo:
		src = m.ThumbnailURL
		if src == "" {
			src = m.MediaURL
		}
	case domain.MediaTypeCarouselAlbum:
		if child := firstChild(m.Children); child != nil {
			src = child.ThumbnailURL
			if src == "" {
				src = child.MediaURL
			}
		}
	}

	if src == "" {
		return domain.DisplayMediaItem{}, false
	}

	return domain.DisplayMediaItem{
		ID:        m.ID,
		Caption:   m.Caption,
		Type:      m.MediaType,
		Src:       src,
		Permalink: m.Permalink,
		Timestamp: m.Timestamp,
	}, true
}

// firstChild returns the first non-nil child of an album, or nil. Only that
// child's fallback chain is consulted, even when it yields no URL.
func firstChild(children *domain.MediaChildren) *domain.RawMediaChild {
	if children == nil {
		return nil
	}
	for _, c := range children.Data {
		if c != nil {
			return c
		}
	}
	return nil
}

// NormalizeMedia maps a raw media payload to display items, newest first.
// The requested limit bounds the upstream fetch, not this transform: every
// resolvable item the upstream returned is kept.
func NormalizeMedia(items []*domain.RawMediaItem) []domain.DisplayMediaItem {
	out := lo.FilterMap(items, func(m *domain.RawMediaItem, _ int) (domain.DisplayMediaItem, bool) {
		return NormalizeMediaItem(m)
	})

	sortByTimestampDesc(out, func(it domain.DisplayMediaItem) string { return it.Timestamp })
	return out
}

// NormalizePosts filters, truncates, builds and orders page posts.
// Filtering and truncation happen on the raw list, before any display post
// is built.
func NormalizePosts(posts []*domain.RawPost, limit int) []domain.DisplayPost {
	accepted := lo.Filter(posts, func(p *domain.RawPost, _ int) bool {
		if p == nil {
			return false
		}
		if p.IsPublished != nil && !*p.IsPublished {
			return false
		}
		return p.PermalinkOrEmpty() != ""
	})

	if limit > 0 && len(accepted) > limit {
		accepted = accepted[:limit]
	}

	out := lo.Map(accepted, func(p *domain.RawPost, _ int) domain.DisplayPost {
		return domain.DisplayPost{
			ID:           p.ID,
			Message:      p.Message,
			PermalinkURL: p.PermalinkOrEmpty(),
			CreatedTime:  p.CreatedTime,
			IsPublished:  p.IsPublished == nil || *p.IsPublished,
			Media:        CollectPostMedia(p),
		}
	})

	sortByTimestampDesc(out, func(p domain.DisplayPost) string { return p.CreatedTime })
	return out
}

// CollectPostMedia gathers every distinct media URL a post carries: the
// top-level preview picture first, then a depth-first walk of the attachment
// tree. One dedup set spans the whole post, so a URL repeated at any nesting
// depth appears once.
func CollectPostMedia(p *domain.RawPost) []domain.MediaRef {
	media := make([]domain.MediaRef, 0, 2)
	seen := make(map[string]struct{})

	push := func(src string) {
		if src == "" {
			return
		}
		if _, ok := seen[src]; ok {
			return
		}
		seen[src] = struct{}{}
		media = append(media, domain.MediaRef{Src: src})
	}

	if p.FullPicture != "" {
		push(p.FullPicture)
	}

	if p.Attachments != nil {
		for _, att := range p.Attachments.Data {
			extractAttachmentMedia(att, push)
		}
	}

	return media
}

// extractAttachmentMedia contributes at most one URL per attachment node:
// the first candidate field, in fixed priority order, holding a non-empty
// http(s) string. Subattachments are then walked with the same push.
func extractAttachmentMedia(att *domain.Attachment, push func(string)) {
	if att == nil {
		return
	}

	for _, candidate := range attachmentCandidates(att) {
		if isHTTPURL(candidate) {
			push(candidate)
			break
		}
	}

	if att.Subattachments != nil {
		for _, sub := range att.Subattachments.Data {
			extractAttachmentMedia(sub, push)
		}
	}
}

func attachmentCandidates(att *domain.Attachment) []string {
	candidates := make([]string, 0, 9)
	if m := att.Media; m != nil {
		if m.Image != nil {
			candidates = append(candidates, m.Image.Src)
		}
		candidates = append(candidates, m.ThumbnailSrc, m.ThumbnailURL, m.PreviewImageURL, m.Src, m.Source)
	}
	candidates = append(candidates, att.UnshimmedURL, att.URL)
	if att.Target != nil {
		candidates = append(candidates, att.Target.URL)
	}
	return candidates
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Timestamps arrive as ISO-8601 strings, either RFC 3339 or the Graph API's
// numeric-offset spelling. Anything unparseable counts as the epoch and so
// sorts after every dated item.
var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05-0700"}

func parseTimestamp(s string) int64 {
	if s == "" {
		return 0
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}

func sortByTimestampDesc[T any](items []T, key func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return parseTimestamp(key(items[i])) > parseTimestamp(key(items[j]))
	})
}
