package domain

// Instagram media type discriminants as the Graph API spells them.
const (
	MediaTypeImage         = "IMAGE"
	MediaTypeVideo         = "VIDEO"
	MediaTypeCarouselAlbum = "CAROUSEL_ALBUM"
)

// RawMediaItem is a single Instagram media entry as the Graph API returns it.
type RawMediaItem struct {
	ID           string         `json:"id"`
	Caption      string         `json:"caption"`
	MediaType    string         `json:"media_type"`
	MediaURL     string         `json:"media_url"`
	Permalink    string         `json:"permalink"`
	ThumbnailURL string         `json:"thumbnail_url"`
	Timestamp    string         `json:"timestamp"`
	Children     *MediaChildren `json:"children"`
}

type MediaChildren struct {
	Data []*RawMediaChild `json:"data"`
}

type RawMediaChild struct {
	MediaType    string `json:"media_type"`
	MediaURL     string `json:"media_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// DisplayMediaItem is the display-ready shape of an Instagram media entry.
// Src is never empty; items without a resolvable source are dropped.
type DisplayMediaItem struct {
	ID        string `json:"id"`
	Caption   string `json:"caption"`
	Type      string `json:"type"`
	Src       string `json:"src"`
	Permalink string `json:"permalink"`
	Timestamp string `json:"timestamp"`
}
