package domain

// RawPost is a single Facebook page post as the Graph API returns it.
// Every field is optional; absent fields decode to their zero value and
// nested objects to nil.
type RawPost struct {
	ID           string          `json:"id"`
	Message      string          `json:"message"`
	PermalinkURL string          `json:"permalink_url"`
	Permalink    string          `json:"permalink"`
	Link         string          `json:"link"`
	IsPublished  *bool           `json:"is_published"`
	CreatedTime  string          `json:"created_time"`
	FullPicture  string          `json:"full_picture"`
	Attachments  *AttachmentList `json:"attachments"`
}

// PermalinkOrEmpty returns the first present permalink variant.
func (p *RawPost) PermalinkOrEmpty() string {
	switch {
	case p.PermalinkURL != "":
		return p.PermalinkURL
	case p.Permalink != "":
		return p.Permalink
	default:
		return p.Link
	}
}

type AttachmentList struct {
	Data []*Attachment `json:"data"`
}

// Attachment is one post attachment node. Subattachments nest the same
// shape, so a post is effectively a tree of these.
type Attachment struct {
	Media          *AttachmentMedia  `json:"media"`
	UnshimmedURL   string            `json:"unshimmed_url"`
	URL            string            `json:"url"`
	Target         *AttachmentTarget `json:"target"`
	Subattachments *AttachmentList   `json:"subattachments"`
}

type AttachmentMedia struct {
	Image           *AttachmentImage `json:"image"`
	ThumbnailSrc    string           `json:"thumbnail_src"`
	ThumbnailURL    string           `json:"thumbnail_url"`
	PreviewImageURL string           `json:"preview_image_url"`
	Src             string           `json:"src"`
	Source          string           `json:"source"`
}

type AttachmentImage struct {
	Src string `json:"src"`
}

type AttachmentTarget struct {
	URL string `json:"url"`
}

// MediaRef is one deduplicated media URL attached to a display post.
type MediaRef struct {
	Src string `json:"src"`
}

// DisplayPost is the display-ready shape of a page post.
type DisplayPost struct {
	ID           string     `json:"id"`
	Message      string     `json:"message"`
	PermalinkURL string     `json:"permalink_url"`
	CreatedTime  string     `json:"created_time"`
	IsPublished  bool       `json:"is_published"`
	Media        []MediaRef `json:"media"`
}
