package feed

import (
	"reflect"
	"testing"

	"github.com/exploride/social-gateway/internal/domain"
)

func boolPtr(b bool) *bool { return &b }

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		def  int
		want int
	}{
		{"empty falls back to default", "", 9, 9},
		{"non-numeric falls back to default", "abc", 6, 6},
		{"negative falls back to default", "-5", 6, 6},
		{"zero falls back to default", "0", 9, 9},
		{"valid value kept", "12", 9, 12},
		{"clamped to max", "100", 9, 50},
		{"surrounding whitespace tolerated", " 7 ", 9, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLimit(tt.raw, tt.def); got != tt.want {
				t.Fatalf("ParseLimit(%q, %d) = %d, want %d", tt.raw, tt.def, got, tt.want)
			}
		})
	}
}

func TestNormalizeMediaItem(t *testing.T) {
	tests := []struct {
		name    string
		item    *domain.RawMediaItem
		wantSrc string
		wantOK  bool
	}{
		{
			name:    "image uses media url",
			item:    &domain.RawMediaItem{MediaType: domain.MediaTypeImage, MediaURL: "https://x/a.jpg"},
			wantSrc: "https://x/a.jpg",
			wantOK:  true,
		},
		{
			name:   "image without media url is dropped",
			item:   &domain.RawMediaItem{MediaType: domain.MediaTypeImage},
			wantOK: false,
		},
		{
			name: "video prefers thumbnail",
			item: &domain.RawMediaItem{
				MediaType: domain.MediaTypeVideo, MediaURL: "https://x/v.mp4", ThumbnailURL: "https://x/t.jpg",
			},
			wantSrc: "https://x/t.jpg",
			wantOK:  true,
		},
		{
			name:    "video falls back to media url",
			item:    &domain.RawMediaItem{MediaType: domain.MediaTypeVideo, MediaURL: "https://x/v.mp4"},
			wantSrc: "https://x/v.mp4",
			wantOK:  true,
		},
		{
			name: "album takes first truthy child with its own fallback",
			item: &domain.RawMediaItem{
				MediaType: domain.MediaTypeCarouselAlbum,
				Children: &domain.MediaChildren{Data: []*domain.RawMediaChild{
					{MediaURL: "https://x/a.jpg"},
					{ThumbnailURL: "https://x/b.jpg"},
				}},
			},
			wantSrc: "https://x/a.jpg",
			wantOK:  true,
		},
		{
			name: "album skips nil children",
			item: &domain.RawMediaItem{
				MediaType: domain.MediaTypeCarouselAlbum,
				Children: &domain.MediaChildren{Data: []*domain.RawMediaChild{
					nil,
					{ThumbnailURL: "https://x/b.jpg"},
				}},
			},
			wantSrc: "https://x/b.jpg",
			wantOK:  true,
		},
		{
			name: "album with sourceless first child is dropped, second child not consulted",
			item: &domain.RawMediaItem{
				MediaType: domain.MediaTypeCarouselAlbum,
				Children: &domain.MediaChildren{Data: []*domain.RawMediaChild{
					{},
					{ThumbnailURL: "https://x/b.jpg"},
				}},
			},
			wantOK: false,
		},
		{
			name:   "album without children is dropped",
			item:   &domain.RawMediaItem{MediaType: domain.MediaTypeCarouselAlbum},
			wantOK: false,
		},
		{
			name:   "unknown type is dropped",
			item:   &domain.RawMediaItem{MediaType: "STORY", MediaURL: "https://x/a.jpg"},
			wantOK: false,
		},
		{
			name:   "nil item is dropped",
			item:   nil,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeMediaItem(tt.item)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.Src != tt.wantSrc {
				t.Fatalf("src = %q, want %q", got.Src, tt.wantSrc)
			}
		})
	}
}

func TestNormalizeMediaOrdering(t *testing.T) {
	items := []*domain.RawMediaItem{
		{ID: "old", MediaType: domain.MediaTypeImage, MediaURL: "https://x/1.jpg", Timestamp: "2023-01-01T00:00:00+0000"},
		{ID: "undated-a", MediaType: domain.MediaTypeImage, MediaURL: "https://x/2.jpg"},
		{ID: "new", MediaType: domain.MediaTypeImage, MediaURL: "https://x/3.jpg", Timestamp: "2024-06-01T00:00:00+0000"},
		{ID: "undated-b", MediaType: domain.MediaTypeImage, MediaURL: "https://x/4.jpg", Timestamp: "not-a-date"},
		{ID: "dropped", MediaType: domain.MediaTypeImage},
	}

	got := NormalizeMedia(items)

	wantIDs := []string{"new", "old", "undated-a", "undated-b"}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d items, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
	for _, it := range got {
		if it.Src == "" {
			t.Errorf("item %q has empty src", it.ID)
		}
	}
}

func TestNormalizeMediaDoesNotTruncate(t *testing.T) {
	// The limit bounds the upstream request only; an over-returning upstream
	// flows through untouched.
	items := make([]*domain.RawMediaItem, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, &domain.RawMediaItem{
			MediaType: domain.MediaTypeImage,
			MediaURL:  "https://x/a.jpg",
		})
	}
	if got := NormalizeMedia(items); len(got) != 12 {
		t.Fatalf("got %d items, want 12", len(got))
	}
}

func TestNormalizeMediaIdempotent(t *testing.T) {
	items := []*domain.RawMediaItem{
		{ID: "a", MediaType: domain.MediaTypeImage, MediaURL: "https://x/a.jpg", Timestamp: "2024-01-02T00:00:00+0000"},
		{ID: "b", MediaType: domain.MediaTypeVideo, ThumbnailURL: "https://x/b.jpg"},
	}
	first := NormalizeMedia(items)
	second := NormalizeMedia(items)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated runs differ: %v vs %v", first, second)
	}
}

func TestNormalizePostsFiltering(t *testing.T) {
	posts := []*domain.RawPost{
		nil,
		{ID: "unpublished", PermalinkURL: "https://fb/p1", IsPublished: boolPtr(false)},
		{ID: "no-permalink", Message: "hello"},
		{ID: "ok", PermalinkURL: "https://fb/p2"},
		{ID: "via-link", Link: "https://fb/p3", IsPublished: boolPtr(true)},
	}

	got := NormalizePosts(posts, 10)

	if len(got) != 2 {
		t.Fatalf("got %d posts, want 2", len(got))
	}
	for _, p := range got {
		if p.ID == "unpublished" || p.ID == "no-permalink" {
			t.Errorf("post %q should have been filtered out", p.ID)
		}
		if !p.IsPublished {
			t.Errorf("post %q: publish flag should default true", p.ID)
		}
	}
}

func TestNormalizePostsPermalinkVariants(t *testing.T) {
	posts := []*domain.RawPost{
		{ID: "a", PermalinkURL: "https://fb/primary", Permalink: "https://fb/secondary"},
		{ID: "b", Permalink: "https://fb/secondary"},
		{ID: "c", Link: "https://fb/tertiary"},
	}
	got := NormalizePosts(posts, 10)
	want := map[string]string{
		"a": "https://fb/primary",
		"b": "https://fb/secondary",
		"c": "https://fb/tertiary",
	}
	for _, p := range got {
		if p.PermalinkURL != want[p.ID] {
			t.Errorf("post %q: permalink = %q, want %q", p.ID, p.PermalinkURL, want[p.ID])
		}
	}
}

func TestNormalizePostsTruncatesBeforeBuilding(t *testing.T) {
	posts := []*domain.RawPost{
		{ID: "p1", PermalinkURL: "https://fb/1", CreatedTime: "2024-01-01T00:00:00+0000"},
		{ID: "p2", PermalinkURL: "https://fb/2", CreatedTime: "2024-03-01T00:00:00+0000"},
		{ID: "p3", PermalinkURL: "https://fb/3", CreatedTime: "2024-02-01T00:00:00+0000"},
	}

	got := NormalizePosts(posts, 2)

	// The first two accepted posts survive, then sort newest first: later
	// posts never displace them even with newer timestamps.
	if len(got) != 2 {
		t.Fatalf("got %d posts, want 2", len(got))
	}
	if got[0].ID != "p2" || got[1].ID != "p1" {
		t.Fatalf("got order %q, %q; want p2, p1", got[0].ID, got[1].ID)
	}
}

func TestNormalizePostsSortOrder(t *testing.T) {
	posts := []*domain.RawPost{
		{ID: "undated", PermalinkURL: "https://fb/1"},
		{ID: "old", PermalinkURL: "https://fb/2", CreatedTime: "2023-05-01T00:00:00+0000"},
		{ID: "new", PermalinkURL: "https://fb/3", CreatedTime: "2024-05-01T00:00:00+0000"},
	}
	got := NormalizePosts(posts, 10)
	wantIDs := []string{"new", "old", "undated"}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestCollectPostMediaDedupAcrossNesting(t *testing.T) {
	dup := "https://x/dup.jpg"
	post := &domain.RawPost{
		FullPicture: "https://x/full.jpg",
		Attachments: &domain.AttachmentList{Data: []*domain.Attachment{
			{
				Media: &domain.AttachmentMedia{Image: &domain.AttachmentImage{Src: dup}},
				Subattachments: &domain.AttachmentList{Data: []*domain.Attachment{
					{Media: &domain.AttachmentMedia{Image: &domain.AttachmentImage{Src: dup}}},
					{Media: &domain.AttachmentMedia{Image: &domain.AttachmentImage{Src: "https://x/sub.jpg"}}},
				}},
			},
		}},
	}

	got := CollectPostMedia(post)

	want := []domain.MediaRef{
		{Src: "https://x/full.jpg"},
		{Src: dup},
		{Src: "https://x/sub.jpg"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCollectPostMediaCandidatePriority(t *testing.T) {
	post := &domain.RawPost{
		Attachments: &domain.AttachmentList{Data: []*domain.Attachment{
			{
				Media: &domain.AttachmentMedia{
					ThumbnailSrc: "https://x/thumb.jpg",
					Src:          "https://x/src.jpg",
				},
				URL: "https://x/link",
			},
		}},
	}

	got := CollectPostMedia(post)
	if len(got) != 1 {
		t.Fatalf("got %d refs, want 1: one URL per attachment node", len(got))
	}
	if got[0].Src != "https://x/thumb.jpg" {
		t.Fatalf("got %q, want the highest-priority candidate", got[0].Src)
	}
}

func TestCollectPostMediaRejectsNonHTTPCandidates(t *testing.T) {
	post := &domain.RawPost{
		Attachments: &domain.AttachmentList{Data: []*domain.Attachment{
			{
				Media: &domain.AttachmentMedia{ThumbnailSrc: "data:image/png;base64,xxx"},
				URL:   "https://x/fallback",
			},
		}},
	}

	got := CollectPostMedia(post)
	if len(got) != 1 || got[0].Src != "https://x/fallback" {
		t.Fatalf("got %v, want the first http(s) candidate", got)
	}
}
