package models

import "testing"

func TestExtractYouTubeID(t *testing.T) {
	tests := []struct {
		url    string
		wantID string
		wantOK bool
	}{
		{"https://www.youtube.com/watch?v=abc123XYZ_-&t=5s", "abc123XYZ_-", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=abc#fragment", "abc", true},
		{"https://example.com/not-youtube", "", false},
		{"", "", false},
		{"not a url at all", "", false},
	}

	for _, tt := range tests {
		id, ok := ExtractYouTubeID(tt.url)
		if ok != tt.wantOK {
			t.Errorf("ExtractYouTubeID(%q): ok = %v, want %v", tt.url, ok, tt.wantOK)
			continue
		}
		if id != tt.wantID {
			t.Errorf("ExtractYouTubeID(%q): id = %q, want %q", tt.url, id, tt.wantID)
		}
	}
}

func TestVideoThumbnailURL(t *testing.T) {
	v := &Video{YouTubeID: "dQw4w9WgXcQ"}
	want := "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg"
	if got := v.ThumbnailURL(); got != want {
		t.Errorf("ThumbnailURL: got %q, want %q", got, want)
	}

	custom := "https://cdn.example.com/thumb.jpg"
	v.CustomThumbnailURL = &custom
	if got := v.ThumbnailURL(); got != custom {
		t.Errorf("ThumbnailURL with override: got %q, want %q", got, custom)
	}
}

func TestPhotoIsDataURI(t *testing.T) {
	p := &Photo{URL: "data:image/jpeg;base64,AAAA"}
	if !p.IsDataURI() {
		t.Error("expected data URI to be detected")
	}
	p.URL = "https://images.example.com/a.jpg"
	if p.IsDataURI() {
		t.Error("remote URL misdetected as data URI")
	}
}

func TestValidHomeSection(t *testing.T) {
	for _, s := range []HomeSection{HomeSectionHero, HomeSectionTop, HomeSectionBottom} {
		if !ValidHomeSection(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if ValidHomeSection("sidebar") {
		t.Error("unknown section accepted")
	}
}
