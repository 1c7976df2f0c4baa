package domain

import "testing"

func TestYouTubeExtractor_ExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{"watch URL", "https://www.youtube.com/watch?v=6R8ffRRJcrg", "6R8ffRRJcrg", true},
		{"watch URL with extra params", "https://youtube.com/watch?feature=share&v=abc_DEF-123&t=10", "abc_DEF-123", true},
		{"mobile host", "https://m.youtube.com/watch?v=6R8ffRRJcrg", "6R8ffRRJcrg", true},
		{"short link", "https://youtu.be/6R8ffRRJcrg", "6R8ffRRJcrg", true},
		{"short link with query", "https://youtu.be/6R8ffRRJcrg?t=42", "6R8ffRRJcrg", true},
		{"embed", "https://www.youtube-nocookie.com/embed/6R8ffRRJcrg", "6R8ffRRJcrg", true},
		{"shorts", "https://www.youtube.com/shorts/6R8ffRRJcrg/", "6R8ffRRJcrg", true},
		{"music", "https://music.youtube.com/watch?v=6R8ffRRJcrg", "6R8ffRRJcrg", true},
		{"upper case host", "https://WWW.YOUTUBE.COM/watch?v=6R8ffRRJcrg", "6R8ffRRJcrg", true},
		{"watch without id", "https://www.youtube.com/watch", "", false},
		{"id with illegal characters", "https://www.youtube.com/watch?v=abc%20def", "", false},
		{"channel page", "https://www.youtube.com/channel/UC123", "", false},
		{"other host", "https://vimeo.com/123456", "", false},
		{"lookalike host", "https://notyoutube.com/watch?v=6R8ffRRJcrg", "", false},
		{"not a URL", "not a url", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := YouTubeExtractor{}.ExtractVideoID(tt.url)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("ExtractVideoID(%q) = (%q, %v), want (%q, %v)", tt.url, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestDeriveVideoID(t *testing.T) {
	if got := DeriveVideoID(YouTubeExtractor{}, nil); got != nil {
		t.Errorf("DeriveVideoID(nil) = %q, want nil", *got)
	}

	if got := DeriveVideoID(nil, StringPtr("https://youtu.be/abc")); got != nil {
		t.Errorf("DeriveVideoID with nil extractor = %q, want nil", *got)
	}

	if got := DeriveVideoID(YouTubeExtractor{}, StringPtr("https://example.com")); got != nil {
		t.Errorf("DeriveVideoID(unknown host) = %q, want nil", *got)
	}

	got := DeriveVideoID(YouTubeExtractor{}, StringPtr("https://youtu.be/abc"))
	if got == nil || *got != "abc" {
		t.Errorf("DeriveVideoID(short link) = %v, want abc", got)
	}

	custom := VideoIDExtractorFunc(func(raw string) (string, bool) { return raw + "!", true })
	got = DeriveVideoID(custom, StringPtr("x"))
	if got == nil || *got != "x!" {
		t.Errorf("DeriveVideoID(custom) = %v, want x!", got)
	}
}
