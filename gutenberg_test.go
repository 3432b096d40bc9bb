package distant

import (
	"strings"
	"testing"
)

func TestStripBoilerplate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantBody  string
		wantFound bool
	}{
		{
			"both markers",
			"header junk\n*** START OF THE PROJECT GUTENBERG EBOOK PERSUASION ***\nthe story itself\n*** END OF THE PROJECT GUTENBERG EBOOK PERSUASION ***\nlicense junk",
			"the story itself",
			true,
		},
		{
			"this variant",
			"*** START OF THIS PROJECT GUTENBERG EBOOK ***\nbody\n*** END OF THIS PROJECT GUTENBERG EBOOK ***",
			"body",
			true,
		},
		{
			"start only",
			"front matter\n*** START OF THE PROJECT GUTENBERG EBOOK X ***\nbody to the end",
			"body to the end",
			true,
		},
		{
			"end only",
			"body first\n*** END OF THE PROJECT GUTENBERG EBOOK X ***\ntrailing license",
			"body first",
			true,
		},
		{
			"no markers is fail-open",
			"  just a plain text  ",
			"just a plain text",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, found := StripBoilerplate(tt.text)
			if found != tt.wantFound {
				t.Errorf("found = %v, want %v", found, tt.wantFound)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	got := CollapseWhitespace("a\n\nb\t c   d\r\ne")
	if got != "a b c d e" {
		t.Errorf("got %q", got)
	}
}

func TestExtractMetadata(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		filename   string
		wantTitle  string
		wantAuthor string
	}{
		{
			"header lines",
			"The Project Gutenberg eBook\nTitle: Persuasion\nAuthor: Jane Austen\n\nbody",
			"pg105.txt",
			"Persuasion",
			"Jane Austen",
		},
		{
			"missing header falls back to filename",
			"no header here",
			"pg105.txt",
			"Text 105",
			"Unknown",
		},
		{
			"title only",
			"Title: Cranford\n",
			"pg394.txt",
			"Cranford",
			"Unknown",
		},
		{
			"header past the scan limit is ignored",
			strings.Repeat("filler\n", 120) + "Title: Too Deep\n",
			"pg1.txt",
			"Text 1",
			"Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, author := ExtractMetadata(tt.raw, tt.filename)
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			if author != tt.wantAuthor {
				t.Errorf("author = %q, want %q", author, tt.wantAuthor)
			}
		})
	}
}
