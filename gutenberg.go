package distant

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	gutenbergStart = regexp.MustCompile(`(?i)\*\*\* ?START OF (?:THE|THIS) PROJECT GUTENBERG[^*]*\*\*\*`)
	gutenbergEnd   = regexp.MustCompile(`(?i)\*\*\* ?END OF (?:THE|THIS) PROJECT GUTENBERG[^*]*\*\*\*`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// StripBoilerplate removes Project Gutenberg front and back matter delimited
// by the standard START/END markers. The body between the markers is returned
// otherwise unchanged. Missing markers are not an error: the trimmed input is
// returned with found=false so the caller can log that the text may still
// carry front or back matter.
func StripBoilerplate(text string) (body string, found bool) {
	start := gutenbergStart.FindStringIndex(text)
	end := gutenbergEnd.FindStringIndex(text)

	switch {
	case start != nil && end != nil && start[1] <= end[0]:
		return strings.TrimSpace(text[start[1]:end[0]]), true
	case start != nil:
		return strings.TrimSpace(text[start[1]:]), true
	case end != nil:
		return strings.TrimSpace(text[:end[0]]), true
	default:
		return strings.TrimSpace(text), false
	}
}

// CollapseWhitespace folds every whitespace run into a single space. No case
// change, no reflow beyond the fold.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// metadataScanLimit bounds how far into a file the Title:/Author: header
// lines are looked for. Gutenberg headers sit well inside the first 100 lines.
const metadataScanLimit = 100

// ExtractMetadata resolves a text's title and author from the embedded
// Title:/Author: header lines, falling back to a name derived from the
// filename when the header is absent.
func ExtractMetadata(raw, filename string) (title, author string) {
	lines := strings.Split(raw, "\n")
	if len(lines) > metadataScanLimit {
		lines = lines[:metadataScanLimit]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if t, ok := strings.CutPrefix(line, "Title:"); ok && title == "" {
			title = strings.TrimSpace(t)
		}
		if a, ok := strings.CutPrefix(line, "Author:"); ok && author == "" {
			author = strings.TrimSpace(a)
		}
		if title != "" && author != "" {
			break
		}
	}

	if title == "" {
		base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		title = strings.Replace(base, "pg", "Text ", 1)
	}
	if author == "" {
		author = "Unknown"
	}
	return title, author
}
