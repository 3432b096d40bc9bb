package distant

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Per-text load failures. Each is recorded against its text and skipped; the
// run continues for everything else.
var (
	// ErrEmptyText marks a source with no usable content.
	ErrEmptyText = errors.New("text is empty")

	// ErrNotText marks a source whose content is not readable text.
	ErrNotText = errors.New("content is not readable text")
)

// LoadSourceText reads one source file and resolves its metadata. Plain text
// is the primary format; PDF sources are extracted page by page.
func LoadSourceText(path string) (SourceText, error) {
	filename := filepath.Base(path)

	var raw string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", "":
		data, err := os.ReadFile(path)
		if err != nil {
			return SourceText{}, fmt.Errorf("read %s: %w", filename, err)
		}
		if !utf8.Valid(data) {
			return SourceText{}, fmt.Errorf("%s: %w", filename, ErrNotText)
		}
		raw = string(data)
	case ".pdf":
		text, err := extractPDFText(path)
		if err != nil {
			return SourceText{}, fmt.Errorf("%s: %w", filename, err)
		}
		raw = text
	default:
		return SourceText{}, fmt.Errorf("%s: unsupported file type %s", filename, ext)
	}

	if strings.TrimSpace(raw) == "" {
		return SourceText{}, fmt.Errorf("%s: %w", filename, ErrEmptyText)
	}

	title, author := ExtractMetadata(raw, filename)
	return SourceText{
		Filename: filename,
		Title:    title,
		Author:   author,
		Content:  raw,
	}, nil
}

func extractPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "", ErrNotText
	}
	return b.String(), nil
}

// DiscoverSources lists the analyzable files in a directory, sorted by name
// so runs over the same directory are ordered identically.
func DiscoverSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".pdf":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
