package parser

import (
	"path/filepath"
	"strings"

	slug "github.com/goliatone/go-slug"
)

// DocumentSlug derives the stable identifier for a file from its
// root-relative path: extension stripped, separators normalized to "/".
func DocumentSlug(relPath string) string {
	p := filepath.ToSlash(relPath)
	return strings.TrimSuffix(p, filepath.Ext(p))
}

// HeadingID slugifies heading text for section and TOC identifiers.
func HeadingID(heading string) string {
	if normalized, err := slug.Normalize(heading); err == nil && normalized != "" {
		return normalized
	}
	// Degenerate headings (all punctuation, emoji-only) get a manual fallback.
	id := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, strings.TrimSpace(heading))
	return strings.Trim(id, "-")
}
