package parser

import (
	"bytes"

	"github.com/adrg/frontmatter"

	"github.com/dgallion1/mdindex/internal/document"
)

// ParseFrontMatter splits raw source into its metadata header and markdown
// body. An unparsable header is silent degradation: the front-matter comes
// back empty and the full source is treated as the body.
func ParseFrontMatter(source []byte) (document.FrontMatter, []byte) {
	var fm document.FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &fm)
	if err != nil {
		return document.FrontMatter{}, source
	}
	return fm, body
}
