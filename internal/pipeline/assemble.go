package pipeline

import (
	"time"

	"github.com/dgallion1/mdindex/internal/classify"
	"github.com/dgallion1/mdindex/internal/document"
	"github.com/dgallion1/mdindex/internal/parser"
)

// Assemble builds the canonical document record for one source file:
// front-matter, sections, flat code blocks, outline, and derived
// classification, composed from the raw bytes and root-relative path.
func Assemble(source []byte, relPath string, modified time.Time, opts classify.Options) *document.Document {
	fm, bodyBytes := parser.ParseFrontMatter(source)
	body := string(bodyBytes)

	slug := parser.DocumentSlug(relPath)
	sections := parser.ExtractSections(body)
	codeBlocks := parser.ExtractCodeBlocks(body)
	toc := parser.BuildTOC(sections)
	cls := classify.Classify(body, fm, slug, codeBlocks, opts)

	title := fm.Title
	if title == "" && len(sections) > 0 {
		title = sections[0].Heading
	}
	if title == "" {
		title = slug
	}

	return &document.Document{
		Slug:                 slug,
		Title:                title,
		FrontMatter:          fm,
		Sections:             sections,
		CodeExamples:         codeBlocks,
		TableOfContents:      toc,
		Summary:              cls.Summary,
		Keywords:             cls.Keywords,
		Category:             cls.Category,
		ContentType:          cls.ContentType,
		Complexity:           cls.Complexity,
		WordCount:            cls.WordCount,
		EstimatedReadingTime: cls.ReadingTime,
		FullContent:          body,
		LastModified:         modified.UTC().Format(time.RFC3339),
	}
}
