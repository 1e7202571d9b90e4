package parser

import (
	"regexp"
	"strings"

	"github.com/dgallion1/mdindex/internal/document"
)

var (
	headingPattern  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	listItemPattern = regexp.MustCompile(`^\s*(?:[-*+]|\d+[.)])\s+(.+)$`)
	linkPattern     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// ExtractSections splits a markdown body into heading-delimited sections in
// document order. A section's content runs from the line after its heading to
// the next heading of any level; lines before the first heading belong to no
// section. Heading, list, and link detection is suspended inside fenced code
// blocks, while the fence lines themselves stay in the section content.
func ExtractSections(body string) []document.Section {
	lines := strings.Split(body, "\n")

	sections := []document.Section{}
	var current *document.Section
	var buf []string

	closeSection := func() {
		if current == nil {
			return
		}
		current.Content = strings.TrimSpace(strings.Join(buf, "\n"))
		current.ContentPlain = PlainText(current.Content)
		sections = append(sections, *current)
		current = nil
		buf = nil
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if strings.HasPrefix(line, "```") {
			block, consumed := readFencedBlock(lines, i)
			if current != nil {
				current.CodeBlocks = append(current.CodeBlocks, block)
				buf = append(buf, lines[i:i+consumed]...)
			}
			i += consumed - 1
			continue
		}

		if m := headingPattern.FindStringSubmatch(line); m != nil {
			closeSection()
			heading := strings.TrimSpace(m[2])
			current = &document.Section{
				ID:         HeadingID(heading),
				Level:      len(m[1]),
				Heading:    heading,
				LineNumber: i + 1,
				CodeBlocks: []document.CodeBlock{},
				Lists:      []string{},
				Links:      []document.Link{},
			}
			continue
		}

		if current == nil {
			continue
		}
		buf = append(buf, line)

		if m := listItemPattern.FindStringSubmatch(line); m != nil {
			current.Lists = append(current.Lists, strings.TrimSpace(m[1]))
		}
		for _, m := range linkPattern.FindAllStringSubmatch(line, -1) {
			current.Links = append(current.Links, document.Link{Text: m[1], URL: m[2]})
		}
	}
	closeSection()

	return sections
}
