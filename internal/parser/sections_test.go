package parser

import (
	"strings"
	"testing"
)

func TestExtractSections_HeadingLevels(t *testing.T) {
	body := `# Title

Intro text.

## Section A

Section A content.

### Subsection A1

Deep content.

## Section B

Section B content.
`
	sections := ExtractSections(body)
	if len(sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(sections))
	}

	tests := []struct {
		heading string
		level   int
		content string
	}{
		{"Title", 1, "Intro text."},
		{"Section A", 2, "Section A content."},
		{"Subsection A1", 3, "Deep content."},
		{"Section B", 2, "Section B content."},
	}
	for i, tt := range tests {
		sec := sections[i]
		if sec.Heading != tt.heading {
			t.Errorf("section %d: expected heading %q, got %q", i, tt.heading, sec.Heading)
		}
		if sec.Level != tt.level {
			t.Errorf("section %d: expected level %d, got %d", i, tt.level, sec.Level)
		}
		if sec.Content != tt.content {
			t.Errorf("section %d: expected content %q, got %q", i, tt.content, sec.Content)
		}
	}
}

func TestExtractSections_ContentStopsAtAnyHeadingLevel(t *testing.T) {
	body := "## Parent\n\nparent text\n\n### Child\n\nchild text\n"
	sections := ExtractSections(body)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if strings.Contains(sections[0].Content, "child text") {
		t.Errorf("parent content must not include subsection text, got %q", sections[0].Content)
	}
}

func TestExtractSections_LeadingProseDiscarded(t *testing.T) {
	body := "Some intro prose before any heading.\n\n# First\n\nbody\n"
	sections := ExtractSections(body)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if strings.Contains(sections[0].Content, "intro prose") {
		t.Errorf("leading prose must not land in a section, got %q", sections[0].Content)
	}
}

func TestExtractSections_LineNumbers(t *testing.T) {
	body := "# First\n\ntext\n\n## Second\n"
	sections := ExtractSections(body)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].LineNumber != 1 {
		t.Errorf("expected line 1, got %d", sections[0].LineNumber)
	}
	if sections[1].LineNumber != 5 {
		t.Errorf("expected line 5, got %d", sections[1].LineNumber)
	}
}

func TestExtractSections_ListsAndLinks(t *testing.T) {
	body := `# Features

- first item
- second item
  * nested item
1. numbered item

See [the docs](https://example.com/docs) and [api](/api).
`
	sections := ExtractSections(body)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	sec := sections[0]

	wantLists := []string{"first item", "second item", "nested item", "numbered item"}
	if len(sec.Lists) != len(wantLists) {
		t.Fatalf("expected %d list items, got %d: %v", len(wantLists), len(sec.Lists), sec.Lists)
	}
	for i, want := range wantLists {
		if sec.Lists[i] != want {
			t.Errorf("list %d: expected %q, got %q", i, want, sec.Lists[i])
		}
	}

	if len(sec.Links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(sec.Links))
	}
	if sec.Links[0].Text != "the docs" || sec.Links[0].URL != "https://example.com/docs" {
		t.Errorf("unexpected first link: %+v", sec.Links[0])
	}
	if sec.Links[1].Text != "api" || sec.Links[1].URL != "/api" {
		t.Errorf("unexpected second link: %+v", sec.Links[1])
	}
}

func TestExtractSections_CodeBlockScopedToSection(t *testing.T) {
	body := "# Usage\n\n```go\nfmt.Println(\"hi\")\n```\n\n# Other\n\nno code here\n"
	sections := ExtractSections(body)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if len(sections[0].CodeBlocks) != 1 {
		t.Fatalf("expected 1 code block in first section, got %d", len(sections[0].CodeBlocks))
	}
	if sections[0].CodeBlocks[0].Language != "go" {
		t.Errorf("expected language go, got %q", sections[0].CodeBlocks[0].Language)
	}
	if len(sections[1].CodeBlocks) != 0 {
		t.Errorf("expected no code blocks in second section, got %d", len(sections[1].CodeBlocks))
	}
	// The fence stays part of the section content.
	if !strings.Contains(sections[0].Content, "```go") {
		t.Errorf("expected fence retained in content, got %q", sections[0].Content)
	}
}

func TestExtractSections_HeadingInsideFenceIgnored(t *testing.T) {
	body := "# Shell\n\n```bash\n# this is a comment, not a heading\necho hi\n```\n"
	sections := ExtractSections(body)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if len(sections[0].CodeBlocks) != 1 {
		t.Fatalf("expected 1 code block, got %d", len(sections[0].CodeBlocks))
	}
}

func TestExtractSections_NoHeadings(t *testing.T) {
	sections := ExtractSections("plain prose only\n\nmore prose\n")
	if len(sections) != 0 {
		t.Fatalf("expected no sections, got %d", len(sections))
	}
}

func TestExtractSections_SevenHashesIsNotAHeading(t *testing.T) {
	body := "# Real\n\n####### not a heading\n"
	sections := ExtractSections(body)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if !strings.Contains(sections[0].Content, "####### not a heading") {
		t.Errorf("expected seven-hash line kept as content, got %q", sections[0].Content)
	}
}

func TestExtractSections_FlatAndScopedViewsAgree(t *testing.T) {
	body := "# A\n\n```go\nfirst()\n```\n\n## B\n\n```js\nsecond()\n```\n\n```\nthird\n```\n"
	sections := ExtractSections(body)
	flat := ExtractCodeBlocks(body)

	var scoped []string
	for _, sec := range sections {
		for _, block := range sec.CodeBlocks {
			scoped = append(scoped, block.Code)
		}
	}
	if len(scoped) != len(flat) {
		t.Fatalf("scoped view has %d blocks, flat view has %d", len(scoped), len(flat))
	}
	for i, block := range flat {
		if scoped[i] != block.Code {
			t.Errorf("block %d: scoped %q, flat %q", i, scoped[i], block.Code)
		}
	}
}
