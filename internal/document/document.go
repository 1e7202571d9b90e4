package document

import "encoding/json"

// Document is the fully assembled record for one source file. It is built
// fresh on every pipeline run and is the sole input to artifact generation.
type Document struct {
	Slug                 string      `json:"slug"`
	Title                string      `json:"title"`
	FrontMatter          FrontMatter `json:"frontmatter"`
	Sections             []Section   `json:"sections"`
	CodeExamples         []CodeBlock `json:"codeExamples"`
	TableOfContents      []*TOCNode  `json:"tableOfContents"`
	Summary              string      `json:"summary"`
	Keywords             []string    `json:"keywords"`
	Category             string      `json:"category"`
	ContentType          string      `json:"contentType"`
	Complexity           string      `json:"complexity"`
	WordCount            int         `json:"wordCount"`
	EstimatedReadingTime int         `json:"estimatedReadingTime"`
	FullContent          string      `json:"fullContent"`
	LastModified         string      `json:"lastModified"`
}

// FrontMatter is the typed view of a document's metadata header. Keys the
// pipeline does not recognize are preserved in Extra.
type FrontMatter struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Tags        []string       `yaml:"tags"`
	Category    string         `yaml:"category"`
	Extra       map[string]any `yaml:",inline"`
}

// Map flattens recognized and residual keys into a single key-value view.
// Recognized keys win over residual duplicates.
func (f FrontMatter) Map() map[string]any {
	m := make(map[string]any, len(f.Extra)+4)
	for k, v := range f.Extra {
		m[k] = v
	}
	if f.Title != "" {
		m["title"] = f.Title
	}
	if f.Description != "" {
		m["description"] = f.Description
	}
	if len(f.Tags) > 0 {
		m["tags"] = append([]string(nil), f.Tags...)
	}
	if f.Category != "" {
		m["category"] = f.Category
	}
	return m
}

// MarshalJSON renders the front-matter as the flat key-value map it was
// parsed from, so generated records round-trip arbitrary header keys.
func (f FrontMatter) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Map())
}

// Section is a heading-delimited span of a document. Content runs from the
// line after the heading to the next heading of any level.
type Section struct {
	ID           string      `json:"id"`
	Level        int         `json:"level"`
	Heading      string      `json:"heading"`
	Content      string      `json:"content"`
	ContentPlain string      `json:"contentPlain"`
	LineNumber   int         `json:"lineNumber"`
	CodeBlocks   []CodeBlock `json:"codeBlocks"`
	Lists        []string    `json:"lists"`
	Links        []Link      `json:"links"`
}

// CodeBlock is one fenced block. Language is the fence info string, or
// "plaintext" when the fence carries none.
type CodeBlock struct {
	Language  string `json:"language"`
	Code      string `json:"code"`
	LineCount int    `json:"lineCount"`
	Purpose   string `json:"purpose"`
}

// Link is an inline markdown link scoped to the section it appears in.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// TOCNode is one entry in the nested outline over a document's sections.
type TOCNode struct {
	ID       string     `json:"id"`
	Heading  string     `json:"heading"`
	Level    int        `json:"level"`
	Children []*TOCNode `json:"children"`
}

// Code block purpose tags, in classification priority order.
const (
	PurposeTest           = "test"
	PurposeExample        = "example"
	PurposeTypeDefinition = "type-definition"
	PurposeImplementation = "implementation"
)

// Complexity tiers.
const (
	ComplexityBeginner     = "beginner"
	ComplexityIntermediate = "intermediate"
	ComplexityAdvanced     = "advanced"
)
