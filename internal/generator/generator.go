package generator

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dgallion1/mdindex/internal/document"
)

// Generator fans a complete set of document records out into the JSON
// artifact tree under destDir. Artifacts are pure projections of the record
// set and never read each other.
type Generator struct {
	destDir string
	log     *slog.Logger
}

func New(destDir string, log *slog.Logger) *Generator {
	return &Generator{destDir: destDir, log: log}
}

// Generate writes one file per document plus the shared index artifacts, and
// returns the number of files written. Writes are not transactional: a
// failure aborts, leaving earlier files in place.
func (g *Generator) Generate(docs []*document.Document) (int, error) {
	if err := os.MkdirAll(g.destDir, 0o755); err != nil {
		return 0, fmt.Errorf("destination directory %s: %w", g.destDir, err)
	}

	written := 0
	docBytes := 0
	for _, doc := range docs {
		n, err := g.writeJSON(doc.Slug+".json", doc)
		if err != nil {
			return written, err
		}
		written++
		docBytes += n
	}

	generatedAt := time.Now().UTC().Format(time.RFC3339)

	index := buildIndex(docs, generatedAt)
	search := buildSearch(docs)
	categories := buildCategories(docs)
	metadata := buildMetadata(docs, generatedAt)

	sizes := map[string]int{"docs": docBytes}
	for name, artifact := range map[string]any{
		"index":      index,
		"search":     search,
		"categories": categories,
		"metadata":   metadata,
	} {
		b, err := json.MarshalIndent(artifact, "", "  ")
		if err != nil {
			return written, fmt.Errorf("marshal %s artifact: %w", name, err)
		}
		sizes[name] = len(b)
	}

	routes := buildRoutes(docs, sizes, generatedAt)

	for _, out := range []struct {
		name     string
		artifact any
	}{
		{"index.json", index},
		{"search.json", search},
		{"categories.json", categories},
		{"routes.json", routes},
		{"metadata.json", metadata},
	} {
		if _, err := g.writeJSON(out.name, out.artifact); err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}

func (g *Generator) writeJSON(rel string, v any) (int, error) {
	path := filepath.Join(g.destDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("create directory for %s: %w", rel, err)
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshal %s: %w", rel, err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	g.log.Debug("artifact written", "path", rel, "bytes", len(b))
	return len(b), nil
}

// IndexEntry is the lightweight per-document projection carried by the
// corpus index: metadata only, never content.
type IndexEntry struct {
	Slug                 string   `json:"slug"`
	Title                string   `json:"title"`
	Summary              string   `json:"summary"`
	Category             string   `json:"category"`
	ContentType          string   `json:"contentType"`
	Complexity           string   `json:"complexity"`
	Keywords             []string `json:"keywords"`
	WordCount            int      `json:"wordCount"`
	EstimatedReadingTime int      `json:"estimatedReadingTime"`
	SectionCount         int      `json:"sectionCount"`
	CodeExampleCount     int      `json:"codeExampleCount"`
	LastModified         string   `json:"lastModified"`
}

// IndexArtifact is the corpus index with aggregate counts.
type IndexArtifact struct {
	Documents         []IndexEntry `json:"documents"`
	Total             int          `json:"total"`
	TotalWords        int          `json:"totalWords"`
	TotalCodeExamples int          `json:"totalCodeExamples"`
	Categories        []string     `json:"categories"`
	ContentTypes      []string     `json:"contentTypes"`
	GeneratedAt       string       `json:"generatedAt"`
}

func buildIndex(docs []*document.Document, generatedAt string) IndexArtifact {
	entries := make([]IndexEntry, 0, len(docs))
	totalWords := 0
	totalCode := 0
	categories := map[string]bool{}
	contentTypes := map[string]bool{}

	for _, doc := range docs {
		entries = append(entries, IndexEntry{
			Slug:                 doc.Slug,
			Title:                doc.Title,
			Summary:              doc.Summary,
			Category:             doc.Category,
			ContentType:          doc.ContentType,
			Complexity:           doc.Complexity,
			Keywords:             doc.Keywords,
			WordCount:            doc.WordCount,
			EstimatedReadingTime: doc.EstimatedReadingTime,
			SectionCount:         len(doc.Sections),
			CodeExampleCount:     len(doc.CodeExamples),
			LastModified:         doc.LastModified,
		})
		totalWords += doc.WordCount
		totalCode += len(doc.CodeExamples)
		categories[doc.Category] = true
		contentTypes[doc.ContentType] = true
	}

	return IndexArtifact{
		Documents:         entries,
		Total:             len(docs),
		TotalWords:        totalWords,
		TotalCodeExamples: totalCode,
		Categories:        sortedKeys(categories),
		ContentTypes:      sortedKeys(contentTypes),
		GeneratedAt:       generatedAt,
	}
}

// SearchSection is a per-section heading plus markdown-stripped text.
type SearchSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// SearchEntry carries what a search index needs and nothing heavier: no raw
// content, no code.
type SearchEntry struct {
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Summary     string          `json:"summary"`
	Keywords    []string        `json:"keywords"`
	Category    string          `json:"category"`
	ContentType string          `json:"contentType"`
	Sections    []SearchSection `json:"sections"`
}

// SearchArtifact is the lightweight full-corpus search projection.
type SearchArtifact struct {
	Documents []SearchEntry `json:"documents"`
}

func buildSearch(docs []*document.Document) SearchArtifact {
	entries := make([]SearchEntry, 0, len(docs))
	for _, doc := range docs {
		sections := make([]SearchSection, 0, len(doc.Sections))
		for _, sec := range doc.Sections {
			sections = append(sections, SearchSection{
				Heading: sec.Heading,
				Content: sec.ContentPlain,
			})
		}
		entries = append(entries, SearchEntry{
			Slug:        doc.Slug,
			Title:       doc.Title,
			Summary:     doc.Summary,
			Keywords:    doc.Keywords,
			Category:    doc.Category,
			ContentType: doc.ContentType,
			Sections:    sections,
		})
	}
	return SearchArtifact{Documents: entries}
}

// CategoryEntry is one document summarized under its category.
type CategoryEntry struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

func buildCategories(docs []*document.Document) map[string][]CategoryEntry {
	categories := map[string][]CategoryEntry{}
	for _, doc := range docs {
		categories[doc.Category] = append(categories[doc.Category], CategoryEntry{
			Slug:    doc.Slug,
			Title:   doc.Title,
			Summary: doc.Summary,
		})
	}
	return categories
}

// Route describes one generated endpoint for a consuming agent.
type Route struct {
	Path       string `json:"path"`
	Purpose    string `json:"purpose"`
	ApproxSize int    `json:"approxSize"`
}

// RouteDoc is the truncated per-document listing in the discovery manifest.
type RouteDoc struct {
	Slug     string   `json:"slug"`
	Path     string   `json:"path"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}

// RoutesArtifact is a self-describing discovery manifest over the whole
// artifact set.
type RoutesArtifact struct {
	Routes      []Route    `json:"routes"`
	Documents   []RouteDoc `json:"documents"`
	GeneratedAt string     `json:"generatedAt"`
}

func buildRoutes(docs []*document.Document, sizes map[string]int, generatedAt string) RoutesArtifact {
	routes := []Route{
		{Path: "/index.json", Purpose: "corpus index with per-document metadata and aggregate counts", ApproxSize: sizes["index"]},
		{Path: "/search.json", Purpose: "lightweight search projection with per-section plain text", ApproxSize: sizes["search"]},
		{Path: "/categories.json", Purpose: "documents grouped by category", ApproxSize: sizes["categories"]},
		{Path: "/routes.json", Purpose: "this discovery manifest", ApproxSize: 0},
		{Path: "/metadata.json", Purpose: "corpus-wide statistics", ApproxSize: sizes["metadata"]},
		{Path: "/{slug}.json", Purpose: "full document record per source file", ApproxSize: sizes["docs"]},
	}

	entries := make([]RouteDoc, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, RouteDoc{
			Slug:     doc.Slug,
			Path:     "/" + doc.Slug + ".json",
			Title:    doc.Title,
			Summary:  truncate(doc.Summary, 100),
			Keywords: headKeywords(doc.Keywords, 5),
		})
	}

	return RoutesArtifact{
		Routes:      routes,
		Documents:   entries,
		GeneratedAt: generatedAt,
	}
}

// MetadataArtifact is the corpus-wide statistics view.
type MetadataArtifact struct {
	TotalDocuments         int            `json:"totalDocuments"`
	TotalWords             int            `json:"totalWords"`
	TotalCodeExamples      int            `json:"totalCodeExamples"`
	TotalSections          int            `json:"totalSections"`
	ComplexityDistribution map[string]int `json:"complexityDistribution"`
	LanguageDistribution   map[string]int `json:"languageDistribution"`
	GeneratedAt            string         `json:"generatedAt"`
}

func buildMetadata(docs []*document.Document, generatedAt string) MetadataArtifact {
	meta := MetadataArtifact{
		ComplexityDistribution: map[string]int{},
		LanguageDistribution:   map[string]int{},
		GeneratedAt:            generatedAt,
	}
	for _, doc := range docs {
		meta.TotalDocuments++
		meta.TotalWords += doc.WordCount
		meta.TotalSections += len(doc.Sections)
		meta.TotalCodeExamples += len(doc.CodeExamples)
		meta.ComplexityDistribution[doc.Complexity]++
		for _, block := range doc.CodeExamples {
			meta.LanguageDistribution[block.Language]++
		}
	}
	return meta
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

func headKeywords(keywords []string, n int) []string {
	if len(keywords) <= n {
		return keywords
	}
	return keywords[:n]
}
