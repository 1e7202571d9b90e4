package classify

import (
	"math"
	"regexp"
	"strings"

	"github.com/dgallion1/mdindex/internal/document"
)

// Options are the tuning knobs for document-level classification.
type Options struct {
	SummaryMaxLen int // Summary truncation length in runes.
	MaxKeywords   int // Keyword set cap.
	ReadingWPM    int // Words per minute for reading time.
}

// DefaultOptions returns the standard knobs.
func DefaultOptions() Options {
	return Options{
		SummaryMaxLen: 200,
		MaxKeywords:   20,
		ReadingWPM:    200,
	}
}

// Classification holds every derived document-level attribute.
type Classification struct {
	Summary     string
	Keywords    []string
	Category    string
	ContentType string
	Complexity  string
	WordCount   int
	ReadingTime int
}

var (
	headingLinePattern = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)
	camelCasePattern   = regexp.MustCompile(`\b(?:[a-z]+[A-Z][A-Za-z0-9]*|[A-Z][a-z0-9]+[A-Z][A-Za-z0-9]*)\b`)
	declPattern        = regexp.MustCompile(`(?:function|const|let|var)\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
)

// contentTypeRules are checked in order against the lower-cased body; the
// first match wins.
var contentTypeRules = []struct {
	label  string
	idioms []string
}{
	{"api-reference", []string{"api", "reference"}},
	{"tutorial", []string{"tutorial", "guide"}},
	{"example", []string{"example"}},
	{"setup-guide", []string{"installation", "setup"}},
}

// Classify derives summary, keywords, category, content type, complexity,
// word count, and reading time from a document's body, front-matter, slug,
// and flat code block list.
func Classify(body string, fm document.FrontMatter, slug string, codeBlocks []document.CodeBlock, opts Options) Classification {
	if opts.SummaryMaxLen <= 0 {
		opts.SummaryMaxLen = 200
	}
	if opts.MaxKeywords <= 0 {
		opts.MaxKeywords = 20
	}
	if opts.ReadingWPM <= 0 {
		opts.ReadingWPM = 200
	}

	stripped := stripFencedBlocks(body)
	wordCount := len(strings.Fields(stripped))
	techTerms := len(camelCasePattern.FindAllString(body, -1))

	return Classification{
		Summary:     summarize(stripped, opts.SummaryMaxLen),
		Keywords:    extractKeywords(body, fm, codeBlocks, opts.MaxKeywords),
		Category:    categorize(fm, slug),
		ContentType: contentType(body, fm),
		Complexity:  complexityTier(len(codeBlocks), techTerms, wordCount),
		WordCount:   wordCount,
		ReadingTime: int(math.Ceil(float64(wordCount) / float64(opts.ReadingWPM))),
	}
}

// summarize returns the first non-heading, non-empty paragraph of the
// code-stripped body, truncated with an ellipsis.
func summarize(stripped string, maxLen int) string {
	for _, para := range strings.Split(stripped, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" || strings.HasPrefix(para, "#") {
			continue
		}
		para = strings.Join(strings.Fields(para), " ")
		runes := []rune(para)
		if len(runes) > maxLen {
			return string(runes[:maxLen]) + "..."
		}
		return para
	}
	return ""
}

// extractKeywords builds the capped keyword set: front-matter tags, words of
// four or more characters from headings, camelCase tokens from the body, and
// identifiers declared in code. First found wins; duplicates collapse
// case-insensitively.
func extractKeywords(body string, fm document.FrontMatter, codeBlocks []document.CodeBlock, limit int) []string {
	keywords := []string{}
	seen := map[string]bool{}

	add := func(word string) {
		word = strings.TrimSpace(word)
		if word == "" || len(keywords) >= limit {
			return
		}
		key := strings.ToLower(word)
		if seen[key] {
			return
		}
		seen[key] = true
		keywords = append(keywords, word)
	}

	for _, tag := range fm.Tags {
		add(tag)
	}
	for _, m := range headingLinePattern.FindAllStringSubmatch(body, -1) {
		for _, word := range strings.Fields(m[1]) {
			word = strings.Trim(word, ".,:;!?()[]{}`*_\"'")
			if len([]rune(word)) >= 4 {
				add(word)
			}
		}
	}
	for _, token := range camelCasePattern.FindAllString(body, -1) {
		add(token)
	}
	for _, block := range codeBlocks {
		for _, m := range declPattern.FindAllStringSubmatch(block.Code, -1) {
			add(m[1])
		}
	}

	return keywords
}

// categorize falls back from front-matter category to the slug's first path
// segment to "general".
func categorize(fm document.FrontMatter, slug string) string {
	if fm.Category != "" {
		return fm.Category
	}
	if idx := strings.Index(slug, "/"); idx > 0 {
		return slug[:idx]
	}
	return "general"
}

func contentType(body string, fm document.FrontMatter) string {
	lower := strings.ToLower(body)
	for _, rule := range contentTypeRules {
		for _, idiom := range rule.idioms {
			if strings.Contains(lower, idiom) {
				return rule.label
			}
		}
	}
	if fm.Category != "" {
		return fm.Category
	}
	return "documentation"
}

// complexityTier scores two points per code block, up to ten for technical
// term density, and up to ten for length, then maps the score to a tier.
func complexityTier(codeBlockCount, techTerms, wordCount int) string {
	score := 2*float64(codeBlockCount) +
		math.Min(float64(techTerms)/5, 10) +
		math.Min(float64(wordCount)/200, 10)

	switch {
	case score < 10:
		return document.ComplexityBeginner
	case score < 25:
		return document.ComplexityIntermediate
	default:
		return document.ComplexityAdvanced
	}
}

// stripFencedBlocks removes fenced code blocks, fences included, from the
// body.
func stripFencedBlocks(body string) string {
	lines := strings.Split(body, "\n")
	var kept []string
	inFence := false
	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
			continue
		}
		if !inFence {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
