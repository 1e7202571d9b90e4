package parser

import (
	"strings"

	"github.com/dgallion1/mdindex/internal/document"
)

// ExtractCodeBlocks scans the whole body for fence pairs, independent of
// section boundaries, and returns the blocks in document order.
func ExtractCodeBlocks(body string) []document.CodeBlock {
	lines := strings.Split(body, "\n")
	blocks := []document.CodeBlock{}
	for i := 0; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "```") {
			block, consumed := readFencedBlock(lines, i)
			blocks = append(blocks, block)
			i += consumed - 1
		}
	}
	return blocks
}

// readFencedBlock reads the fence opened at lines[start]. An unterminated
// fence runs to the end of the input. consumed counts the fence lines plus
// the body.
func readFencedBlock(lines []string, start int) (document.CodeBlock, int) {
	info := strings.TrimSpace(strings.TrimPrefix(lines[start], "```"))
	language := info
	if language == "" {
		language = "plaintext"
	}

	var bodyLines []string
	end := -1
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "```") {
			end = i
			break
		}
		bodyLines = append(bodyLines, lines[i])
	}

	consumed := len(lines) - start
	if end >= 0 {
		consumed = end - start + 1
	}

	code := strings.Join(bodyLines, "\n")
	return document.CodeBlock{
		Language:  language,
		Code:      code,
		LineCount: len(bodyLines),
		Purpose:   ClassifyPurpose(code),
	}, consumed
}

// purposeRules are checked in order and the first matching idiom wins. The
// ordering is load-bearing: a block containing both a type declaration and an
// assertion classifies as test.
var purposeRules = []struct {
	purpose string
	idioms  []string
}{
	{document.PurposeTest, []string{"expect(", "assert", "describe(", "it(", "test("}},
	{document.PurposeExample, []string{"example", "usage", "demo"}},
	{document.PurposeTypeDefinition, []string{"interface ", "type ", "struct ", "class ", "enum "}},
}

// ClassifyPurpose tags a code body by ordered substring matches over its
// lower-cased text.
func ClassifyPurpose(code string) string {
	lower := strings.ToLower(code)
	for _, rule := range purposeRules {
		for _, idiom := range rule.idioms {
			if strings.Contains(lower, idiom) {
				return rule.purpose
			}
		}
	}
	return document.PurposeImplementation
}
