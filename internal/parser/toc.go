package parser

import "github.com/dgallion1/mdindex/internal/document"

// BuildTOC folds the ordered section list into a nested outline. A stack of
// open ancestors, seeded with a virtual level-0 root, re-parents each node
// under the nearest prior section with a strictly smaller level, so a heading
// that skips levels still nests under the closest shallower ancestor.
func BuildTOC(sections []document.Section) []*document.TOCNode {
	root := &document.TOCNode{Children: []*document.TOCNode{}}
	stack := []*document.TOCNode{root}

	for _, sec := range sections {
		node := &document.TOCNode{
			ID:       sec.ID,
			Heading:  sec.Heading,
			Level:    sec.Level,
			Children: []*document.TOCNode{},
		}
		for len(stack) > 1 && stack[len(stack)-1].Level >= node.Level {
			stack = stack[:len(stack)-1]
		}
		top := stack[len(stack)-1]
		top.Children = append(top.Children, node)
		stack = append(stack, node)
	}

	return root.Children
}
