package graph

import (
	"strings"

	"github.com/peircelab/peirce/pkg/errors"
)

// Parse builds a canonical Graph from its textual bracket notation.
//
// The input must be a matching "(...)" pair (sheet of assertion) or "[...]"
// pair (cut); anything else fails with ErrCodeMalformedInput. The content
// between the delimiters is a comma-separated list split at bracket depth
// zero, so commas inside nested cuts do not split the outer list. Elements
// starting with '[' are parsed recursively as child cuts; all other non-empty
// elements are atoms, trimmed of surrounding whitespace and validated with
// [errors.ValidateAtom].
//
// The returned graph is canonicalized, so Parse(s).String() is the canonical
// form of s.
func Parse(text string) (*Graph, error) {
	s := strings.TrimSpace(text)
	if len(s) < 2 {
		return nil, errors.New(errors.ErrCodeMalformedInput, "input %q is too short to be a graph", text)
	}

	g := &Graph{}
	switch {
	case s[0] == '(' && s[len(s)-1] == ')':
		g.Sheet = true
	case s[0] == '[' && s[len(s)-1] == ']':
		g.Sheet = false
	default:
		return nil, errors.New(errors.ErrCodeMalformedInput,
			"outer delimiters of %q are not a matching () or [] pair", s)
	}

	elements, err := splitLevel(s[1 : len(s)-1])
	if err != nil {
		return nil, err
	}

	for _, elem := range elements {
		if elem == "" {
			continue
		}
		if elem[0] == '[' {
			child, err := Parse(elem)
			if err != nil {
				return nil, err
			}
			g.Children = append(g.Children, child)
			continue
		}
		if err := errors.ValidateAtom(elem); err != nil {
			return nil, err
		}
		g.Atoms = append(g.Atoms, elem)
	}

	g.Canonicalize()
	return g, nil
}

// splitLevel splits s into its depth-zero elements, tracking bracket nesting
// so commas inside child cuts are not split points. Each element is trimmed.
// Unbalanced brackets are a parse error.
func splitLevel(s string) ([]string, error) {
	var elements []string
	depth := 0
	start := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return nil, errors.New(errors.ErrCodeMalformedInput, "unbalanced ']' in %q", s)
			}
		case ',':
			if depth == 0 {
				elements = append(elements, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errors.New(errors.ErrCodeMalformedInput, "unbalanced '[' in %q", s)
	}

	elements = append(elements, strings.TrimSpace(s[start:]))
	return elements, nil
}

// String renders the graph in canonical bracket notation: child cuts first,
// then atoms, joined by ", ", between delimiters chosen by polarity. For a
// canonical graph g, Parse(g.String()) yields a graph equal to g.
func (g *Graph) String() string {
	var b strings.Builder
	g.render(&b)
	return b.String()
}

func (g *Graph) render(b *strings.Builder) {
	left, right := byte('['), byte(']')
	if g.Sheet {
		left, right = '(', ')'
	}

	b.WriteByte(left)
	for i, child := range g.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		child.render(b)
	}
	for i, atom := range g.Atoms {
		if i > 0 || len(g.Children) > 0 {
			b.WriteString(", ")
		}
		b.WriteString(atom)
	}
	b.WriteByte(right)
}
