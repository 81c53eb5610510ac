// Package selector provides CSS-like element matching for the Loom engine.
//
// The supported grammar is the subset behavior filters need: a selector is a
// comma-separated list of compounds, where a compound combines an optional
// tag name (or *) with any number of #id, .class and [attr] / [attr=value]
// qualifiers, e.g. `div.item[title]`, `#root`, `li.odd, li.last`.
// Combinators (descendant, child, sibling) are not supported.
package selector

import (
	"strings"

	"github.com/go-loom/loom/pkg/dom"
)

// Selector is a parsed, reusable match pattern over elements.
// The zero value matches nothing. Selectors are immutable and safe to share.
type Selector struct {
	groups []compound
}

// compound is one comma-separated alternative.
type compound struct {
	tag     string // empty or "*" matches any tag
	id      string
	classes []string
	attrs   []attrMatch
}

type attrMatch struct {
	name  string
	value string
	exact bool // true when [name=value], false when [name]
}

// Matches reports whether the element satisfies the selector.
// It is pure and stateless; a Selector may be reused across any number of
// match calls.
func (s Selector) Matches(e *dom.Element) bool {
	if e == nil {
		return false
	}
	for _, g := range s.groups {
		if g.matches(e) {
			return true
		}
	}
	return false
}

func (g compound) matches(e *dom.Element) bool {
	if g.tag != "" && g.tag != "*" && e.Tag() != g.tag {
		return false
	}
	if g.id != "" && e.ID() != g.id {
		return false
	}
	for _, class := range g.classes {
		if !e.HasClass(class) {
			return false
		}
	}
	for _, a := range g.attrs {
		value, ok := e.Attr(a.name)
		if !ok {
			return false
		}
		if a.exact && value != a.value {
			return false
		}
	}
	return true
}

// String reconstructs the selector text.
func (s Selector) String() string {
	parts := make([]string, 0, len(s.groups))
	for _, g := range s.groups {
		parts = append(parts, g.String())
	}
	return strings.Join(parts, ", ")
}

func (g compound) String() string {
	var sb strings.Builder
	sb.WriteString(g.tag)
	if g.id != "" {
		sb.WriteByte('#')
		sb.WriteString(g.id)
	}
	for _, class := range g.classes {
		sb.WriteByte('.')
		sb.WriteString(class)
	}
	for _, a := range g.attrs {
		sb.WriteByte('[')
		sb.WriteString(a.name)
		if a.exact {
			sb.WriteByte('=')
			sb.WriteString(a.value)
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

// QueryAll walks the tree rooted at root and returns the elements matching
// the selector in depth-first pre-order.
func QueryAll(root dom.Node, s Selector) []*dom.Element {
	var out []*dom.Element
	dom.Walk(root, func(n dom.Node) bool {
		if el, ok := n.(*dom.Element); ok && s.Matches(el) {
			out = append(out, el)
		}
		return true
	})
	return out
}
