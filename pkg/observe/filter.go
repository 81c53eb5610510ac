package observe

import (
	"github.com/go-loom/loom/pkg/dom"
	"github.com/go-loom/loom/pkg/selector"
)

// NodeFilter decides whether a node is included in the computed list.
// It receives the node, its index, and the full raw list so filters may
// depend on position or siblings.
//
// Filters must be pure: no side effects, and no mutation of the nodes slice
// they are given. A filter is shared across every recomputation of its
// directive and may be called any number of times.
type NodeFilter func(node dom.Node, index int, nodes []dom.Node) bool

// ByElement returns a filter accepting exactly the element-kind nodes,
// dropping text and comment nodes.
func ByElement() NodeFilter {
	return func(node dom.Node, index int, nodes []dom.Node) bool {
		return node.Kind() == dom.KindElement
	}
}

// Matching returns a filter accepting element-kind nodes that satisfy the
// selector. Non-element nodes are always rejected.
func Matching(sel selector.Selector) NodeFilter {
	return func(node dom.Node, index int, nodes []dom.Node) bool {
		el, ok := node.(*dom.Element)
		return ok && sel.Matches(el)
	}
}
