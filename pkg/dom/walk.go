package dom

// Walk traverses the tree rooted at node in depth-first pre-order.
// The visitor returns false to stop the traversal.
func Walk(node Node, visit func(Node) bool) {
	walk(node, visit)
}

func walk(node Node, visit func(Node) bool) bool {
	if node == nil {
		return true
	}
	if !visit(node) {
		return false
	}
	if el, ok := node.(*Element); ok {
		for _, child := range el.children {
			if !walk(child, visit) {
				return false
			}
		}
	}
	return true
}
