package dom

import (
	"strings"
)

// Attr is a single name/value attribute pair. Order is preserved.
type Attr struct {
	Name  string
	Value string
}

// Element is a tag-named node with attributes, children and attached slots.
//
// Element is NOT thread-safe. All mutation and listener registration must
// happen on the engine's single event loop.
type Element struct {
	tag      string
	attrs    []Attr
	parent   *Element
	children []Node
	slots    []*Slot

	childListeners listenerList
}

// NewElement creates an element with the given tag and attributes.
func NewElement(tag string, attrs ...Attr) *Element {
	return &Element{tag: tag, attrs: attrs}
}

// Kind returns KindElement.
func (e *Element) Kind() NodeKind { return KindElement }

// Parent returns the element this node is attached to, or nil.
func (e *Element) Parent() *Element { return e.parent }

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

func (e *Element) setParent(parent *Element) { e.parent = parent }

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing any existing value.
func (e *Element) SetAttr(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// Attrs returns a copy of the attribute list in declaration order.
func (e *Element) Attrs() []Attr {
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// ID returns the element's id attribute, or the empty string.
func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// Classes returns the element's class list.
func (e *Element) Classes() []string {
	class, ok := e.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(class)
}

// HasClass reports whether the element's class list contains name.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// Children returns a fresh snapshot of the child list.
// The returned slice is owned by the caller; mutating it does not affect
// the element.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// ChildCount returns the number of children without allocating.
func (e *Element) ChildCount() int { return len(e.children) }

// AppendChild adds node at the end of the child list.
// A node already attached elsewhere is detached from its old parent first.
func (e *Element) AppendChild(node Node) {
	if node == nil {
		return
	}
	detach(node)
	node.setParent(e)
	e.children = append(e.children, node)
	e.childListeners.fire()
}

// InsertBefore inserts node before ref in the child list.
// If ref is nil or not a child, node is appended.
func (e *Element) InsertBefore(node Node, ref Node) {
	if node == nil {
		return
	}
	// Detach first: if node is already a child of this element, removing it
	// shifts ref's index.
	detach(node)
	index := e.indexOf(ref)
	if index < 0 {
		e.AppendChild(node)
		return
	}
	node.setParent(e)
	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = node
	e.childListeners.fire()
}

// RemoveChild removes node from the child list.
// Returns false if node is not a child of this element.
func (e *Element) RemoveChild(node Node) bool {
	index := e.indexOf(node)
	if index < 0 {
		return false
	}
	e.children = append(e.children[:index], e.children[index+1:]...)
	node.setParent(nil)
	e.childListeners.fire()
	return true
}

// ReplaceChild swaps oldNode for newNode in place.
// Returns false if oldNode is not a child of this element.
func (e *Element) ReplaceChild(newNode Node, oldNode Node) bool {
	if newNode == nil || e.indexOf(oldNode) < 0 {
		return false
	}
	// Replacing a child with itself is a no-op; detaching first would
	// remove the child outright.
	if newNode == oldNode {
		return true
	}
	detach(newNode)
	index := e.indexOf(oldNode)
	if index < 0 {
		return false
	}
	oldNode.setParent(nil)
	newNode.setParent(e)
	e.children[index] = newNode
	e.childListeners.fire()
	return true
}

// OnChildrenChanged registers a listener fired after every structural
// mutation of the child list. Returns a cancel function; once cancelled the
// listener never fires again.
func (e *Element) OnChildrenChanged(fn func()) (cancel func()) {
	return e.childListeners.add(fn)
}

func (e *Element) indexOf(node Node) int {
	if node == nil {
		return -1
	}
	for i, c := range e.children {
		if c == node {
			return i
		}
	}
	return -1
}

func detach(node Node) {
	if p := node.Parent(); p != nil {
		p.RemoveChild(node)
	}
}

// String renders the element's open tag, e.g. `<div id="x" class="a b">`.
func (e *Element) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(e.tag)
	for _, a := range e.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(a.Value)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	return sb.String()
}

// listenerList holds registered callbacks. Cancelling nils the entry so
// in-flight dispatch observes it; cancelled entries are compacted away once
// no dispatch is running, so long-lived elements do not accrue dead slots
// across bind/unbind cycles.
type listenerList struct {
	entries []listenerEntry
	nextID  int
	depth   int // nested fire calls in flight
}

type listenerEntry struct {
	id int
	fn func()
}

func (l *listenerList) add(fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, listenerEntry{id: id, fn: fn})
	return func() {
		for i := range l.entries {
			if l.entries[i].id == id {
				l.entries[i].fn = nil
				break
			}
		}
		if l.depth == 0 {
			l.compact()
		}
	}
}

// fire invokes listeners registered before the mutation. The nil check is
// per call so a listener cancelled mid-dispatch does not fire.
func (l *listenerList) fire() {
	l.depth++
	n := len(l.entries)
	for i := 0; i < n; i++ {
		if fn := l.entries[i].fn; fn != nil {
			fn()
		}
	}
	l.depth--
	if l.depth == 0 {
		l.compact()
	}
}

// compact drops cancelled entries. Must not run while a dispatch is in
// flight: fire iterates by index.
func (l *listenerList) compact() {
	kept := l.entries[:0]
	for _, entry := range l.entries {
		if entry.fn != nil {
			kept = append(kept, entry)
		}
	}
	l.entries = kept
}
