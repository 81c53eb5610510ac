package dom

import "fmt"

// NodeKind identifies the kind of a node.
type NodeKind int

const (
	// KindElement is a tag-named node with attributes and children.
	KindElement NodeKind = iota
	// KindText is a character data leaf node.
	KindText
	// KindComment is an annotation leaf node ignored by rendering.
	KindComment
)

func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Node is a member of the rendered tree.
//
// The interface is sealed to this package; Element, Text and Comment are the
// only implementations.
type Node interface {
	// Kind reports the node kind.
	Kind() NodeKind
	// Parent returns the element this node is currently attached to, or nil.
	Parent() *Element
	// String returns a short human-readable rendering of the node.
	String() string

	setParent(parent *Element)
}

// Text is a character data leaf node.
type Text struct {
	data   string
	parent *Element
}

// NewText creates a text node with the given character data.
func NewText(data string) *Text {
	return &Text{data: data}
}

// Kind returns KindText.
func (t *Text) Kind() NodeKind { return KindText }

// Parent returns the element this node is attached to, or nil.
func (t *Text) Parent() *Element { return t.parent }

// Data returns the character data.
func (t *Text) Data() string { return t.data }

func (t *Text) String() string { return fmt.Sprintf("#text %q", t.data) }

func (t *Text) setParent(parent *Element) { t.parent = parent }

// Comment is an annotation leaf node.
type Comment struct {
	data   string
	parent *Element
}

// NewComment creates a comment node with the given text.
func NewComment(data string) *Comment {
	return &Comment{data: data}
}

// Kind returns KindComment.
func (c *Comment) Kind() NodeKind { return KindComment }

// Parent returns the element this node is attached to, or nil.
func (c *Comment) Parent() *Element { return c.parent }

// Data returns the comment text.
func (c *Comment) Data() string { return c.data }

func (c *Comment) String() string { return fmt.Sprintf("<!--%s-->", c.data) }

func (c *Comment) setParent(parent *Element) { c.parent = parent }
