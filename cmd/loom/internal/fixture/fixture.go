// Package fixture decodes YAML-described node trees and mutation scripts
// for the loom CLI.
package fixture

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/go-loom/loom/pkg/dom"
	"github.com/go-loom/loom/pkg/errors"
)

// Fixture is the top-level document: a tree plus an optional observation
// setup and mutation script for the watch command.
type Fixture struct {
	Tree NodeSpec `yaml:"tree"`

	// Target selects the element the watch directive binds to.
	Target string `yaml:"target,omitempty"`
	// Property names the source property to populate (default "nodes").
	Property string `yaml:"property,omitempty"`
	// Filter optionally narrows the observed nodes by selector.
	Filter string `yaml:"filter,omitempty"`

	Mutations []Mutation `yaml:"mutations,omitempty"`
}

// NodeSpec describes one node. Exactly one of Tag, Text or Comment must be
// set; Attrs, Children and Slots apply to element nodes only.
type NodeSpec struct {
	Tag      string            `yaml:"tag,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Children []NodeSpec        `yaml:"children,omitempty"`
	Slots    []string          `yaml:"slots,omitempty"`

	Text    string `yaml:"text,omitempty"`
	Comment string `yaml:"comment,omitempty"`
}

// Mutation is one scripted step. Exactly one operation must be set.
type Mutation struct {
	Append     *AppendOp     `yaml:"append,omitempty"`
	Remove     *RemoveOp     `yaml:"remove,omitempty"`
	Distribute *DistributeOp `yaml:"distribute,omitempty"`
}

// AppendOp appends a node to the first element matching Parent.
type AppendOp struct {
	Parent string   `yaml:"parent"`
	Node   NodeSpec `yaml:"node"`
}

// RemoveOp removes the child at Index from the first element matching Parent.
type RemoveOp struct {
	Parent string `yaml:"parent"`
	Index  int    `yaml:"index"`
}

// DistributeOp distributes nodes to the slots of the first element matching
// Host.
type DistributeOp struct {
	Host  string     `yaml:"host"`
	Nodes []NodeSpec `yaml:"nodes"`
}

// Load reads and decodes a fixture file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return Decode(data)
}

// Decode parses fixture YAML.
func Decode(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap("fixture.Decode", errors.KindParse, err)
	}
	if f.Property == "" {
		f.Property = "nodes"
	}
	return &f, nil
}

// BuildTree materializes the fixture's tree. The root must be an element.
func (f *Fixture) BuildTree() (*dom.Element, error) {
	node, err := buildNode(f.Tree)
	if err != nil {
		return nil, err
	}
	root, ok := node.(*dom.Element)
	if !ok {
		return nil, errors.New("fixture.BuildTree", errors.KindParse,
			"tree root must be an element, got %s", node.Kind())
	}
	return root, nil
}

// BuildNodes materializes a list of node specs.
func BuildNodes(specs []NodeSpec) ([]dom.Node, error) {
	nodes := make([]dom.Node, 0, len(specs))
	for _, spec := range specs {
		n, err := buildNode(spec)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func buildNode(spec NodeSpec) (dom.Node, error) {
	set := 0
	if spec.Tag != "" {
		set++
	}
	if spec.Text != "" {
		set++
	}
	if spec.Comment != "" {
		set++
	}
	if set != 1 {
		return nil, errors.New("fixture.buildNode", errors.KindParse,
			"node must set exactly one of tag, text or comment")
	}

	switch {
	case spec.Text != "":
		return dom.NewText(spec.Text), nil
	case spec.Comment != "":
		return dom.NewComment(spec.Comment), nil
	}

	el := dom.NewElement(spec.Tag, sortedAttrs(spec.Attrs)...)
	for _, name := range spec.Slots {
		el.AttachSlot(dom.NewSlot(name))
	}
	for _, childSpec := range spec.Children {
		child, err := buildNode(childSpec)
		if err != nil {
			return nil, err
		}
		el.AppendChild(child)
	}
	return el, nil
}

// sortedAttrs flattens the attribute map in name order so a rebuilt tree
// renders deterministically.
func sortedAttrs(attrs map[string]string) []dom.Attr {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]dom.Attr, 0, len(names))
	for _, name := range names {
		out = append(out, dom.Attr{Name: name, Value: attrs[name]})
	}
	return out
}
