package cmd

import (
	"fmt"

	"github.com/go-loom/loom/cmd/loom/internal/fixture"
	"github.com/go-loom/loom/pkg/dom"
	"github.com/go-loom/loom/pkg/observe"
	"github.com/go-loom/loom/pkg/selector"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Replay mutations through a directive",
		Long: `Load a YAML node tree, bind a children-observing directive to the
fixture's target element, then replay the fixture's mutation script.
Every write the directive performs on the source property is printed
as it happens, including the empty write on unbind.

Fixture keys used: tree, target (selector), property, filter
(optional selector) and mutations.`,
		Usage: "loom watch <fixture.yaml>",
		Run:   runWatch,
	})
}

// printingSource logs every property write as the directive performs it.
type printingSource struct{}

func (printingSource) SetNodeProperty(name string, nodes []dom.Node) {
	fmt.Printf("  %s = [", name)
	for i, n := range nodes {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Print(n)
	}
	fmt.Println("]")
}

func runWatch(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("watch requires a fixture file")
	}

	f, err := fixture.Load(args[0])
	if err != nil {
		return err
	}
	if f.Target == "" {
		return fmt.Errorf("fixture has no target selector")
	}
	root, err := f.BuildTree()
	if err != nil {
		return err
	}
	target, err := firstMatch(root, f.Target)
	if err != nil {
		return err
	}

	opts := observe.Options{Property: f.Property}
	if f.Filter != "" {
		sel, err := selector.Parse(f.Filter)
		if err != nil {
			return err
		}
		opts.Filter = observe.Matching(sel)
	}

	directive := observe.NewChildrenDirective(opts)

	fmt.Printf("bind %s\n", target)
	directive.Bind(printingSource{}, nil, target)

	for i, m := range f.Mutations {
		if err := applyMutation(root, m, i); err != nil {
			return err
		}
	}

	fmt.Println("unbind")
	directive.Unbind(printingSource{}, nil, target)
	return nil
}

func applyMutation(root *dom.Element, m fixture.Mutation, index int) error {
	switch {
	case m.Append != nil:
		parent, err := firstMatch(root, m.Append.Parent)
		if err != nil {
			return err
		}
		nodes, err := fixture.BuildNodes([]fixture.NodeSpec{m.Append.Node})
		if err != nil {
			return err
		}
		fmt.Printf("append %s -> %s\n", nodes[0], parent)
		parent.AppendChild(nodes[0])
	case m.Remove != nil:
		parent, err := firstMatch(root, m.Remove.Parent)
		if err != nil {
			return err
		}
		children := parent.Children()
		if m.Remove.Index < 0 || m.Remove.Index >= len(children) {
			return fmt.Errorf("mutation %d: index %d out of range (%d children)",
				index, m.Remove.Index, len(children))
		}
		fmt.Printf("remove %s from %s\n", children[m.Remove.Index], parent)
		parent.RemoveChild(children[m.Remove.Index])
	case m.Distribute != nil:
		host, err := firstMatch(root, m.Distribute.Host)
		if err != nil {
			return err
		}
		nodes, err := fixture.BuildNodes(m.Distribute.Nodes)
		if err != nil {
			return err
		}
		fmt.Printf("distribute %d node(s) to %s\n", len(nodes), host)
		host.Distribute(nodes...)
	default:
		return fmt.Errorf("mutation %d: no operation set", index)
	}
	return nil
}

func firstMatch(root *dom.Element, input string) (*dom.Element, error) {
	sel, err := selector.Parse(input)
	if err != nil {
		return nil, err
	}
	matches := selector.QueryAll(root, sel)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no element matches %q", input)
	}
	return matches[0], nil
}
