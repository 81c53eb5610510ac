package cmd

import (
	"fmt"

	"github.com/go-loom/loom/cmd/loom/internal/fixture"
	"github.com/go-loom/loom/pkg/selector"
)

func init() {
	RegisterCommand(&Command{
		Name:  "query",
		Short: "List elements matching a selector",
		Long: `Load a YAML node tree and print the elements matching a selector,
in depth-first pre-order.

The fixture file needs only a "tree" key; see the repository's
testdata for the format.`,
		Usage: "loom query <fixture.yaml> <selector>",
		Run:   runQuery,
	})
}

func runQuery(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("query requires a fixture file and a selector")
	}

	f, err := fixture.Load(args[0])
	if err != nil {
		return err
	}
	root, err := f.BuildTree()
	if err != nil {
		return err
	}
	sel, err := selector.Parse(args[1])
	if err != nil {
		return err
	}

	matches := selector.QueryAll(root, sel)
	for _, el := range matches {
		fmt.Println(el)
	}
	fmt.Printf("%d match(es)\n", len(matches))
	return nil
}
