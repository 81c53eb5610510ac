package selector

import (
	"strings"
	"testing"

	"github.com/go-loom/loom/pkg/dom"
	"github.com/go-loom/loom/pkg/errors"
)

func TestParse_Matches(t *testing.T) {
	item := dom.NewElement("li",
		dom.Attr{Name: "id", Value: "first"},
		dom.Attr{Name: "class", Value: "item odd"},
		dom.Attr{Name: "title", Value: "one"},
	)
	other := dom.NewElement("div", dom.Attr{Name: "class", Value: "item"})

	cases := []struct {
		input       string
		wantItem    bool
		wantOther   bool
		description string
	}{
		{"*", true, true, "universal"},
		{"li", true, false, "tag"},
		{"#first", true, false, "id"},
		{".item", true, true, "class"},
		{".item.odd", true, false, "two classes"},
		{"li.item", true, false, "tag plus class"},
		{"[title]", true, false, "attribute presence"},
		{"[title=one]", true, false, "attribute value"},
		{"[title=two]", false, false, "attribute value mismatch"},
		{`[title="one"]`, true, false, "quoted attribute value"},
		{"li, div", true, true, "group"},
		{"span, div", false, true, "group partial"},
		{"li#first.item[title=one]", true, false, "full compound"},
	}

	for _, tc := range cases {
		sel, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("%s: parse %q failed: %v", tc.description, tc.input, err)
		}
		if got := sel.Matches(item); got != tc.wantItem {
			t.Errorf("%s: %q on li element: got %v, want %v", tc.description, tc.input, got, tc.wantItem)
		}
		if got := sel.Matches(other); got != tc.wantOther {
			t.Errorf("%s: %q on div element: got %v, want %v", tc.description, tc.input, got, tc.wantOther)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []string{
		"",
		"div span",
		".",
		"#",
		"[",
		"[title",
		"[title=",
		"[=x]",
		"div >",
		`[title="one]`,
	}

	for _, input := range cases {
		_, err := Parse(input)
		if err == nil {
			t.Errorf("expected parse of %q to fail", input)
			continue
		}
		loomErr, ok := err.(*errors.LoomError)
		if !ok {
			t.Errorf("expected LoomError for %q, got %T", input, err)
			continue
		}
		if loomErr.Kind != errors.KindParse {
			t.Errorf("expected parse kind for %q, got %s", input, loomErr.Kind)
		}
		if !strings.Contains(loomErr.Error(), "position") {
			t.Errorf("expected position in error for %q, got %q", input, loomErr.Error())
		}
	}
}

func TestMustParse_PanicsOnInvalidInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustParse to panic")
		}
	}()
	MustParse("div >")
}

func TestSelector_ZeroValueMatchesNothing(t *testing.T) {
	var sel Selector
	if sel.Matches(dom.NewElement("div")) {
		t.Error("zero selector must not match")
	}
	if sel.Matches(nil) {
		t.Error("nil element must not match")
	}
}

func TestSelector_String(t *testing.T) {
	sel := MustParse(`li#first.item[title=one], div`)
	if got := sel.String(); got != "li#first.item[title=one], div" {
		t.Errorf("unexpected rendering: %s", got)
	}
}

func TestQueryAll(t *testing.T) {
	root := dom.NewElement("ul", dom.Attr{Name: "id", Value: "list"})
	a := dom.NewElement("li", dom.Attr{Name: "class", Value: "item"})
	b := dom.NewElement("li")
	nested := dom.NewElement("li", dom.Attr{Name: "class", Value: "item"})
	b.AppendChild(nested)
	root.AppendChild(a)
	root.AppendChild(b)
	root.AppendChild(dom.NewText("noise"))

	got := QueryAll(root, MustParse(".item"))
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0] != a || got[1] != nested {
		t.Error("expected matches in pre-order")
	}
}
