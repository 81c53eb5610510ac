package observe

import (
	"testing"

	"github.com/go-loom/loom/pkg/dom"
	"github.com/go-loom/loom/pkg/selector"
)

// recordingSource records every property write.
type recordingSource struct {
	props  map[string][]dom.Node
	events *[]string // optional shared event log
	writes int
}

func newRecordingSource() *recordingSource {
	return &recordingSource{props: make(map[string][]dom.Node)}
}

func (s *recordingSource) SetNodeProperty(name string, nodes []dom.Node) {
	s.props[name] = nodes
	s.writes++
	if s.events != nil {
		*s.events = append(*s.events, "write:"+name)
	}
}

// fakeWatcher serves a scripted node list and records hook calls.
type fakeWatcher struct {
	nodes        []dom.Node
	observed     []*dom.Element
	disconnected []*dom.Element
	events       *[]string
}

func (w *fakeWatcher) Observe(target *dom.Element) {
	w.observed = append(w.observed, target)
	if w.events != nil {
		*w.events = append(*w.events, "observe")
	}
}

func (w *fakeWatcher) Disconnect(target *dom.Element) {
	w.disconnected = append(w.disconnected, target)
	if w.events != nil {
		*w.events = append(*w.events, "disconnect")
	}
}

func (w *fakeWatcher) Nodes(target *dom.Element) []dom.Node {
	out := make([]dom.Node, len(w.nodes))
	copy(out, w.nodes)
	return out
}

func sameNodes(a, b []dom.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDirective_ComputeNodes_NoFilterReturnsRaw(t *testing.T) {
	raw := []dom.Node{dom.NewElement("div"), dom.NewText("x"), dom.NewElement("span")}
	watcher := &fakeWatcher{nodes: raw}
	d := NewDirective(Options{Property: "items"}, watcher)

	got := d.ComputeNodes(dom.NewElement("host"))
	if !sameNodes(got, raw) {
		t.Errorf("expected raw list unchanged, got %v", got)
	}
}

func TestDirective_ComputeNodes_EmptyRawYieldsEmpty(t *testing.T) {
	watcher := &fakeWatcher{}
	d := NewDirective(Options{Property: "items", Filter: ByElement()}, watcher)

	if got := d.ComputeNodes(dom.NewElement("host")); len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
}

func TestDirective_ComputeNodes_DefaultFilterDropsNonElements(t *testing.T) {
	div := dom.NewElement("div")
	text := dom.NewText("x")
	span := dom.NewElement("span")
	divFoo := dom.NewElement("div", dom.Attr{Name: "class", Value: "foo"})
	watcher := &fakeWatcher{nodes: []dom.Node{div, text, span, divFoo}}

	d := NewDirective(Options{Property: "items", Filter: ByElement()}, watcher)
	got := d.ComputeNodes(dom.NewElement("host"))
	if !sameNodes(got, []dom.Node{div, span, divFoo}) {
		t.Errorf("expected text dropped with order preserved, got %v", got)
	}
}

func TestDirective_ComputeNodes_SelectorFilter(t *testing.T) {
	div := dom.NewElement("div")
	divFoo := dom.NewElement("div", dom.Attr{Name: "class", Value: "foo"})
	watcher := &fakeWatcher{nodes: []dom.Node{div, dom.NewText("x"), dom.NewElement("span"), divFoo}}

	d := NewDirective(Options{
		Property: "items",
		Filter:   Matching(selector.MustParse(".foo")),
	}, watcher)

	got := d.ComputeNodes(dom.NewElement("host"))
	if !sameNodes(got, []dom.Node{divFoo}) {
		t.Errorf("expected only the .foo element, got %v", got)
	}
}

func TestDirective_ComputeNodes_FilterSeesIndexAndFullList(t *testing.T) {
	nodes := []dom.Node{dom.NewElement("a"), dom.NewElement("b"), dom.NewElement("c")}
	watcher := &fakeWatcher{nodes: nodes}

	d := NewDirective(Options{
		Property: "items",
		Filter: func(node dom.Node, index int, all []dom.Node) bool {
			if len(all) != 3 {
				t.Errorf("expected full list of 3, got %d", len(all))
			}
			return index%2 == 0
		},
	}, watcher)

	got := d.ComputeNodes(dom.NewElement("host"))
	if !sameNodes(got, []dom.Node{nodes[0], nodes[2]}) {
		t.Errorf("expected even-indexed nodes, got %v", got)
	}
}

func TestDirective_Bind_WritesInitialListThenObserves(t *testing.T) {
	var events []string
	a, b := dom.NewElement("a"), dom.NewElement("b")
	watcher := &fakeWatcher{nodes: []dom.Node{a, b}, events: &events}
	source := newRecordingSource()
	source.events = &events
	target := dom.NewElement("host")

	d := NewDirective(Options{Property: "items"}, watcher)
	d.Bind(source, nil, target)

	if !sameNodes(source.props["items"], []dom.Node{a, b}) {
		t.Errorf("expected initial list written, got %v", source.props["items"])
	}
	if len(events) != 2 || events[0] != "write:items" || events[1] != "observe" {
		t.Errorf("expected write before observe, got %v", events)
	}
	if len(watcher.observed) != 1 || watcher.observed[0] != target {
		t.Error("expected Observe called with the bound target")
	}

	if got, ok := d.SourceFor(target); !ok || got != Source(source) {
		t.Error("expected back-reference to the bound source")
	}
}

func TestDirective_BindUnbind_LeavesEmptyList(t *testing.T) {
	var events []string
	watcher := &fakeWatcher{nodes: []dom.Node{dom.NewElement("a")}, events: &events}
	source := newRecordingSource()
	source.events = &events
	target := dom.NewElement("host")

	d := NewDirective(Options{Property: "items"}, watcher)
	d.Bind(source, nil, target)
	d.Unbind(source, nil, target)

	if len(source.props["items"]) != 0 {
		t.Errorf("expected empty list after unbind, got %v", source.props["items"])
	}
	// Unbind writes the empty list before tearing down observation.
	want := []string{"write:items", "observe", "write:items", "disconnect"}
	if len(events) != len(want) {
		t.Fatalf("expected events %v, got %v", want, events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("expected events %v, got %v", want, events)
		}
	}
	if _, ok := d.SourceFor(target); ok {
		t.Error("expected back-reference cleared after unbind")
	}
}

func TestDirective_Refresh_ReplacesWholesale(t *testing.T) {
	a, b, c := dom.NewElement("a"), dom.NewElement("b"), dom.NewElement("c")
	watcher := &fakeWatcher{nodes: []dom.Node{a, b}}
	source := newRecordingSource()
	target := dom.NewElement("host")

	d := NewDirective(Options{Property: "items"}, watcher)
	d.Bind(source, nil, target)

	watcher.nodes = []dom.Node{a, b, c}
	d.Refresh(target)

	if !sameNodes(source.props["items"], []dom.Node{a, b, c}) {
		t.Errorf("expected full replacement, got %v", source.props["items"])
	}
}

func TestDirective_Refresh_WithoutBoundSource_DoesNotWrite(t *testing.T) {
	watcher := &fakeWatcher{nodes: []dom.Node{dom.NewElement("a")}}
	d := NewDirective(Options{Property: "items"}, watcher)

	d.Refresh(dom.NewElement("host")) // never bound; must not panic or write
}

func TestTwoDirectives_SameTarget_IndependentBackReferences(t *testing.T) {
	target := dom.NewElement("host")
	first := NewDirective(Options{Property: "items"}, &fakeWatcher{})
	second := NewDirective(Options{Property: "links"}, &fakeWatcher{})
	firstSource := newRecordingSource()
	secondSource := newRecordingSource()

	first.Bind(firstSource, nil, target)
	second.Bind(secondSource, nil, target)

	first.Unbind(firstSource, nil, target)

	if _, ok := first.SourceFor(target); ok {
		t.Error("expected first directive's back-reference cleared")
	}
	if got, ok := second.SourceFor(target); !ok || got != Source(secondSource) {
		t.Error("expected second directive's back-reference intact")
	}

	second.Unbind(secondSource, nil, target)
	if _, ok := second.SourceFor(target); ok {
		t.Error("expected second directive to unbind cleanly")
	}
}

func TestDirective_FilterPanicPropagates(t *testing.T) {
	watcher := &fakeWatcher{nodes: []dom.Node{dom.NewElement("a")}}
	d := NewDirective(Options{
		Property: "items",
		Filter: func(dom.Node, int, []dom.Node) bool {
			panic("filter failure")
		},
	}, watcher)

	defer func() {
		if recover() == nil {
			t.Error("expected filter panic to propagate through Bind")
		}
	}()
	d.Bind(newRecordingSource(), nil, dom.NewElement("host"))
}
