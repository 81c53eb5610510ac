package observe

import (
	"github.com/go-loom/loom/pkg/dom"
)

// ChildrenWatcher observes the direct children of a target element.
// It registers a child-list listener per observed target and cancels it on
// Disconnect, so a disconnected target can never notify again.
type ChildrenWatcher struct {
	refresher Refresher
	cancels   map[*dom.Element]func()
}

// NewChildrenWatcher creates a watcher delivering notifications to r.
func NewChildrenWatcher(r Refresher) *ChildrenWatcher {
	return &ChildrenWatcher{
		refresher: r,
		cancels:   make(map[*dom.Element]func()),
	}
}

// Observe starts watching the target's child list.
func (w *ChildrenWatcher) Observe(target *dom.Element) {
	w.cancels[target] = target.OnChildrenChanged(func() {
		w.refresher.Refresh(target)
	})
}

// Disconnect cancels the target's child-list listener.
// Safe to call when Observe never ran or no mutation ever fired.
func (w *ChildrenWatcher) Disconnect(target *dom.Element) {
	if cancel, ok := w.cancels[target]; ok {
		cancel()
		delete(w.cancels, target)
	}
}

// Nodes returns a fresh snapshot of the target's direct children.
func (w *ChildrenWatcher) Nodes(target *dom.Element) []dom.Node {
	return target.Children()
}

// NewChildrenDirective creates a directive that keeps the source property in
// sync with the target's direct children.
func NewChildrenDirective(opts Options) *Directive {
	w := &ChildrenWatcher{cancels: make(map[*dom.Element]func())}
	d := NewDirective(opts, w)
	w.refresher = d
	return d
}
