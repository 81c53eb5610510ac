package observe

import (
	"github.com/go-loom/loom/pkg/dom"
)

// SlottedWatcher observes the content distributed to one of a target's
// slots. The slot is looked up by name under the target at Observe and
// Nodes time, so the watcher itself stays stateless about tree shape.
type SlottedWatcher struct {
	refresher Refresher
	slotName  string
	cancels   map[*dom.Element]func()
}

// NewSlottedWatcher creates a watcher for the named slot delivering
// notifications to r. Use the empty name for the default slot.
func NewSlottedWatcher(r Refresher, slotName string) *SlottedWatcher {
	return &SlottedWatcher{
		refresher: r,
		slotName:  slotName,
		cancels:   make(map[*dom.Element]func()),
	}
}

// SlotName returns the name of the observed slot.
func (w *SlottedWatcher) SlotName() string { return w.slotName }

// Observe starts watching the target's slot assignment.
// A target without a matching slot is observed as permanently empty.
func (w *SlottedWatcher) Observe(target *dom.Element) {
	slot := target.SlotNamed(w.slotName)
	if slot == nil {
		return
	}
	w.cancels[target] = slot.OnSlotChanged(func() {
		w.refresher.Refresh(target)
	})
}

// Disconnect cancels the target's slot-change listener.
// Safe to call when Observe never ran or no notification ever fired.
func (w *SlottedWatcher) Disconnect(target *dom.Element) {
	if cancel, ok := w.cancels[target]; ok {
		cancel()
		delete(w.cancels, target)
	}
}

// Nodes returns a fresh snapshot of the nodes assigned to the slot, or nil
// when the target has no matching slot.
func (w *SlottedWatcher) Nodes(target *dom.Element) []dom.Node {
	slot := target.SlotNamed(w.slotName)
	if slot == nil {
		return nil
	}
	return slot.Assigned()
}

// NewSlottedDirective creates a directive that keeps the source property in
// sync with the content distributed to the target's named slot.
func NewSlottedDirective(opts Options, slotName string) *Directive {
	w := &SlottedWatcher{
		slotName: slotName,
		cancels:  make(map[*dom.Element]func()),
	}
	d := NewDirective(opts, w)
	w.refresher = d
	return d
}
