package dom

// Slot receives nodes distributed from a host element's light tree.
//
// A slot with the empty name is the default slot: it receives all content
// that does not name a specific slot.
type Slot struct {
	name      string
	assigned  []Node
	listeners listenerList
}

// NewSlot creates a slot with the given name. Use the empty string for the
// default slot.
func NewSlot(name string) *Slot {
	return &Slot{name: name}
}

// Name returns the slot's name.
func (s *Slot) Name() string { return s.name }

// Assigned returns a fresh snapshot of the currently distributed nodes.
func (s *Slot) Assigned() []Node {
	out := make([]Node, len(s.assigned))
	copy(out, s.assigned)
	return out
}

// Assign replaces the slot's distributed nodes and fires slot-change
// listeners. The notification means the assignment may have changed; no
// diffing is performed.
func (s *Slot) Assign(nodes ...Node) {
	s.assigned = nodes
	s.listeners.fire()
}

// OnSlotChanged registers a listener fired after every assignment change.
// Returns a cancel function; once cancelled the listener never fires again.
func (s *Slot) OnSlotChanged(fn func()) (cancel func()) {
	return s.listeners.add(fn)
}

// AttachSlot makes the slot available under this element for distribution.
func (e *Element) AttachSlot(s *Slot) {
	if s == nil {
		return
	}
	e.slots = append(e.slots, s)
}

// SlotNamed returns the attached slot with the given name, or nil.
func (e *Element) SlotNamed(name string) *Slot {
	for _, s := range e.slots {
		if s.name == name {
			return s
		}
	}
	return nil
}

// Slots returns a copy of the attached slot list.
func (e *Element) Slots() []*Slot {
	out := make([]*Slot, len(e.slots))
	copy(out, e.slots)
	return out
}

// Distribute routes the given light-tree nodes to this element's attached
// slots. Element nodes are routed by their "slot" attribute; all other
// nodes go to the default slot. Every attached slot is reassigned, so
// slots that lose all content still see a slot-change notification.
func (e *Element) Distribute(nodes ...Node) {
	for _, s := range e.slots {
		matched := make([]Node, 0, len(nodes))
		for _, n := range nodes {
			if slotNameOf(n) == s.name {
				matched = append(matched, n)
			}
		}
		s.Assign(matched...)
	}
}

func slotNameOf(n Node) string {
	el, ok := n.(*Element)
	if !ok {
		return ""
	}
	name, _ := el.Attr("slot")
	return name
}
