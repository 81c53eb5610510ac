// Package dom provides the node and element model for the Loom engine.
//
// This package defines the rendered tree that directives attach to: Element
// nodes with ordered attributes and child lists, plus Text and Comment leaf
// nodes. It is deliberately small; it models exactly the surface the engine's
// behaviors need, not a full document object model.
//
// # Nodes
//
// Node is the common interface over the three node kinds. Kind discrimination
// is explicit via Kind(), so filters can select element nodes without type
// switches:
//
//	if node.Kind() == dom.KindElement { ... }
//
// # Change Notification
//
// Structural mutations of an element's child list fire listeners registered
// with OnChildrenChanged. Registration returns a cancel function; a cancelled
// listener never fires again:
//
//	cancel := parent.OnChildrenChanged(func() { ... })
//	defer cancel()
//
// Listeners fire synchronously, on the mutating call's own stack. The tree is
// single-threaded by contract: all mutation and listener registration must
// happen on the engine's own event loop.
//
// # Content Projection
//
// A Slot receives nodes distributed from a host element's light tree. Hosts
// attach slots with AttachSlot and route content with Distribute; assignment
// changes fire OnSlotChanged listeners with the same cancellation discipline
// as child-list listeners.
package dom
