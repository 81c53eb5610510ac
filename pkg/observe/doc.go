// Package observe keeps a property on an external source object synchronized
// with a filtered, live view of nodes attached to an element.
//
// A Directive is declared once, at view-definition time, with Options naming
// the source property to populate and an optional node filter. The hosting
// view engine then drives it through bind/unbind cycles: Bind performs one
// synchronous compute-and-write and starts change watching; Unbind clears the
// property and stops watching. Between the two, change notifications from the
// watcher re-enter the directive and rewrite the property with a freshly
// computed list.
//
// # Watchers
//
// The change-notification mechanism is pluggable via the NodeWatcher
// interface: Observe begins watching a target, Disconnect stops, and Nodes
// reports the current raw node list. Two watchers ship with the package:
// ChildrenWatcher observes an element's direct children, SlottedWatcher
// observes the content distributed to one of its slots. Custom watchers
// follow the same contract; on every notification they call Refresh on the
// directive for the notifying target.
//
// # Caller Contract
//
// Bind and Unbind must be strictly paired per target. Binding an
// already-bound target or unbinding an unbound one is a programming error in
// the hosting engine and is not guarded against here; the engine owns the
// pairing. A filter or watcher that panics propagates to the caller — the
// directive performs no recovery, since an inconsistency at this level
// indicates a bug, not a transient fault.
//
// Everything is single-threaded: the directive must only be driven from the
// engine's own event loop, and watcher notifications are delivered
// synchronously on that loop.
package observe
