package observe

import (
	"github.com/go-loom/loom/pkg/dom"
)

// Options is the immutable per-directive configuration.
// It is constructed once and shared by every bind/unbind cycle of the
// directive instance it configures.
type Options struct {
	// Property names the key on the source to receive the computed list.
	Property string
	// Filter optionally narrows the raw node list. Nil means no filtering.
	Filter NodeFilter
}

// Source is the externally owned object whose property the directive keeps
// populated. The directive never reads it back; SetNodeProperty is the only
// interaction, always with a full replacement list.
type Source interface {
	SetNodeProperty(name string, nodes []dom.Node)
}

// MapSource is a map-backed Source, convenient for tests and tooling.
type MapSource map[string][]dom.Node

// SetNodeProperty stores the list under name.
func (m MapSource) SetNodeProperty(name string, nodes []dom.Node) {
	m[name] = nodes
}

// NodeWatcher is the pluggable change-notification mechanism of a Directive.
type NodeWatcher interface {
	// Observe begins delivering change notifications for the target's
	// relevant node set. On each notification the watcher must call
	// Refresh on its Refresher for this target.
	Observe(target *dom.Element)

	// Disconnect stops notifications for the target. It must be safe to
	// call even if no notification ever fired, and after it returns the
	// watcher must never notify for this target again.
	Disconnect(target *dom.Element)

	// Nodes returns the current raw node list relevant to the target at
	// the moment of the call. The returned slice must be fresh; the
	// directive hands it to the configured filter.
	Nodes(target *dom.Element) []dom.Node
}

// Refresher recomputes and rewrites the node list for a bound target.
// Directive implements it; watchers hold a Refresher so notification
// callbacks can re-enter the directive.
type Refresher interface {
	Refresh(target *dom.Element)
}

// Directive synchronizes one source property with the filtered node list of
// whatever targets it is currently bound to.
//
// A Directive instance is created once, at view-definition time, and reused
// across many bind/unbind cycles against different (target, source) pairs.
// The back-reference from a target to its source lives strictly within one
// bind/unbind cycle. Each instance keeps its own back-reference table, so
// multiple directives bound to one target never collide.
type Directive struct {
	opts    Options
	watcher NodeWatcher
	sources map[*dom.Element]Source
}

// NewDirective creates a directive with the given options and watcher.
// Most callers want NewChildrenDirective or NewSlottedDirective instead;
// use NewDirective directly to plug in a custom NodeWatcher.
func NewDirective(opts Options, watcher NodeWatcher) *Directive {
	return &Directive{
		opts:    opts,
		watcher: watcher,
		sources: make(map[*dom.Element]Source),
	}
}

// Options returns the directive's configuration.
func (d *Directive) Options() Options { return d.opts }

// Bind attaches the directive to target on behalf of source: it stores the
// target→source back-reference, performs one synchronous compute-and-write,
// and starts change watching.
//
// ctx is the hosting engine's execution context, passed through opaquely.
// The caller must not Bind a target that is already bound.
func (d *Directive) Bind(source Source, ctx any, target *dom.Element) {
	d.sources[target] = source
	d.UpdateTarget(source, d.ComputeNodes(target))
	d.watcher.Observe(target)
}

// Unbind detaches the directive from target: it writes an empty list to the
// source property, stops change watching, and clears the back-reference.
//
// After Unbind returns no further writes to the source occur from this
// directive until a subsequent Bind. Unbind is safe to call from within a
// change-notification callback.
func (d *Directive) Unbind(source Source, ctx any, target *dom.Element) {
	d.UpdateTarget(source, nil)
	d.watcher.Disconnect(target)
	delete(d.sources, target)
}

// SourceFor returns the source currently bound to target, if any.
// Watcher callbacks use it to find the source to update.
func (d *Directive) SourceFor(target *dom.Element) (Source, bool) {
	source, ok := d.sources[target]
	return source, ok
}

// ComputeNodes obtains the raw node list from the watcher and applies the
// configured filter, preserving relative order. Every call produces a fresh
// list; nothing is mutated in place.
func (d *Directive) ComputeNodes(target *dom.Element) []dom.Node {
	raw := d.watcher.Nodes(target)
	if d.opts.Filter == nil {
		return raw
	}
	out := make([]dom.Node, 0, len(raw))
	for i, n := range raw {
		if d.opts.Filter(n, i, raw) {
			out = append(out, n)
		}
	}
	return out
}

// UpdateTarget writes the computed list to the source's configured property.
// This is the sole write path; the list always replaces the previous value
// wholesale.
func (d *Directive) UpdateTarget(source Source, nodes []dom.Node) {
	source.SetNodeProperty(d.opts.Property, nodes)
}

// Refresh recomputes and rewrites the node list for target's currently
// bound source. If no source is bound the call is a no-op, so a stray
// notification can never write after Unbind.
func (d *Directive) Refresh(target *dom.Element) {
	source, ok := d.SourceFor(target)
	if !ok {
		return
	}
	d.UpdateTarget(source, d.ComputeNodes(target))
}
