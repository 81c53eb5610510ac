// Package view hosts observation directives through their activation
// lifecycle.
//
// A View is declared once with an ordered list of Behaviors, each pairing a
// directive with a node reference. Activate resolves every reference to its
// attachment point and binds the directives in declaration order; Deactivate
// unbinds them in reverse order. The View owns the strict bind-then-unbind
// pairing directives rely on: activating an active view or deactivating an
// inactive one is rejected with an error instead of corrupting directive
// state.
package view

import (
	"github.com/go-loom/loom/pkg/dom"
	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/observe"
)

// Ref identifies a target node declared by a behavior.
type Ref string

// TargetResolver maps behavior refs to attachment points in the rendered
// tree. The hosting engine supplies one per view instantiation.
type TargetResolver interface {
	ResolveTarget(ref Ref) (*dom.Element, bool)
}

// RefMap is a map-backed TargetResolver.
type RefMap map[Ref]*dom.Element

// ResolveTarget returns the element registered under ref.
func (m RefMap) ResolveTarget(ref Ref) (*dom.Element, bool) {
	el, ok := m[ref]
	return el, ok
}

// Behavior pairs a directive with the ref of the node it attaches to.
type Behavior struct {
	Directive *observe.Directive
	Target    Ref
}

// View drives a fixed set of behaviors through bind/unbind cycles.
type View struct {
	resolver  TargetResolver
	behaviors []Behavior

	active bool
	source observe.Source
	ctx    any
	bound  []*dom.Element // resolved targets, parallel to behaviors
}

// NewView creates a view over the given resolver and behaviors.
// Behaviors bind in the order given and unbind in reverse.
func NewView(resolver TargetResolver, behaviors ...Behavior) *View {
	return &View{resolver: resolver, behaviors: behaviors}
}

// Active reports whether the view is currently activated.
func (v *View) Active() bool { return v.active }

// Activate resolves every behavior's target and binds its directive to
// source. ctx is passed through to the directives opaquely.
//
// An unresolvable ref aborts activation; already-bound behaviors stay bound
// and the returned error is fatal for this activation cycle.
func (v *View) Activate(source observe.Source, ctx any) error {
	if v.active {
		return errors.New("view.Activate", errors.KindLifecycle,
			"view is already active")
	}
	v.bound = make([]*dom.Element, 0, len(v.behaviors))
	for _, b := range v.behaviors {
		target, ok := v.resolver.ResolveTarget(b.Target)
		if !ok {
			return errors.New("view.Activate", errors.KindResolve,
				"no target for ref %q", b.Target)
		}
		b.Directive.Bind(source, ctx, target)
		v.bound = append(v.bound, target)
	}
	v.active = true
	v.source = source
	v.ctx = ctx
	return nil
}

// Deactivate unbinds every behavior in reverse declaration order and
// releases the view's hold on the source.
func (v *View) Deactivate() error {
	if !v.active {
		return errors.New("view.Deactivate", errors.KindLifecycle,
			"view is not active")
	}
	for i := len(v.bound) - 1; i >= 0; i-- {
		v.behaviors[i].Directive.Unbind(v.source, v.ctx, v.bound[i])
	}
	v.active = false
	v.source = nil
	v.ctx = nil
	v.bound = nil
	return nil
}
