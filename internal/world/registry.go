// Package world holds the live entities of a session.
package world

import (
	"slices"

	"github.com/tomz197/meteors/internal/assert"
	"github.com/tomz197/meteors/internal/object"
)

// Registry is the ordered, duplicate-free collection of live objects, grouped
// by role. Every object is in object.GroupAll plus any groups it was added to.
//
// Objects are never removed while a group is being traversed: entities only
// mark themselves (or are marked) destroyed, and Sweep evicts them once the
// tick's update and collision phases are over.
type Registry struct {
	groups [object.NumGroups]group
}

type group struct {
	items   []object.Object
	members map[object.Object]struct{}
}

func (g *group) add(obj object.Object) {
	if g.members == nil {
		g.members = make(map[object.Object]struct{})
	}
	if _, ok := g.members[obj]; ok {
		return
	}
	g.members[obj] = struct{}{}
	g.items = append(g.items, obj)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add inserts obj into GroupAll and every listed group. Re-adding an object
// to a group it already belongs to is a no-op.
func (r *Registry) Add(obj object.Object, groups ...object.Group) {
	r.groups[object.GroupAll].add(obj)
	for _, g := range groups {
		if g <= object.GroupAll || g >= object.NumGroups {
			assert.Fail("unknown group %d", g)
			continue
		}
		r.groups[g].add(obj)
	}
}

// Spawn adds obj. Implements object.Spawner.
func (r *Registry) Spawn(obj object.Object, groups ...object.Group) {
	r.Add(obj, groups...)
}

// Len returns the number of objects in group.
func (r *Registry) Len(g object.Group) int {
	return len(r.groups[g].items)
}

// Contains reports whether obj is in group.
func (r *Registry) Contains(g object.Group, obj object.Object) bool {
	_, ok := r.groups[g].members[obj]
	return ok
}

// Snapshot returns a copy of the group in insertion order.
func (r *Registry) Snapshot(g object.Group) []object.Object {
	return slices.Clone(r.groups[g].items)
}

// ForEach calls fn for every object in group as of the call. Objects added
// by fn are not visited; objects marked destroyed by fn still are.
func (r *Registry) ForEach(g object.Group, fn func(obj object.Object)) {
	for _, obj := range r.Snapshot(g) {
		if s, ok := obj.(object.Sweepable); ok && s.Swept() {
			assert.Fail("visiting swept object %T", obj)
			continue
		}
		fn(obj)
	}
}

// Sweep evicts every object marked destroyed from all groups, releases pooled
// objects and returns how many were evicted.
func (r *Registry) Sweep() int {
	var removed []object.Object
	for _, obj := range r.groups[object.GroupAll].items {
		if obj.IsDestroyed() {
			removed = append(removed, obj)
		}
	}
	if len(removed) == 0 {
		return 0
	}

	for i := range r.groups {
		g := &r.groups[i]
		kept := g.items[:0] // reuse backing array
		for _, obj := range g.items {
			if obj.IsDestroyed() {
				delete(g.members, obj)
			} else {
				kept = append(kept, obj)
			}
		}
		clear(g.items[len(kept):])
		g.items = kept
	}

	for _, obj := range removed {
		if s, ok := obj.(object.Sweepable); ok {
			s.MarkSwept()
		}
		object.ReleaseObject(obj)
	}
	return len(removed)
}
