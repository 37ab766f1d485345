package edit

import (
	"github.com/dshills/synless/internal/cursor"
	"github.com/dshills/synless/internal/store"
)

// Group is one undo group: a sequence of primitives applied atomically
// (spec §4.3). Groups do not nest — Begin while a group is already open
// extends the current group rather than stacking a new one (flat
// nesting).
type Group struct {
	CursorBefore cursor.Cursor
	CursorAfter  cursor.Cursor
	prims        []Primitive
}

// Len reports how many primitives the group holds.
func (g *Group) Len() int { return len(g.prims) }

// apply runs a primitive forward and appends it to the group. On
// failure the group is left exactly as it was before the call.
func (g *Group) apply(env *Env, p Primitive) error {
	if err := p.Do(env); err != nil {
		return err
	}
	g.prims = append(g.prims, p)
	return nil
}

// undo reverses every primitive in the group, most recent first.
func (g *Group) undo(env *Env) error {
	for i := len(g.prims) - 1; i >= 0; i-- {
		if err := g.prims[i].Undo(env); err != nil {
			return err
		}
	}
	return nil
}

// redo re-applies every primitive in the group, in original order.
func (g *Group) redo(env *Env) error {
	for _, p := range g.prims {
		if err := p.Do(env); err != nil {
			return err
		}
	}
	return nil
}

// detachedNodes collects every node this group currently holds
// detached from the tree (spec §3 Lifecycles: these are freed when the
// group is discarded, not before).
func (g *Group) detachedNodes() []store.NodeID {
	var out []store.NodeID
	for _, p := range g.prims {
		if id, ok := p.Detached(); ok {
			out = append(out, id)
		}
	}
	return out
}
