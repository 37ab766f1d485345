package edit

// DefaultMaxDepth bounds how many committed groups the undo stack
// retains before the oldest is trimmed and its detached nodes freed.
const DefaultMaxDepth = 100

// Log is the Edit Log (spec §4.3): a bounded undo stack, a redo stack
// cleared by new commits, and the currently-open group (if any).
// Groups do not nest; Begin while a group is open is a no-op that
// continues appending to it.
type Log struct {
	env      *Env
	maxDepth int
	undo     []*Group
	redo     []*Group
	current  *Group
}

// NewLog constructs a Log bound to env with the given undo-stack depth.
// A non-positive maxDepth uses DefaultMaxDepth.
func NewLog(env *Env, maxDepth int) *Log {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Log{env: env, maxDepth: maxDepth}
}

// InGroup reports whether a group is currently open.
func (l *Log) InGroup() bool { return l.current != nil }

// Begin opens a new group, snapshotting the cursor so Commit can record
// the before/after transition. A call while a group is already open is
// a no-op (flat nesting: edits continue to accumulate in the open
// group).
func (l *Log) Begin() {
	if l.current != nil {
		return
	}
	l.current = &Group{CursorBefore: *l.env.Cursor}
}

// Apply runs a primitive forward within the currently open group. If no
// group is open, Apply opens one first, as Begin does.
func (l *Log) Apply(p Primitive) error {
	if l.current == nil {
		l.Begin()
	}
	return l.current.apply(l.env, p)
}

// Commit closes the open group and pushes it onto the undo stack,
// clearing the redo stack (its detached nodes are freed — spec §3
// Lifecycles: a redo entry superseded by a new commit is no longer
// reachable). An empty group (no primitives applied) is discarded
// without being pushed.
func (l *Log) Commit() {
	g := l.current
	l.current = nil
	if g == nil || g.Len() == 0 {
		return
	}
	g.CursorAfter = *l.env.Cursor
	l.freeGroups(l.redo)
	l.redo = nil
	l.undo = append(l.undo, g)
	if len(l.undo) > l.maxDepth {
		trimmed := l.undo[0]
		l.undo = l.undo[1:]
		l.freeGroups([]*Group{trimmed})
	}
}

// Abort reverses every primitive applied so far in the open group and
// discards it without recording undo/redo history. Used when a
// command fails partway through (spec §7 rollback policy).
func (l *Log) Abort() error {
	g := l.current
	l.current = nil
	if g == nil {
		return nil
	}
	err := g.undo(l.env)
	l.freeGroups([]*Group{g})
	return err
}

// Cancel aborts the open group in response to an explicit user
// cancellation (escape) rather than a primitive failure. Semantically
// identical to Abort.
func (l *Log) Cancel() error { return l.Abort() }

// Undo pops the most recent committed group, reverses it, and pushes
// it onto the redo stack.
func (l *Log) Undo() (bool, error) {
	if len(l.undo) == 0 {
		return false, nil
	}
	g := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]
	if err := g.undo(l.env); err != nil {
		return false, err
	}
	l.redo = append(l.redo, g)
	return true, nil
}

// Redo pops the most recently undone group, re-applies it, and pushes
// it back onto the undo stack.
func (l *Log) Redo() (bool, error) {
	if len(l.redo) == 0 {
		return false, nil
	}
	g := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	if err := g.redo(l.env); err != nil {
		return false, err
	}
	l.undo = append(l.undo, g)
	return true, nil
}

// CanUndo and CanRedo report stack availability, e.g. for menu/keymap
// affordances.
func (l *Log) CanUndo() bool { return len(l.undo) > 0 }
func (l *Log) CanRedo() bool { return len(l.redo) > 0 }

// freeGroups frees whatever each group's primitives currently hold
// detached. This is safe regardless of whether groups is the undo stack
// (groups left in their forward-applied state) or the redo stack
// (groups left in their undone state): each Primitive's Detached()
// tracks its own last-applied direction, so it always names the payload
// actually orphaned right now, not just the one Do produces.
func (l *Log) freeGroups(groups []*Group) {
	for _, g := range groups {
		for _, id := range g.detachedNodes() {
			l.env.Store.FreeSubtree(id)
		}
	}
}
