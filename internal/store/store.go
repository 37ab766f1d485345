package store

import (
	"errors"
	"sync"

	"github.com/dshills/synless/internal/lang"
)

// Errors returned by Store operations.
var (
	ErrNotFound      = errors.New("node not found")
	ErrHasParent     = errors.New("child already has a parent")
	ErrNotFixed      = errors.New("node is not a Fixed-arity node")
	ErrNotListy      = errors.New("node is not a Listy node")
	ErrNotTexty      = errors.New("node is not a Texty node")
	ErrSlotRange     = errors.New("slot index out of range")
	ErrIndexRange    = errors.New("list index out of range")
	ErrHoleIntoHole  = errors.New("cannot navigate into a hole")
	ErrNotDetached   = errors.New("node is not a detached root")
	ErrSlotNotHole   = errors.New("slot does not currently hold a hole")
)

// Store is an arena of nodes keyed by stable ids (spec §4.2).
//
// Thread Safety: Store guards its internal map with a mutex so
// incidental concurrent readers (e.g. a render or logging goroutine)
// never race with the single-threaded edit path; it does not provide
// any multi-writer consistency guarantee beyond mutual exclusion.
type Store struct {
	mu      sync.RWMutex
	nodes   map[NodeID]*node
	nextID  NodeID
}

// New creates an empty Store.
func New() *Store {
	return &Store{nodes: make(map[NodeID]*node)}
}

func (s *Store) alloc() NodeID {
	s.nextID++
	return s.nextID
}

// MakeHole allocates a fresh Hole node: a well-typed placeholder
// satisfying any sort, which cannot be navigated into.
func (s *Store) MakeHole(langName string) NodeID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.alloc()
	s.nodes[id] = &node{id: id, lang: langName, isHole: true}
	return id
}

// Make allocates a node for construct ct with default children: Hole
// for each Fixed slot, an empty sequence for Listy, the empty string
// for Texty.
func (s *Store) Make(langName string, ct *lang.Construct) NodeID {
	s.mu.Lock()
	id := s.alloc()
	n := &node{id: id, lang: langName, construct: ct.Name}
	switch ct.Arity.Kind {
	case lang.Fixed:
		n.kindFixed = true
		n.children = make([]NodeID, len(ct.Arity.Slots))
	case lang.Listy:
		n.kindListy = true
		n.items = nil
	case lang.Texty:
		n.kindTexty = true
	}
	s.nodes[id] = n
	s.mu.Unlock()

	if n.kindFixed {
		for i := range n.children {
			hole := s.MakeHole(langName)
			s.mu.Lock()
			s.nodes[hole].link = ParentLink{Parent: id, Slot: i}
			n.children[i] = hole
			s.mu.Unlock()
		}
	}
	return id
}

// Get returns a read-only view of a node.
func (s *Store) Get(id NodeID) (View, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	if !ok {
		return View{}, false
	}
	return n.view(), true
}

// ParentOf returns the parent link of a node.
func (s *Store) ParentOf(id NodeID) (ParentLink, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	if !ok {
		return ParentLink{}, false
	}
	return n.link, true
}

// Children returns the ordered child ids of a node: Fixed slots
// (possibly holes) or Listy items.
func (s *Store) Children(id NodeID) ([]NodeID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	if !ok {
		return nil, false
	}
	if n.kindFixed {
		return append([]NodeID(nil), n.children...), true
	}
	if n.kindListy {
		return append([]NodeID(nil), n.items...), true
	}
	return nil, true
}

// Text returns a Texty node's text payload.
func (s *Store) Text(id NodeID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	if !ok {
		return "", ErrNotFound
	}
	if !n.kindTexty {
		return "", ErrNotTexty
	}
	return n.text, nil
}

// SetText replaces a Texty node's text payload.
func (s *Store) SetText(id NodeID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[id]
	if !ok {
		return ErrNotFound
	}
	if !n.kindTexty {
		return ErrNotTexty
	}
	n.text = text
	return nil
}

// TextCursor returns a Texty node's text-mode cursor offset.
func (s *Store) TextCursor(id NodeID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	if !ok {
		return 0, ErrNotFound
	}
	if !n.kindTexty {
		return 0, ErrNotTexty
	}
	return n.textCursor, nil
}

// SetTextCursor sets a Texty node's text-mode cursor offset.
func (s *Store) SetTextCursor(id NodeID, offset int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[id]
	if !ok {
		return ErrNotFound
	}
	if !n.kindTexty {
		return ErrNotTexty
	}
	n.textCursor = offset
	return nil
}

// Attach links child into parent's Fixed slot. The slot must currently
// hold a Hole, and child must not already have a parent (callers detach
// first). It does not copy the subtree. The displaced Hole is freed
// outright; callers that must later restore the exact slot id (undo of
// a tree-edit insert, so a cursor resolved to that Hole stays valid) use
// AttachReplacing instead.
func (s *Store) Attach(parent NodeID, slot int, child NodeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	occupant, err := s.attachLocked(parent, slot, child)
	if err != nil {
		return err
	}
	delete(s.nodes, occupant)
	return nil
}

// AttachReplacing behaves like Attach but keeps the displaced Hole alive
// in the arena (unlinked, not freed) and returns its id. Undoing the
// attach can then restore that exact id via ReplaceAt instead of minting
// a fresh Hole, so a cursor captured before the attach (pointing at the
// Hole it replaced) resolves to a live node again after undo.
func (s *Store) AttachReplacing(parent NodeID, slot int, child NodeID) (NodeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attachLocked(parent, slot, child)
}

// attachLocked performs the shared Attach validation and linking,
// returning the id of the Hole it displaced without freeing it; callers
// decide whether to keep or delete that id. Must be called with mu held.
func (s *Store) attachLocked(parent NodeID, slot int, child NodeID) (NodeID, error) {
	p, ok := s.nodes[parent]
	if !ok {
		return 0, ErrNotFound
	}
	if !p.kindFixed {
		return 0, ErrNotFixed
	}
	if slot < 0 || slot >= len(p.children) {
		return 0, ErrSlotRange
	}
	c, ok := s.nodes[child]
	if !ok {
		return 0, ErrNotFound
	}
	if c.link.Parent != 0 {
		return 0, ErrHasParent
	}
	occupant := s.nodes[p.children[slot]]
	if occupant == nil || !occupant.isHole {
		return 0, ErrSlotNotHole
	}

	p.children[slot] = child
	c.link = ParentLink{Parent: parent, Slot: slot}
	occupant.link = ParentLink{}
	return occupant.id, nil
}

// Detach removes the child currently in parent's Fixed slot, replacing
// it with a fresh Hole, and returns the detached child as a new
// detached root (it is not freed).
func (s *Store) Detach(parent NodeID, slot int) (NodeID, error) {
	s.mu.Lock()
	p, ok := s.nodes[parent]
	if !ok {
		s.mu.Unlock()
		return 0, ErrNotFound
	}
	if !p.kindFixed {
		s.mu.Unlock()
		return 0, ErrNotFixed
	}
	if slot < 0 || slot >= len(p.children) {
		s.mu.Unlock()
		return 0, ErrSlotRange
	}
	child := p.children[slot]
	cn, ok := s.nodes[child]
	if !ok {
		s.mu.Unlock()
		return 0, ErrNotFound
	}
	langName := p.lang
	s.mu.Unlock()

	hole := s.MakeHole(langName)

	s.mu.Lock()
	p.children[slot] = hole
	s.nodes[hole].link = ParentLink{Parent: parent, Slot: slot}
	cn.link = ParentLink{}
	s.mu.Unlock()

	return child, nil
}

// ReplaceAt swaps the node currently in parent's Fixed slot for new,
// returning the previous occupant as a new detached root. Unlike
// Attach, this does not require the slot to currently hold a Hole; it
// is used by the ReplaceAt primitive and by undo's inverse of Attach
// (restoring the Hole that Attach replaced).
func (s *Store) ReplaceAt(parent NodeID, slot int, newChild NodeID) (NodeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.nodes[parent]
	if !ok {
		return 0, ErrNotFound
	}
	if !p.kindFixed {
		return 0, ErrNotFixed
	}
	if slot < 0 || slot >= len(p.children) {
		return 0, ErrSlotRange
	}
	nc, ok := s.nodes[newChild]
	if !ok {
		return 0, ErrNotFound
	}
	if nc.link.Parent != 0 {
		return 0, ErrHasParent
	}

	old := p.children[slot]
	on := s.nodes[old]

	p.children[slot] = newChild
	nc.link = ParentLink{Parent: parent, Slot: slot}
	if on != nil {
		on.link = ParentLink{}
	}
	return old, nil
}

// InsertListItem inserts child at index in a Listy node's item sequence.
func (s *Store) InsertListItem(parent NodeID, index int, child NodeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.nodes[parent]
	if !ok {
		return ErrNotFound
	}
	if !p.kindListy {
		return ErrNotListy
	}
	if index < 0 || index > len(p.items) {
		return ErrIndexRange
	}
	c, ok := s.nodes[child]
	if !ok {
		return ErrNotFound
	}
	if c.link.Parent != 0 {
		return ErrHasParent
	}

	p.items = append(p.items, 0)
	copy(p.items[index+1:], p.items[index:])
	p.items[index] = child
	c.link = ParentLink{Parent: parent, Slot: index}

	for i := index + 1; i < len(p.items); i++ {
		if n := s.nodes[p.items[i]]; n != nil {
			n.link.Slot = i
		}
	}
	return nil
}

// RemoveListItem removes and returns the item at index from a Listy
// node's item sequence, as a new detached root.
func (s *Store) RemoveListItem(parent NodeID, index int) (NodeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.nodes[parent]
	if !ok {
		return 0, ErrNotFound
	}
	if !p.kindListy {
		return 0, ErrNotListy
	}
	if index < 0 || index >= len(p.items) {
		return 0, ErrIndexRange
	}

	child := p.items[index]
	p.items = append(p.items[:index], p.items[index+1:]...)
	if c := s.nodes[child]; c != nil {
		c.link = ParentLink{}
	}
	for i := index; i < len(p.items); i++ {
		if n := s.nodes[p.items[i]]; n != nil {
			n.link.Slot = i
		}
	}
	return child, nil
}

// ForEachDescendant visits id and every descendant, depth-first,
// pre-order.
func (s *Store) ForEachDescendant(id NodeID, visit func(NodeID)) {
	s.mu.RLock()
	n, ok := s.nodes[id]
	if !ok {
		s.mu.RUnlock()
		return
	}
	var kids []NodeID
	if n.kindFixed {
		kids = append([]NodeID(nil), n.children...)
	} else if n.kindListy {
		kids = append([]NodeID(nil), n.items...)
	}
	s.mu.RUnlock()

	visit(id)
	for _, k := range kids {
		s.ForEachDescendant(k, visit)
	}
}

// Free permanently removes id from the arena. Callers must ensure id is
// unreachable (detached, and no register/bookmark references it) before
// calling Free; Store does not verify this on its own.
func (s *Store) Free(id NodeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.nodes, id)
}

// FreeSubtree frees id and every descendant.
func (s *Store) FreeSubtree(id NodeID) {
	var all []NodeID
	s.ForEachDescendant(id, func(n NodeID) { all = append(all, n) })
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range all {
		delete(s.nodes, n)
	}
}

// Clone deep-copies the subtree rooted at id, allocating fresh node ids
// throughout, and returns the new detached root. Used by Copy (spec
// §4.5): "Cloning re-allocates fresh node-ids."
func (s *Store) Clone(id NodeID) (NodeID, error) {
	s.mu.Lock()
	n, ok := s.nodes[id]
	if !ok {
		s.mu.Unlock()
		return 0, ErrNotFound
	}
	cp := *n
	cp.children = append([]NodeID(nil), n.children...)
	cp.items = append([]NodeID(nil), n.items...)
	s.mu.Unlock()

	newID := s.alloc()
	s.mu.Lock()
	cp.id = newID
	cp.link = ParentLink{}
	s.nodes[newID] = &cp
	s.mu.Unlock()

	if cp.kindFixed {
		for i, kid := range cp.children {
			newKid, err := s.Clone(kid)
			if err != nil {
				return 0, err
			}
			s.mu.Lock()
			s.nodes[newID].children[i] = newKid
			s.nodes[newKid].link = ParentLink{Parent: newID, Slot: i}
			s.mu.Unlock()
		}
	} else if cp.kindListy {
		for i, kid := range cp.items {
			newKid, err := s.Clone(kid)
			if err != nil {
				return 0, err
			}
			s.mu.Lock()
			s.nodes[newID].items[i] = newKid
			s.nodes[newKid].link = ParentLink{Parent: newID, Slot: i}
			s.mu.Unlock()
		}
	}
	return newID, nil
}

// AdoptRoot clears a detached node's residual parent link so it can
// serve as a document root or register head.
func (s *Store) AdoptRoot(id NodeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[id]
	if !ok {
		return ErrNotFound
	}
	n.link = ParentLink{}
	return nil
}
