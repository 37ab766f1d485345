package cursor

import (
	"github.com/dshills/synless/internal/errs"
	"github.com/dshills/synless/internal/store"
)

func navErr(op string) error {
	return errs.Newf(errs.Navigation, op, "cursor cannot move %s", op)
}

// Parent moves the cursor to the parent of the current node (from
// TreeOn), or to the list node itself (from TreeBefore).
func Parent(s *store.Store, c Cursor) (Cursor, error) {
	switch c.Kind {
	case TreeOn:
		link, ok := s.ParentOf(c.Node)
		if !ok || link.Parent == 0 {
			return Cursor{}, navErr("parent")
		}
		return OnNode(link.Parent), nil
	case TreeBefore:
		return OnNode(c.Parent), nil
	default:
		return Cursor{}, navErr("parent")
	}
}

// FirstChild descends into the first child of the node at the cursor.
// For an empty Listy node it lands on TreeBefore(node, 0).
func FirstChild(s *store.Store, c Cursor) (Cursor, error) {
	if c.Kind != TreeOn {
		return Cursor{}, navErr("first-child")
	}
	v, ok := s.Get(c.Node)
	if !ok || v.IsHole {
		return Cursor{}, navErr("first-child")
	}
	switch {
	case v.IsFixed:
		if len(v.Children) == 0 {
			return Cursor{}, navErr("first-child")
		}
		return OnNode(v.Children[0]), nil
	case v.IsListy:
		if len(v.Items) == 0 {
			return BeforeEmptyList(c.Node), nil
		}
		return OnNode(v.Items[0]), nil
	default:
		return Cursor{}, navErr("first-child")
	}
}

// LastChild descends into the last child of the node at the cursor.
func LastChild(s *store.Store, c Cursor) (Cursor, error) {
	if c.Kind != TreeOn {
		return Cursor{}, navErr("last-child")
	}
	v, ok := s.Get(c.Node)
	if !ok || v.IsHole {
		return Cursor{}, navErr("last-child")
	}
	switch {
	case v.IsFixed:
		if len(v.Children) == 0 {
			return Cursor{}, navErr("last-child")
		}
		return OnNode(v.Children[len(v.Children)-1]), nil
	case v.IsListy:
		if len(v.Items) == 0 {
			return BeforeEmptyList(c.Node), nil
		}
		return OnNode(v.Items[len(v.Items)-1]), nil
	default:
		return Cursor{}, navErr("last-child")
	}
}

// siblingSlots returns the parent id and sibling sequence (Fixed
// children or Listy items) containing the cursor's node, plus the
// node's index within it.
func siblingSlots(s *store.Store, node store.NodeID) (parent store.NodeID, slots []store.NodeID, index int, ok bool) {
	link, found := s.ParentOf(node)
	if !found || link.Parent == 0 {
		return 0, nil, 0, false
	}
	pv, found := s.Get(link.Parent)
	if !found {
		return 0, nil, 0, false
	}
	if pv.IsFixed {
		return link.Parent, pv.Children, link.Slot, true
	}
	return link.Parent, pv.Items, link.Slot, true
}

// Next moves to the next sibling (or, from TreeBefore, the first
// element of the adjacent list).
func Next(s *store.Store, c Cursor) (Cursor, error) {
	switch c.Kind {
	case TreeOn:
		_, slots, idx, ok := siblingSlots(s, c.Node)
		if !ok || idx+1 >= len(slots) {
			return Cursor{}, navErr("next")
		}
		return OnNode(slots[idx+1]), nil
	case TreeBefore:
		v, ok := s.Get(c.Parent)
		if !ok || len(v.Items) == 0 {
			return Cursor{}, navErr("next")
		}
		return OnNode(v.Items[0]), nil
	default:
		return Cursor{}, navErr("next")
	}
}

// Prev moves to the previous sibling.
func Prev(s *store.Store, c Cursor) (Cursor, error) {
	switch c.Kind {
	case TreeOn:
		_, slots, idx, ok := siblingSlots(s, c.Node)
		if !ok || idx == 0 {
			return Cursor{}, navErr("prev")
		}
		return OnNode(slots[idx-1]), nil
	case TreeBefore:
		return Cursor{}, navErr("prev")
	default:
		return Cursor{}, navErr("prev")
	}
}

// First moves to the first sibling in the current slot sequence.
func First(s *store.Store, c Cursor) (Cursor, error) {
	if c.Kind != TreeOn {
		return Cursor{}, navErr("first")
	}
	_, slots, _, ok := siblingSlots(s, c.Node)
	if !ok || len(slots) == 0 {
		return Cursor{}, navErr("first")
	}
	return OnNode(slots[0]), nil
}

// Last moves to the last sibling in the current slot sequence.
func Last(s *store.Store, c Cursor) (Cursor, error) {
	if c.Kind != TreeOn {
		return Cursor{}, navErr("last")
	}
	_, slots, _, ok := siblingSlots(s, c.Node)
	if !ok || len(slots) == 0 {
		return Cursor{}, navErr("last")
	}
	return OnNode(slots[len(slots)-1]), nil
}

// flatten lists the subtree's positions in document order: each concrete
// node (TreeOn) and each empty-list insertion point (TreeBefore).
func flatten(s *store.Store, root store.NodeID) []Cursor {
	var order []Cursor
	var walk func(id store.NodeID)
	walk = func(id store.NodeID) {
		v, ok := s.Get(id)
		if !ok {
			return
		}
		order = append(order, OnNode(id))
		switch {
		case v.IsFixed:
			for _, k := range v.Children {
				walk(k)
			}
		case v.IsListy:
			if len(v.Items) == 0 {
				order = append(order, BeforeEmptyList(id))
				return
			}
			for _, k := range v.Items {
				walk(k)
			}
		}
	}
	walk(root)
	return order
}

func isLeafPosition(s *store.Store, c Cursor) bool {
	if c.Kind == TreeBefore {
		return true
	}
	v, ok := s.Get(c.Node)
	if !ok {
		return false
	}
	return v.IsHole || v.IsTexty
}

func indexOfPosition(order []Cursor, c Cursor) int {
	for i, p := range order {
		if p.Equal(c) {
			return i
		}
	}
	return -1
}

// NextLeaf moves to the next leaf (Texty node, Hole, or empty-list
// insertion point) in document order, scanning from root.
func NextLeaf(s *store.Store, root store.NodeID, c Cursor) (Cursor, error) {
	order := flatten(s, root)
	idx := indexOfPosition(order, c)
	if idx < 0 {
		return Cursor{}, navErr("next-leaf")
	}
	for i := idx + 1; i < len(order); i++ {
		if isLeafPosition(s, order[i]) {
			return order[i], nil
		}
	}
	return Cursor{}, navErr("next-leaf")
}

// PrevLeaf moves to the previous leaf in document order.
func PrevLeaf(s *store.Store, root store.NodeID, c Cursor) (Cursor, error) {
	order := flatten(s, root)
	idx := indexOfPosition(order, c)
	if idx < 0 {
		return Cursor{}, navErr("prev-leaf")
	}
	for i := idx - 1; i >= 0; i-- {
		if isLeafPosition(s, order[i]) {
			return order[i], nil
		}
	}
	return Cursor{}, navErr("prev-leaf")
}

// EnterText moves from TreeOn(node), where node is Texty, into text
// mode at the end of its text.
func EnterText(s *store.Store, c Cursor) (Cursor, error) {
	if c.Kind != TreeOn {
		return Cursor{}, navErr("enter-text")
	}
	v, ok := s.Get(c.Node)
	if !ok || !v.IsTexty {
		return Cursor{}, navErr("enter-text")
	}
	off := textLenGraphemes(v.Text)
	_ = s.SetTextCursor(c.Node, off)
	return InText(c.Node, off), nil
}

// ExitText returns from TextAt(node, _) to TreeOn(node).
func ExitText(c Cursor) (Cursor, error) {
	if c.Kind != TextAt {
		return Cursor{}, navErr("exit-text")
	}
	return OnNode(c.Node), nil
}

// TextLeft/TextRight are implemented in text_nav.go to keep the uniseg
// dependency isolated to the text package.
