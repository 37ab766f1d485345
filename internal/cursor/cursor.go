package cursor

import "github.com/dshills/synless/internal/store"

// Kind distinguishes the three cursor variants (spec §3).
type Kind int

const (
	// TreeOn means the cursor sits on a specific node.
	TreeOn Kind = iota
	// TreeBefore means the cursor sits before the first element of an
	// empty Listy node — the only non-node position.
	TreeBefore
	// TextAt means the cursor sits inside a Texty node's text.
	TextAt
)

// Cursor is the single, tagged editing location (spec §3).
type Cursor struct {
	Kind   Kind
	Node   store.NodeID // TreeOn, TextAt
	Parent store.NodeID // TreeBefore
	Offset int          // TextAt: grapheme-cluster offset; TreeBefore: always 0
}

// OnNode builds a TreeOn cursor.
func OnNode(id store.NodeID) Cursor { return Cursor{Kind: TreeOn, Node: id} }

// BeforeEmptyList builds a TreeBefore cursor for an empty Listy parent.
func BeforeEmptyList(parent store.NodeID) Cursor {
	return Cursor{Kind: TreeBefore, Parent: parent}
}

// InText builds a TextAt cursor.
func InText(id store.NodeID, offset int) Cursor {
	return Cursor{Kind: TextAt, Node: id, Offset: offset}
}

// Equal reports whether two cursors denote the same location.
func (c Cursor) Equal(o Cursor) bool {
	return c.Kind == o.Kind && c.Node == o.Node && c.Parent == o.Parent && c.Offset == o.Offset
}
