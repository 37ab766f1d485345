package command

import (
	"testing"

	"github.com/dshills/synless/internal/cursor"
	"github.com/dshills/synless/internal/doc"
	"github.com/dshills/synless/internal/lang"
	"github.com/dshills/synless/internal/lang/builtin"
)

func newTestDoc(t *testing.T) *doc.Document {
	t.Helper()
	reg := lang.NewRegistry()
	if err := reg.Load(builtin.JSON()); err != nil {
		t.Fatalf("load json lang: %v", err)
	}
	d, err := doc.New(reg, "json")
	if err != nil {
		t.Fatalf("doc.New: %v", err)
	}
	return d
}

// TestInsertUndoLeavesCursorOnLiveHole guards against a regression where
// undoing a tree-ed insert into a Hole restored the cursor to the
// pre-insert Hole id, but the structural undo had already replaced that
// slot with a freshly minted Hole — leaving the cursor pointing at a
// freed node.
func TestInsertUndoLeavesCursorOnLiveHole(t *testing.T) {
	d := newTestDoc(t)
	numberCt, ok := d.Lang.Construct("json", "Number")
	if !ok {
		t.Fatalf("Number construct not found")
	}

	v, _ := d.Store.Get(d.Root)
	hole := v.Children[0]
	d.SetCursor(cursor.OnNode(hole))

	if err := Insert(d, numberCt); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if ok, err := d.Log().Undo(); !ok || err != nil {
		t.Fatalf("undo: ok=%v err=%v", ok, err)
	}

	c := d.Cursor()
	if c.Kind != cursor.TreeOn {
		t.Fatalf("expected cursor on a tree node after undo, got %v", c.Kind)
	}
	if _, live := d.Store.Get(c.Node); !live {
		t.Fatalf("cursor node %d does not exist in the store after undo", c.Node)
	}
}
