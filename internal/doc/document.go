package doc

import (
	"sync/atomic"

	"github.com/dshills/synless/internal/cursor"
	"github.com/dshills/synless/internal/edit"
	"github.com/dshills/synless/internal/errs"
	"github.com/dshills/synless/internal/lang"
	"github.com/dshills/synless/internal/store"
)

// Default configuration values.
const (
	DefaultMaxUndoDepth = edit.DefaultMaxDepth
	DefaultCutDepth     = 32
)

// Option configures a Document during creation.
type Option func(*Document)

// WithMaxUndoDepth bounds the number of committed undo groups retained.
func WithMaxUndoDepth(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.maxUndoDepth = n
		}
	}
}

// WithMaxCutDepth bounds the cut register's stack depth.
func WithMaxCutDepth(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.maxCutDepth = n
		}
	}
}

// Document is one open typed-tree document (spec §3): a node store
// rooted at Root, a language binding, the single cursor, a bookmark
// table, a bounded cut register, and the Edit Log tying mutation to
// undo/redo.
type Document struct {
	Store    *store.Store
	Lang     *lang.Registry
	LangName string
	Root     store.NodeID

	cursor    cursor.Cursor
	bookmarks map[rune]store.NodeID
	cutStack  []store.NodeID

	env *edit.Env
	log *edit.Log

	maxUndoDepth int
	maxCutDepth  int
	modified     atomic.Bool
}

// New creates a Document whose root is a fresh node of langName's root
// construct.
func New(reg *lang.Registry, langName string, opts ...Option) (*Document, error) {
	root, ok := reg.RootConstruct(langName)
	if !ok {
		return nil, errs.Newf(errs.NotFound, "doc.New", "language %q not loaded", langName)
	}
	ct, ok := reg.Construct(langName, root)
	if !ok {
		return nil, errs.Newf(errs.NotFound, "doc.New", "root construct %q not found", root)
	}

	s := store.New()
	rootID := s.Make(langName, ct)

	d := &Document{
		Store:        s,
		Lang:         reg,
		LangName:     langName,
		Root:         rootID,
		cursor:       cursor.OnNode(rootID),
		bookmarks:    make(map[rune]store.NodeID),
		maxUndoDepth: DefaultMaxUndoDepth,
		maxCutDepth:  DefaultCutDepth,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.env = &edit.Env{
		Store:     d.Store,
		Lang:      d.Lang,
		LangName:  d.LangName,
		Cursor:    &d.cursor,
		Bookmarks: d.bookmarks,
	}
	d.log = edit.NewLog(d.env, d.maxUndoDepth)
	return d, nil
}

// Env exposes the Document's edit environment to command implementations.
func (d *Document) Env() *edit.Env { return d.env }

// Log exposes the Document's Edit Log to command implementations.
func (d *Document) Log() *edit.Log { return d.log }

// Cursor returns the current cursor position.
func (d *Document) Cursor() cursor.Cursor { return d.cursor }

// SetCursor moves the cursor directly, outside of any undo group (used
// for pure navigation, which the spec does not require to be
// undoable).
func (d *Document) SetCursor(c cursor.Cursor) { d.cursor = c }

// IsModified reports whether the document has uncommitted-to-disk
// changes since it was last marked clean with SetModified(false).
func (d *Document) IsModified() bool { return d.modified.Load() }

// SetModified marks the document dirty or clean.
func (d *Document) SetModified(modified bool) { d.modified.Store(modified) }

// Bookmark returns the node-id saved under char, if any and still
// present in the store.
func (d *Document) Bookmark(char rune) (store.NodeID, bool) {
	id, ok := d.bookmarks[char]
	if !ok {
		return 0, false
	}
	if _, live := d.Store.Get(id); !live {
		delete(d.bookmarks, char)
		return 0, false
	}
	return id, true
}

// PushCut pushes a detached subtree onto the cut register, trimming
// and freeing the oldest entry once maxCutDepth is exceeded.
func (d *Document) PushCut(id store.NodeID) {
	d.cutStack = append(d.cutStack, id)
	if len(d.cutStack) > d.maxCutDepth {
		stale := d.cutStack[0]
		d.cutStack = d.cutStack[1:]
		d.Store.FreeSubtree(stale)
	}
}

// PopCut pops the most recently cut or copied subtree.
func (d *Document) PopCut() (store.NodeID, bool) {
	if len(d.cutStack) == 0 {
		return 0, false
	}
	id := d.cutStack[len(d.cutStack)-1]
	d.cutStack = d.cutStack[:len(d.cutStack)-1]
	return id, true
}

// PeekCut returns the top of the cut register without removing it.
func (d *Document) PeekCut() (store.NodeID, bool) {
	if len(d.cutStack) == 0 {
		return 0, false
	}
	return d.cutStack[len(d.cutStack)-1], true
}

// SwapCutTop replaces the top of the cut register with id, returning
// the node it displaced (for PasteSwap).
func (d *Document) SwapCutTop(id store.NodeID) (store.NodeID, bool) {
	if len(d.cutStack) == 0 {
		return 0, false
	}
	old := d.cutStack[len(d.cutStack)-1]
	d.cutStack[len(d.cutStack)-1] = id
	return old, true
}

// CutDepth reports how many entries are currently on the cut register.
func (d *Document) CutDepth() int { return len(d.cutStack) }
