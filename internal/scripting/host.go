package scripting

import (
	"github.com/dshills/synless/internal/doc"
	"github.com/dshills/synless/internal/errs"
	"github.com/dshills/synless/internal/keymap"
	"github.com/dshills/synless/internal/lang"
	"github.com/dshills/synless/internal/search"
)

// DocIO is the file-system/process-bootstrap collaborator a real CLI
// wires in (spec §1 Non-goals: "process bootstrap and file I/O" is
// out of scope for the core). Host delegates open_doc/save_doc/etc. to
// it; a nil DocIO makes those calls fail with a ScriptError.
type DocIO interface {
	Open(path string) (*doc.Document, string, error) // returns doc + detected language name
	Save(d *doc.Document, path string) error
	CurrentDir() (string, error)
	ListFilesAndDirs(path string) (files, dirs []string, err error)
}

// Host is the scripting surface bound to one open document, its
// language registry, search state, and keymap layer stack (spec §6).
// Every exported method corresponds to one named scripting-surface
// function; Go naming is CamelCase where the spec's is snake_case.
type Host struct {
	Active *doc.Document
	Lang   *lang.Registry
	Search *search.Searcher
	Layers *keymap.Stack
	IO     DocIO

	menus       map[string]*keymap.Menu
	menuKeymaps map[string]*keymap.Keymap
	openMenu    *keymap.Menu
	lastLog     string
}

// NewHost builds a scripting Host over an already-open document.
func NewHost(active *doc.Document, reg *lang.Registry, layers *keymap.Stack, io DocIO) *Host {
	return &Host{
		Active:      active,
		Lang:        reg,
		Search:      search.New(active.Store),
		Layers:      layers,
		IO:          io,
		menus:       make(map[string]*keymap.Menu),
		menuKeymaps: make(map[string]*keymap.Keymap),
	}
}

func (h *Host) noDocIO(op string) error {
	return errs.Newf(errs.Script, op, "no DocIO collaborator configured")
}

// OpenMenuMode reports the Mode of the currently open menu, if any —
// used by the engine loop to decide dispatch mode (spec §4.7).
func (h *Host) OpenMenuMode() (keymap.Mode, bool) {
	if h.openMenu == nil {
		return keymap.Mode{}, false
	}
	return keymap.Mode{Kind: keymap.ModeMenu, Menu: h.openMenu.Name}, true
}
