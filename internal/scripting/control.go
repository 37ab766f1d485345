package scripting

import "github.com/dshills/synless/internal/errs"

// Escape implements escape() (spec §5): cancels the innermost open
// menu, unblocking any script frame waiting in Block() with
// ErrMenuCanceled. A no-op when no menu is open.
func (h *Host) Escape() {
	if h.openMenu != nil {
		h.openMenu.Cancel()
	}
}

// Abort implements abort(): aborts the in-progress undo group, if any,
// rolling back every primitive applied so far this command.
func (h *Host) Abort() error {
	return h.Active.Log().Abort()
}

// Quit implements quit(): reports whether it is safe to exit (no
// unsaved changes); the process-exit act itself belongs to cmd/synless,
// which is outside the core per spec §1 Non-goals.
func (h *Host) Quit() error {
	if h.Active.IsModified() {
		return errs.Newf(errs.Script, "quit", "document has unsaved changes")
	}
	return nil
}
