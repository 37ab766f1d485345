package engine

import (
	"context"

	"github.com/dshills/synless/internal/cursor"
	"github.com/dshills/synless/internal/errs"
	"github.com/dshills/synless/internal/keymap"
)

// currentMode determines dispatch mode per spec §4.7: "Text if cursor
// is in text, else Menu if a menu is open, else Tree."
func (e *Engine) currentMode() keymap.Mode {
	if e.Host.Active.Cursor().Kind == cursor.TextAt {
		return keymap.Mode{Kind: keymap.ModeText}
	}
	if mode, ok := e.Host.OpenMenuMode(); ok {
		return mode
	}
	return keymap.Mode{Kind: keymap.ModeTree}
}

// dispatch resolves key against the layer stack for the current mode
// and executes the matched program, or falls back to the unmatched-key
// rules (spec §4.7).
func (e *Engine) dispatch(ctx context.Context, key keymap.KeySpec) error {
	mode := e.currentMode()

	if b, ok := e.Host.Layers.Resolve(mode, key); ok {
		return e.execute(ctx, b)
	}

	switch mode.Kind {
	case keymap.ModeText:
		if key.Printable() {
			return e.Host.TextEdInsert(key.Code)
		}
	case keymap.ModeMenu:
		if key.Printable() {
			return e.Host.MenuAppendInput(key.Code)
		}
	}
	e.log.Debugf("no binding for %s in mode %v", key, mode)
	return nil
}

// execute runs a resolved Binding's Program (spec §4.8 step 4).
// Builtins run synchronously on the calling goroutine; scripts are
// launched on their own goroutine so a blocking open_menu call never
// stalls the render/read loop (spec §5).
func (e *Engine) execute(ctx context.Context, b keymap.Binding) error {
	if b.Program.IsScript() {
		if e.Scripts == nil {
			return errs.Newf(errs.Script, "execute", "no ScriptRunner configured")
		}
		handle := b.Program.Script
		go func() {
			if err := e.Scripts.Run(ctx, handle, e.Host); err != nil {
				e.logErr(err)
			}
		}()
		return nil
	}

	e.mu.Lock()
	fn, ok := e.builtins[b.Program.Builtin]
	e.mu.Unlock()
	if !ok {
		return errs.New(errs.Script, "execute", ErrUnknownBuiltin)
	}
	if err := fn(e.Host); err != nil {
		return err
	}
	if b.Program.Builtin == "quit" {
		return ErrQuit
	}
	return nil
}
