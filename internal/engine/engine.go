package engine

import (
	"context"
	"sync"

	"github.com/dshills/synless/internal/errs"
	"github.com/dshills/synless/internal/keymap"
	"github.com/dshills/synless/internal/scripting"
	"github.com/dshills/synless/internal/store"
)

// Grid is the styled character grid a Printer produces and a Frontend
// displays. Its internal shape is the renderer's concern (spec §1
// Non-goals); the engine only ferries it between the two.
type Grid any

// Printer is the pretty-printer collaborator (spec §4.8 step 1,
// §6 notation grammar). Out of scope for the core; it needs both the
// Store (to walk the tree) and the root id (where to start).
type Printer interface {
	Render(ctx context.Context, s *store.Store, root store.NodeID, notation string, width, height int) (Grid, error)
}

// Frontend is the terminal/input backend collaborator (spec §1
// Non-goals: "terminal rendering ... and OS process bootstrap").
type Frontend interface {
	Display(ctx context.Context, g Grid) error
	ReadKey(ctx context.Context) (keymap.KeySpec, error)
}

// ScriptRunner executes a named script callback against the Host,
// standing in for the Lua VM keystorm embeds (out of scope here; see
// internal/scripting/doc.go). Run is expected to call h.OpenMenu,
// which blocks its calling goroutine — Engine always invokes Run on
// its own goroutine so the render/read loop is never blocked by a
// suspended script frame (spec §5).
type ScriptRunner interface {
	Run(ctx context.Context, handle string, h *scripting.Host) error
}

// Logger is the small leveled-logging collaborator the engine loop
// reports categorized errors through (spec §4.8 step 6, §7).
type Logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Errorf(string, ...any) {}

// Builtin is a zero-argument command registered under a name a Binding
// can reference directly (spec §4.7's "built-in command identifier").
// Commands needing arguments are bound as Script programs instead,
// since the spec's Binding carries no argument list of its own.
type Builtin func(h *scripting.Host) error

// Engine drives the render/read/resolve/execute/log loop (spec §4.8)
// over one scripting Host. It owns no document state itself — Host and
// its Active Document are the single source of truth (spec §5: "the
// Node Store, Document, Edit Log, Keymap stack, and registers are
// owned by the engine").
type Engine struct {
	mu sync.Mutex

	Host     *scripting.Host
	Printer  Printer
	Frontend Frontend
	Scripts  ScriptRunner

	builtins map[string]Builtin

	width, height int
	notation      string
	log           Logger
}

// New creates an Engine bound to a Host, a Printer, a Frontend, and a
// ScriptRunner. All four are required for Step to make progress; a nil
// ScriptRunner is acceptable if the keymap never binds a Script
// program.
func New(h *scripting.Host, p Printer, f Frontend, sr ScriptRunner, opts ...Option) *Engine {
	e := &Engine{
		Host:     h,
		Printer:  p,
		Frontend: f,
		Scripts:  sr,
		builtins: make(map[string]Builtin),
		width:    DefaultWidth,
		height:   DefaultHeight,
		log:      nopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.notation == "" {
		if name, ok := h.Lang.DefaultDisplayNotation(h.Active.LangName); ok {
			e.notation = name
		}
	}
	registerDefaultBuiltins(e)
	return e
}

// RegisterBuiltin installs or replaces a named zero-argument command.
// Called during script-driven keymap setup (spec §6's keymap builders)
// to expose additional Host operations (e.g. a per-construct insert
// closure) beyond the default set.
func (e *Engine) RegisterBuiltin(name string, b Builtin) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.builtins[name] = b
}

// Step runs one iteration of the loop: render, read a key, resolve,
// execute, and categorize any error (spec §4.8). It returns ErrQuit
// when the quit builtin completes successfully.
func (e *Engine) Step(ctx context.Context) error {
	if err := e.render(ctx); err != nil {
		e.logErr(err)
		return err
	}

	key, err := e.Frontend.ReadKey(ctx)
	if err != nil {
		return err
	}

	if err := e.dispatch(ctx, key); err != nil {
		if err == ErrQuit {
			return ErrQuit
		}
		e.logErr(err)
	}
	return nil
}

// Run repeatedly Steps until ctx is done, Step returns ErrQuit (in which
// case Run returns nil), or Step returns any other error from a failed
// render or ReadKey (dispatch errors are already logged and absorbed
// inside Step, never reaching here).
func (e *Engine) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch err := e.Step(ctx); err {
		case nil:
			continue
		case ErrQuit:
			return nil
		default:
			return err
		}
	}
}

func (e *Engine) render(ctx context.Context) error {
	d := e.Host.Active
	grid, err := e.Printer.Render(ctx, d.Store, d.Root, e.notation, e.width, e.height)
	if err != nil {
		return errs.New(errs.Other, "render", err)
	}
	return e.Frontend.Display(ctx, grid)
}

func (e *Engine) logErr(err error) {
	cat := errs.Classify(err)
	e.log.Errorf("%s: %v", cat, err)
}
