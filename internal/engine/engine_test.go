package engine

import (
	"context"
	"testing"
	"time"

	"github.com/dshills/synless/internal/cursor"
	"github.com/dshills/synless/internal/doc"
	"github.com/dshills/synless/internal/keymap"
	"github.com/dshills/synless/internal/lang"
	"github.com/dshills/synless/internal/lang/builtin"
	"github.com/dshills/synless/internal/scripting"
	"github.com/dshills/synless/internal/store"
)

type fakePrinter struct{ calls int }

func (f *fakePrinter) Render(_ context.Context, _ *store.Store, _ store.NodeID, _ string, _, _ int) (Grid, error) {
	f.calls++
	return Grid("<rendered>"), nil
}

type fakeFrontend struct {
	displayed int
	keys      []keymap.KeySpec
	pos       int
}

func (f *fakeFrontend) Display(_ context.Context, _ Grid) error {
	f.displayed++
	return nil
}

func (f *fakeFrontend) ReadKey(_ context.Context) (keymap.KeySpec, error) {
	if f.pos >= len(f.keys) {
		return keymap.KeySpec{}, context.Canceled
	}
	k := f.keys[f.pos]
	f.pos++
	return k, nil
}

type fakeScripts struct {
	ran  []string
	done chan string
}

func (f *fakeScripts) Run(_ context.Context, handle string, _ *scripting.Host) error {
	f.ran = append(f.ran, handle)
	f.done <- handle
	return nil
}

func newTestEngine(t *testing.T, keys []keymap.KeySpec) (*Engine, *fakeFrontend) {
	t.Helper()
	reg := lang.NewRegistry()
	if err := reg.Load(builtin.JSON()); err != nil {
		t.Fatalf("load json lang: %v", err)
	}
	d, err := doc.New(reg, "json")
	if err != nil {
		t.Fatalf("doc.New: %v", err)
	}

	layers := keymap.NewStack()
	treeKm := keymap.New("tree")
	treeKm.Bind(keymap.KeySpec{Code: "u"}, keymap.Binding{Label: "undo", Program: keymap.Program{Builtin: "undo"}})
	layer := keymap.NewLayer("base")
	layer.AddModeKeymap(keymap.Mode{Kind: keymap.ModeTree}, treeKm)
	layers.Push(layer)

	h := scripting.NewHost(d, reg, layers, nil)
	fp := &fakePrinter{}
	ff := &fakeFrontend{keys: keys}
	fs := &fakeScripts{done: make(chan string, 4)}
	e := New(h, fp, ff, fs)
	return e, ff
}

func TestStepRendersAndReadsOneKey(t *testing.T) {
	e, ff := newTestEngine(t, []keymap.KeySpec{{Code: "u"}})
	if err := e.Step(context.Background()); err != nil {
		t.Fatalf("step: %v", err)
	}
	if ff.displayed != 1 {
		t.Fatalf("expected one render, got %d", ff.displayed)
	}
}

func TestDispatchUnknownKeyLogsAndContinues(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	err := e.dispatch(context.Background(), keymap.KeySpec{Code: "z"})
	if err != nil {
		t.Fatalf("unmatched tree-mode key should not error, got %v", err)
	}
}

func TestDispatchRunsBuiltin(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	if err := e.dispatch(context.Background(), keymap.KeySpec{Code: "u"}); err != nil {
		t.Fatalf("dispatch undo: %v", err)
	}
}

func TestQuitBuiltinReturnsErrQuit(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	km, _ := e.Host.Layers.ResolveKeymap(keymap.Mode{Kind: keymap.ModeTree})
	km.Bind(keymap.KeySpec{Code: "q"}, keymap.Binding{Program: keymap.Program{Builtin: "quit"}})
	if err := e.dispatch(context.Background(), keymap.KeySpec{Code: "q"}); err != ErrQuit {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
}

func TestScriptProgramRunsAsynchronously(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	fs := e.Scripts.(*fakeScripts)
	km, _ := e.Host.Layers.ResolveKeymap(keymap.Mode{Kind: keymap.ModeTree})
	km.Bind(keymap.KeySpec{Code: "i"}, keymap.Binding{Program: keymap.Program{Script: "insert_menu"}})

	if err := e.dispatch(context.Background(), keymap.KeySpec{Code: "i"}); err != nil {
		t.Fatalf("dispatch script: %v", err)
	}

	select {
	case <-fs.done:
	case <-time.After(time.Second):
		t.Fatalf("script did not run within timeout")
	}
	if len(fs.ran) == 0 {
		t.Fatalf("expected script to have run")
	}
	if fs.ran[0] != "insert_menu" {
		t.Fatalf("unexpected script handle: %v", fs.ran)
	}
}

func TestTextModeUnmatchedPrintableKeyInsertsText(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	// Manually enter text mode on a Texty node to exercise the fallback.
	ct, ok := e.Host.Lang.Construct("json", "Number")
	if !ok {
		t.Fatalf("construct Number not found")
	}
	node := e.Host.Active.Store.Make("json", ct)
	e.Host.Active.SetCursor(cursor.InText(node, 0))

	if err := e.dispatch(context.Background(), keymap.KeySpec{Code: "5"}); err != nil {
		t.Fatalf("dispatch printable key in text mode: %v", err)
	}
	text, err := e.Host.Active.Store.Text(node)
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if text != "5" {
		t.Fatalf("expected inserted text %q, got %q", "5", text)
	}
}
