package main

import "github.com/dshills/synless/internal/keymap"

// defaultLayer is the base layer registered at startup, standing in for
// the init script named in spec §6 ("invoking with no arguments opens
// the editor with the default layer/init script"). A real deployment
// builds this through the internal/scripting keymap/layer builders from
// a script; this hand-built layer covers enough Tree-mode navigation and
// control bindings to drive the engine loop without one.
func defaultLayer() *keymap.Layer {
	tree := keymap.New("tree")
	tree.Bind(keymap.KeySpec{Code: "q"}, keymap.Binding{Label: "quit", Program: keymap.Program{Builtin: "quit"}})
	tree.Bind(keymap.KeySpec{Code: "u"}, keymap.Binding{Label: "undo", Program: keymap.Program{Builtin: "undo"}})
	tree.Bind(keymap.KeySpec{Code: "r"}, keymap.Binding{Label: "redo", Program: keymap.Program{Builtin: "redo"}})
	tree.Bind(keymap.KeySpec{Code: "x"}, keymap.Binding{Label: "remove", Program: keymap.Program{Builtin: "tree_ed_remove"}})
	tree.Bind(keymap.KeySpec{Code: "i"}, keymap.Binding{Label: "enter text", Program: keymap.Program{Builtin: "tree_ed_enter_text"}})

	text := keymap.New("text")
	text.Bind(keymap.KeySpec{Code: "Enter"}, keymap.Binding{Label: "exit text", Program: keymap.Program{Builtin: "text_nav_exit"}})
	text.Bind(keymap.KeySpec{Mods: keymap.Ctrl, Code: "h"}, keymap.Binding{Label: "backspace", Program: keymap.Program{Builtin: "text_ed_backspace"}})

	layer := keymap.NewLayer("default")
	layer.AddModeKeymap(keymap.Mode{Kind: keymap.ModeTree}, tree)
	layer.AddModeKeymap(keymap.Mode{Kind: keymap.ModeText}, text)
	return layer
}
