package engine

import "github.com/dshills/synless/internal/scripting"

// registerDefaultBuiltins installs the zero-argument scripting-surface
// operations as builtins a keymap can bind directly by name, mirroring
// keystorm's editor.* built-in action table (internal/app/eventloop.go
// editingActionPrefixes). Operations that take arguments (tree_ed_insert,
// search_for_*, bookmarks by char, ...) are reached through Script
// programs instead, or via RegisterBuiltin closures a script installs
// at init time.
func registerDefaultBuiltins(e *Engine) {
	reg := func(name string, fn func(h *scripting.Host) error) {
		e.builtins[name] = fn
	}

	reg("tree_nav_parent", (*scripting.Host).TreeNavParent)
	reg("tree_nav_first_child", (*scripting.Host).TreeNavFirstChild)
	reg("tree_nav_last_child", (*scripting.Host).TreeNavLastChild)
	reg("tree_nav_next", (*scripting.Host).TreeNavNext)
	reg("tree_nav_prev", (*scripting.Host).TreeNavPrev)
	reg("tree_nav_first", (*scripting.Host).TreeNavFirst)
	reg("tree_nav_last", (*scripting.Host).TreeNavLast)
	reg("tree_nav_next_leaf", (*scripting.Host).TreeNavNextLeaf)
	reg("tree_nav_prev_leaf", (*scripting.Host).TreeNavPrevLeaf)
	reg("tree_ed_remove", (*scripting.Host).TreeEdRemove)
	reg("tree_ed_enter_text", (*scripting.Host).TreeEdEnterText)

	reg("text_nav_exit", (*scripting.Host).TextNavExit)
	reg("text_nav_left", (*scripting.Host).TextNavLeft)
	reg("text_nav_right", (*scripting.Host).TextNavRight)
	reg("text_ed_backspace", (*scripting.Host).TextEdBackspace)
	reg("text_ed_delete", (*scripting.Host).TextEdDelete)

	reg("cut", (*scripting.Host).Cut)
	reg("copy", (*scripting.Host).Copy)
	reg("paste", (*scripting.Host).Paste)
	reg("paste_swap", (*scripting.Host).PasteSwap)

	reg("undo", func(h *scripting.Host) error { _, err := h.Undo(); return err })
	reg("redo", func(h *scripting.Host) error { _, err := h.Redo(); return err })

	reg("search_next", (*scripting.Host).SearchNext)
	reg("search_prev", (*scripting.Host).SearchPrev)
	reg("search_highlight_off", func(h *scripting.Host) error { h.SearchHighlightOff(); return nil })

	reg("menu_selection_up", (*scripting.Host).MenuSelectionUp)
	reg("menu_selection_down", (*scripting.Host).MenuSelectionDown)
	reg("menu_selection_backspace", (*scripting.Host).MenuSelectionBackspace)
	reg("menu_confirm_selection", (*scripting.Host).MenuConfirmSelection)
	reg("close_menu", (*scripting.Host).CloseMenu)

	reg("escape", func(h *scripting.Host) error { h.Escape(); return nil })
	reg("abort", (*scripting.Host).Abort)
	reg("quit", (*scripting.Host).Quit)

	reg("clear_last_log", func(h *scripting.Host) error { h.ClearLastLog(); return nil })
}
