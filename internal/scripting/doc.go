// Package scripting implements the scripting surface (spec §6): the
// set of named operations a scripting host calls back into the engine
// through, plus the menu-lifecycle and layer/keymap builder calls used
// to construct UI at script-init time. The scripting host itself (the
// Lua VM keystorm embeds via github.com/yuin/gopher-lua) is an
// out-of-scope external collaborator; this package is the Go-side
// surface such a host would bind its functions to, grounded on the
// per-concern module split of keystorm's internal/plugin/api
// (BufferModule, CursorModule, KeymapModule, ...), minus the
// lua.LState marshaling those modules perform.
package scripting
