// Package keymap implements Keymaps, Layers, Modes, and Menus (spec
// §4.7): a modal, stacked key-binding lookup with candidate/input/char
// menu support and the scripted-suspension ("block") protocol. Its
// prefix-lookup and layered-priority design is adapted from keystorm's
// internal/input/keymap (Registry, PrefixTree, LookupContext), trimmed
// from keystorm's file-type/"when"-condition model down to the
// spec's simpler Mode/Layer stack.
package keymap
