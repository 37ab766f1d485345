// Package edit implements the Edit Log (spec §4.3): reversible
// primitive edits grouped into undo groups, with undo/redo semantics.
// Primitives and their Do/Undo pairing mirror keystorm's
// internal/engine/history.Command (Execute/Undo) and
// internal/engine/history.History (grouping, bounded stacks), adapted
// from byte-range text edits to typed-tree node edits.
package edit
