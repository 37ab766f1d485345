// Package cursor implements the Cursor & Navigation component (spec
// §4.4): a tagged location within the tree plus tree-mode and text-mode
// traversal. It mirrors the shape of keystorm's internal/engine/cursor
// package (a tagged position type with pure, store-driven transforms)
// adapted from byte offsets in a rope to node ids in a typed tree.
package cursor
