// Package store implements the Node Store (spec §4.2): an arena of
// typed-tree nodes keyed by stable ids, owning parent/child links and
// text payloads. Attach/detach never copy subtrees; they re-link parent
// pointers in constant time, the same discipline keystorm's
// internal/engine/buffer applies to byte ranges instead of child ids.
package store
