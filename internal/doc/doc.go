// Package doc implements Document (spec §3/§4.3): the owning object
// that ties a node store, a language, the single cursor, the bookmark
// table, the cut register stack, and the Edit Log together into one
// editable unit. Its shape mirrors keystorm's internal/app.Document,
// which bundles a buffer engine with path/version/modified bookkeeping,
// adapted from a text buffer to a typed-tree store.
package doc
