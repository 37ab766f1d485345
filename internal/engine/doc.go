// Package engine implements the Engine Loop (spec §4.8): render, read
// one key, resolve it against the layer stack, execute the resolved
// program, and categorize any resulting error. It is grounded on
// keystorm's internal/app event loop (handleBackendEvent,
// processModeResult, dispatchAction) and this package's own prior
// text-buffer Engine facade, adapted from a mode-manager/dispatcher
// pair over a byte buffer to the spec's Tree/Text/Menu dispatch over a
// single tree Document.
//
// The pretty-printer and terminal/input backend named in spec §6/§9
// are out-of-scope external collaborators; Printer and Frontend are
// the interfaces a concrete renderer and input backend implement.
package engine
