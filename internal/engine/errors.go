package engine

import "errors"

// Errors returned by Engine dispatch, independent of the categorized
// *errs.Error a command or script may return.
var (
	// ErrNoBinding describes a key that no layer binds in the current
	// mode. Dispatch does not return it: an unmatched key is logged at
	// debug level and ignored (spec §4.7).
	ErrNoBinding = errors.New("no binding for key in current mode")

	// ErrUnknownBuiltin indicates a Binding named a builtin Engine never
	// registered.
	ErrUnknownBuiltin = errors.New("unknown builtin command")

	// ErrQuit is returned by Step when the quit builtin succeeds,
	// signaling the CLI's run loop to stop (spec §6: "Exit codes: 0
	// normal, nonzero on abort").
	ErrQuit = errors.New("quit requested")
)
