package keymap

import (
	"context"
	"errors"
)

// MenuKind is one of Candidate, InputString, or Char (spec §4.7); it
// determines how unmatched keys are interpreted while the menu is
// open.
type MenuKind int

const (
	KindCandidate MenuKind = iota
	KindInputString
	KindChar
)

// ErrMenuCanceled is delivered to a blocked script frame when the
// engine's escape command aborts the innermost menu (spec §5).
var ErrMenuCanceled = errors.New("menu canceled")

// Menu holds selection and input state for one open menu, plus the
// single suspension point a scripted command can block on (spec §5:
// "Suspension occurs at exactly one point").
type Menu struct {
	Name       string
	Kind       MenuKind
	SelectFirst bool // Candidate kind only

	Filter    string // Candidate kind: current filter text
	Input     string // InputString kind: current input text
	Selection int    // index into the filtered candidate list

	resultCh chan any
	cancelCh chan struct{}
}

// NewMenu creates a menu of the given kind.
func NewMenu(name string, kind MenuKind) *Menu {
	return &Menu{
		Name:     name,
		Kind:     kind,
		resultCh: make(chan any, 1),
		cancelCh: make(chan struct{}),
	}
}

// Block suspends the calling goroutine (the scripting host's
// continuation) until the menu is confirmed, canceled, or ctx is done.
// This is the engine's one blocking primitive outside the frontend's
// key-read (spec §5).
func (m *Menu) Block(ctx context.Context) (any, error) {
	select {
	case v := <-m.resultCh:
		return v, nil
	case <-m.cancelCh:
		return nil, ErrMenuCanceled
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Confirm delivers the chosen candidate's payload to any blocked
// script frame and closes the menu.
func (m *Menu) Confirm(payload any) {
	m.resultCh <- payload
}

// Cancel aborts the menu in response to escape (spec §5), unblocking
// any waiting script frame with ErrMenuCanceled.
func (m *Menu) Cancel() {
	close(m.cancelCh)
}
