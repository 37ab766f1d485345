package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dshills/synless/internal/engine"
	"github.com/dshills/synless/internal/keymap"
)

// lineFrontend is a placeholder Frontend: the real terminal backend
// (spec §1 Non-goals) is external. This reads one line per key event —
// good enough to drive the engine loop end-to-end without a terminal
// library, the same boundary keystorm draws between internal/engine
// (facade) and internal/renderer/backend (concrete terminal).
type lineFrontend struct {
	out io.Writer
	in  *bufio.Reader
}

func newLineFrontend(in io.Reader, out io.Writer) *lineFrontend {
	return &lineFrontend{out: out, in: bufio.NewReader(in)}
}

func (f *lineFrontend) Display(_ context.Context, g engine.Grid) error {
	_, err := fmt.Fprintf(f.out, "%v\n", g)
	return err
}

func (f *lineFrontend) ReadKey(_ context.Context) (keymap.KeySpec, error) {
	line, err := f.in.ReadString('\n')
	if err != nil && line == "" {
		return keymap.KeySpec{}, err
	}
	runes := []rune(line)
	for len(runes) > 0 && (runes[len(runes)-1] == '\n' || runes[len(runes)-1] == '\r') {
		runes = runes[:len(runes)-1]
	}
	if len(runes) == 0 {
		return keymap.KeySpec{Code: "Enter"}, nil
	}
	return keymap.KeySpec{Code: string(runes[0])}, nil
}
