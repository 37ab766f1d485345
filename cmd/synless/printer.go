package main

import (
	"context"

	"github.com/dshills/synless/internal/engine"
	"github.com/dshills/synless/internal/store"
)

// treeDumpPrinter is a placeholder Printer: the real pretty-printer
// (spec §6's notation grammar evaluator) is an out-of-scope external
// collaborator, so the CLI falls back to the debug JSON tree dump
// (internal/store.DumpJSON) as its rendering until one is wired in.
type treeDumpPrinter struct{}

func (treeDumpPrinter) Render(_ context.Context, s *store.Store, root store.NodeID, _ string, _, _ int) (engine.Grid, error) {
	out, err := s.DumpJSON(root)
	if err != nil {
		return nil, err
	}
	return engine.Grid(out), nil
}
