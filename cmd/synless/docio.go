package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/synless/internal/doc"
	"github.com/dshills/synless/internal/lang"
)

// fileDocIO is the concrete DocIO collaborator (spec §1 Non-goals:
// "process bootstrap and file I/O" is external to the core). Parsing an
// on-disk source file into a typed tree needs a per-language parser,
// itself an external collaborator the spec never specifies (only the
// pretty-printer's inverse is named, and only for notations, not
// arbitrary source text) — so Open here only confirms the file exists
// and hands back a fresh, empty document of the built-in "json" language,
// the same "no parser available yet" stance keystorm's own
// language-server integration takes for languages without a provider.
type fileDocIO struct {
	reg       *lang.Registry
	workspace string
}

func newFileDocIO(reg *lang.Registry, workspace string) *fileDocIO {
	return &fileDocIO{reg: reg, workspace: workspace}
}

func (f *fileDocIO) Open(path string) (*doc.Document, string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, "", fmt.Errorf("open %s: %w", path, err)
	}
	langName := "json"
	d, err := doc.New(f.reg, langName)
	if err != nil {
		return nil, "", err
	}
	return d, langName, nil
}

func (f *fileDocIO) Save(d *doc.Document, path string) error {
	snapshot, err := d.Store.DumpJSON(d.Root)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(snapshot), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	d.SetModified(false)
	return nil
}

func (f *fileDocIO) CurrentDir() (string, error) {
	return filepath.Abs(f.workspace)
}

func (f *fileDocIO) ListFilesAndDirs(path string) (files, dirs []string, err error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, nil, err
	}
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		} else {
			files = append(files, e.Name())
		}
	}
	return files, dirs, nil
}
