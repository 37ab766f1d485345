// Package main is the entry point for the Synless editor CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/synless/internal/doc"
	"github.com/dshills/synless/internal/engine"
	"github.com/dshills/synless/internal/keymap"
	"github.com/dshills/synless/internal/lang"
	"github.com/dshills/synless/internal/lang/builtin"
	"github.com/dshills/synless/internal/scripting"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		return 1
	}
	return exitCode
}

// exitCode holds the code runEditor reported for the open subcommand;
// run returns it when Execute succeeds. runEditor pairs every nonzero
// code with an error, so a nonzero exit goes through Execute's error
// path (cobra prints the error and run returns 1).
var exitCode int

func newRootCmd() *cobra.Command {
	var (
		logLevel  string
		workspace string
	)

	root := &cobra.Command{
		Use:   "synless",
		Short: "Synless — a typed-tree structure editor",
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&workspace, "workspace", ".", "workspace/project directory")

	root.AddCommand(newOpenCmd(&logLevel, &workspace))
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "synless %s (%s)\n", version, commit)
			return nil
		},
	}
}

func newOpenCmd(logLevel, workspace *string) *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "open [path]",
		Short: "Open the editor, optionally on an existing document",
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			logger := newSlogLogger(*logLevel)
			code, err := runEditor(cmd.Context(), *workspace, path, demo, logger)
			exitCode = code
			return err
		},
	}
	cmd.Flags().BoolVar(&demo, "demo", false, "open an empty document of the built-in JSON demo language, ignoring any path")
	return cmd
}

func runEditor(ctx context.Context, workspace, path string, demo bool, logger engine.Logger) (int, error) {
	reg := lang.NewRegistry()
	if err := reg.Load(builtin.JSON()); err != nil {
		return 1, fmt.Errorf("load builtin json language: %w", err)
	}

	docIO := newFileDocIO(reg, workspace)

	var d *doc.Document
	var err error
	switch {
	case path == "" || demo:
		d, err = doc.New(reg, "json")
	default:
		d, _, err = docIO.Open(path)
	}
	if err != nil {
		return 1, fmt.Errorf("open document: %w", err)
	}

	layers := keymap.NewStack()
	layers.Push(defaultLayer())

	host := scripting.NewHost(d, reg, layers, docIO)
	e := engine.New(host, treeDumpPrinter{}, newLineFrontend(os.Stdin, os.Stdout), noopScripts{}, engine.WithLogger(logger))

	if err := e.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 1, err
	}
	return 0, nil
}

func newSlogLogger(level string) engine.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return &slogLogger{l: slog.New(handler)}
}

type slogLogger struct{ l *slog.Logger }

func (s *slogLogger) Debugf(format string, args ...any) { s.l.Debug(fmt.Sprintf(format, args...)) }
func (s *slogLogger) Errorf(format string, args ...any) { s.l.Error(fmt.Sprintf(format, args...)) }

type noopScripts struct{}

func (noopScripts) Run(_ context.Context, _ string, _ *scripting.Host) error { return nil }
