// Package main implements books, a command-line reading-list manager
// backed by SQLite.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ftbfs/books/pkg/books"
)

var versionString = books.Version

// app carries the global flags and the logger shared by every subcommand.
type app struct {
	database   string
	configPath string
	verbose    bool

	log    zerolog.Logger
	stdout io.Writer
	stderr io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and maps its failure to the exit code: 2 for
// usage mistakes, 1 for everything else. Every failure prints a single
// diagnostic line prefixed "books: " on stderr.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "books: %v\n", err)
		switch books.KindOf(err) {
		// Errors without a kind come from argument parsing.
		case 0, books.KindUsage:
			return 2
		}
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Track the books you read",
		Long: `books keeps a personal reading list in a SQLite database in your
data directory and can render it as HTML for a personal website.

Books are identified by title. Add one with its authors, mark it
started and finished as you go, and list or show what is stored.`,
		Version:       versionString,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = newLogger(a.stderr, a.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return &books.Error{Kind: books.KindUsage, Msg: "no command provided, see 'books --help'"}
		},
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.database, "database", "", "database file to use instead of the per-user default")
	flags.StringVar(&a.configPath, "config", "", "config file to read (default <user config dir>/books/config.env)")
	flags.BoolVar(&a.verbose, "verbose", false, "enable debug output on stderr")

	cmd.AddCommand(
		newAddCmd(a),
		newStartCmd(a),
		newFinishCmd(a),
		newListCmd(a),
		newRenameCmd(a),
		newSetURLCmd(a),
		newShowCmd(a),
		newRenderCmd(a),
		newVersionCmd(a),
	)
	return cmd
}

// newLogger builds the stderr console logger. Warnings always show,
// --verbose adds debug detail.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// loadConfig reads the config file and applies the flag overrides. The
// --database flag wins over the file's DATABASE key. A missing file is
// only an error when --config named it explicitly.
func (a *app) loadConfig() (books.Config, error) {
	path := a.configPath
	if path == "" {
		var err error
		if path, err = books.DefaultConfigPath(); err != nil {
			return books.Config{}, err
		}
	} else if _, err := os.Stat(path); err != nil {
		return books.Config{}, &books.Error{Kind: books.KindEnvironment, Msg: "cannot read " + path, Err: err}
	}
	cfg, err := books.LoadConfig(path)
	if err != nil {
		return books.Config{}, err
	}
	if a.database != "" {
		cfg.DatabasePath = a.database
	}
	return cfg, nil
}

// withLibrary opens the library per the active flags and config, runs f,
// and closes it again.
func (a *app) withLibrary(f func(ctx context.Context, lib *books.Library, cfg books.Config) error) error {
	ctx := context.Background()
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	lib, err := books.Open(ctx, cfg, a.log)
	if err != nil {
		return err
	}
	defer lib.Close()
	return f(ctx, lib, cfg)
}

// paged writes the output produced by f through a pager when stdout is
// a terminal. A pager that exits badly is a warning, not a failure.
func (a *app) paged(cfg books.Config, f func(w io.Writer) error) error {
	pager := books.NewPager(a.stdout, cfg.Pager, a.log)
	if err := f(pager.Writer()); err != nil {
		pager.Close()
		return err
	}
	if err := pager.Close(); err != nil {
		a.log.Warn().Err(err).Msg("pager exited with an error")
	}
	return nil
}
