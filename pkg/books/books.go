package books

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Library wires the storage layer to the command operations. Every method
// maps onto one CLI command and performs at most one transaction.
type Library struct {
	store   *Store
	rebuild Rebuilder
	log     zerolog.Logger
}

// NewLibrary builds a Library over an open store. rebuild may be nil when no
// website rebuild is wanted.
func NewLibrary(store *Store, rebuild Rebuilder, log zerolog.Logger) *Library {
	return &Library{store: store, rebuild: rebuild, log: log}
}

// Open resolves where the database lives, opens it (creating the file and
// the data directory as needed), prepares the schema, and returns a ready
// Library.
func Open(ctx context.Context, cfg Config, log zerolog.Logger) (*Library, error) {
	path := cfg.DatabasePath
	if path == "" {
		dir, err := DataDir()
		if err != nil {
			return nil, err
		}
		if err := ensureDataDir(dir); err != nil {
			return nil, err
		}
		path = filepath.Join(dir, databaseFile)
	}
	log.Debug().Str("database", path).Msg("opening database")

	store, err := OpenStore(ctx, path)
	if err != nil {
		return nil, err
	}

	var rebuild Rebuilder
	if cfg.WebsiteDir != "" {
		rebuild = MakeRebuilder{Dir: cfg.WebsiteDir}
	}
	return NewLibrary(store, rebuild, log), nil
}

// Close releases the underlying database.
func (l *Library) Close() error {
	return l.store.Close()
}

// Add validates and stores a new book with its authors and optional URL.
func (l *Library) Add(ctx context.Context, title string, authors []string, url string) error {
	b := Book{Title: title, URL: url, Authors: authors}
	if err := b.Validate(); err != nil {
		return err
	}
	if err := l.store.Add(ctx, b); err != nil {
		return err
	}
	l.rebuildSite(ctx)
	return nil
}

// Start marks the book as started today.
func (l *Library) Start(ctx context.Context, title string) error {
	if err := l.store.Start(ctx, title, today()); err != nil {
		return err
	}
	l.rebuildSite(ctx)
	return nil
}

// Finish marks the book as finished today. A prior start is not required.
func (l *Library) Finish(ctx context.Context, title string) error {
	if err := l.store.Finish(ctx, title, today()); err != nil {
		return err
	}
	l.rebuildSite(ctx)
	return nil
}

// Rename changes a book's title, carrying its author rows along.
func (l *Library) Rename(ctx context.Context, oldTitle, newTitle string) error {
	if err := l.store.Rename(ctx, oldTitle, newTitle); err != nil {
		return err
	}
	l.rebuildSite(ctx)
	return nil
}

// SetURL validates and stores the book's URL.
func (l *Library) SetURL(ctx context.Context, title, url string) error {
	if err := validateURL(url); err != nil {
		return err
	}
	if err := l.store.SetURL(ctx, title, url); err != nil {
		return err
	}
	l.rebuildSite(ctx)
	return nil
}

// List writes the titles matching f to w, one per line.
func (l *Library) List(ctx context.Context, f Filter, w io.Writer) error {
	titles, err := l.store.List(ctx, f)
	if err != nil {
		return err
	}
	for _, title := range titles {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return wrapf(KindEnvironment, err, "cannot write output")
		}
	}
	return nil
}

// Show writes the book's details to w: the title, then URL and reading
// dates when set, then the authors in alphabetical order. A title that is
// not stored writes nothing; that is not an error.
func (l *Library) Show(ctx context.Context, title string, w io.Writer) error {
	b, ok, err := l.store.Get(ctx, title)
	if err != nil {
		return err
	}
	if !ok {
		l.log.Debug().Str("title", title).Msg("not stored, nothing to show")
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", b.Title)
	if b.URL != "" {
		fmt.Fprintf(&sb, "URL: %s\n", b.URL)
	}
	if b.Started() {
		fmt.Fprintf(&sb, "Started: %s\n", b.StartDate)
	}
	if b.Finished() {
		fmt.Fprintf(&sb, "Finished: %s\n", b.EndDate)
	}
	fmt.Fprintf(&sb, "Authors: %s\n", strings.Join(b.Authors, ", "))
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return wrapf(KindEnvironment, err, "cannot write output")
	}
	return nil
}

// rebuildSite triggers the website rebuild after a successful mutation.
// Failures are warnings; the stored change stands either way.
func (l *Library) rebuildSite(ctx context.Context) {
	if l.rebuild == nil {
		l.log.Debug().Msg("no website directory configured, skipping rebuild")
		return
	}
	l.log.Debug().Msg("rebuilding website")
	if err := l.rebuild.Rebuild(ctx); err != nil {
		l.log.Warn().Err(err).Msg("website rebuild failed")
	}
}
