// SPDX-License-Identifier: MIT

// Package books tracks a personal reading list in an embedded SQLite
// database.  Books are keyed by title, carry an optional URL and the
// dates reading started and finished, and own a set of author names.
// The package backs the books command-line tool; everything here is
// synchronous and single-shot.
//
// # Storage
//
// The database lives in a per-user data directory (0700) as
// database.sqlite3, or wherever Config.DatabasePath points.  The schema
// is two tables:
//
//	book(title TEXT PRIMARY KEY, url TEXT, start_date TEXT, end_date TEXT)
//	author(title TEXT REFERENCES book(title)
//	       ON DELETE CASCADE ON UPDATE CASCADE,
//	       author TEXT, PRIMARY KEY (title, author))
//
// Schema creation is idempotent and runs on every open.  Foreign keys
// are enabled on the connection and verified; renaming a book carries
// its author rows along through the cascade.  Dates are local calendar
// dates stored as YYYY-MM-DD text.
//
// # Quick start
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/rs/zerolog"
//
//	    "github.com/ftbfs/books/pkg/books"
//	)
//
//	func main() {
//	    ctx := context.Background()
//	    log := zerolog.New(os.Stderr)
//
//	    lib, _ := books.Open(ctx, books.Config{}, log)
//	    defer lib.Close()
//
//	    lib.Add(ctx, "Dune", []string{"Frank Herbert"}, "")
//	    lib.Start(ctx, "Dune")
//	    lib.Finish(ctx, "Dune")
//	    lib.Show(ctx, "Dune", os.Stdout)
//	}
//
// # Operations
//
//	(*Library).Add(ctx, title, authors, url)  → error
//	(*Library).Start(ctx, title)              → error
//	(*Library).Finish(ctx, title)             → error
//	(*Library).Rename(ctx, old, new)          → error
//	(*Library).SetURL(ctx, title, url)        → error
//	(*Library).List(ctx, filter, w)           → error
//	(*Library).Show(ctx, title, w)            → error
//	(*Library).Render(ctx, complete, w)       → error
//
// Add runs in one transaction so a duplicate title or author leaves the
// store unchanged.  Start, Finish, Rename and SetURL report not-found
// when no row matches.  Render emits one HTML <li> fragment per book
// for embedding in a personal website, joining up to three author names
// into prose ("A", "A and B", "A, B, and C"); longer lists are refused.
//
// # Errors
//
// Every failure is an *Error carrying a Kind: Usage, Environment,
// NotFound, DataFormat or Storage.  KindOf extracts the kind through
// any wrapping, and the CLI maps it to an exit code.  Nothing here
// retries; a failed operation is terminal for the invocation.
//
// # Collaborators
//
// Pager routes long output through an interactive pager when stdout is
// a terminal.  A Rebuilder, when configured, regenerates a personal
// website (by running make in its directory) after each successful
// mutation; its failures are warnings, never errors.
//
// The companion CLI lives under cmd/books.
package books
