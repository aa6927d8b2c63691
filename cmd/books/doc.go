// SPDX-License-Identifier: MIT

// Package main provides books, a command-line manager for a personal
// reading list kept in an embedded SQLite database.
//
// # Install
//
//	go install github.com/ftbfs/books/cmd/books@latest
//
// # Synopsis
//
//	books [command] [arguments] [options]
//
// # Commands
//
//	add TITLE AUTHOR... [--url URL]  Add a book with its authors.
//	start TITLE                      Record today as the start of reading.
//	finish TITLE                     Record today as the end of reading
//	                                 (alias: read).
//	ls [--finished|--started|--without-url]
//	                                 List titles matching one filter.
//	mv OLD_TITLE NEW_TITLE           Rename a book; authors follow.
//	set-url TITLE URL                Set a book's URL.
//	show TITLE                       Print one book's details.
//	render [--complete]              Emit HTML <li> fragments for a
//	                                 personal website.
//	version                          Print the build version.
//
// # Global flags
//
//	--database PATH  Database file to use instead of the per-user default.
//	--config PATH    Config file to read (default
//	                 <user config dir>/books/config.env).
//	--verbose        Debug-level diagnostics on stderr.
//
// # Configuration file
//
// An optional env-format file supplies defaults:
//
//	DATABASE=/home/me/books.sqlite3
//	WEBSITE_DIR=/home/me/src/website
//	PAGER=less -R
//
// WEBSITE_DIR enables the website rebuild: after every successful
// mutating command, make runs in that directory.  A rebuild failure is
// a warning only; the stored change stands.
//
// # Environment
//
//	XDG_DATA_HOME  Overrides where the per-user data directory lives.
//	PAGER          Pager for ls and show output when stdout is a
//	               terminal (the config file's PAGER wins).
//
// Without a --database flag or DATABASE key, the database is
// database.sqlite3 inside the per-user data directory, created 0700.
//
// # Exit status
//
// 0 on success, 2 on usage errors, 1 on every other failure.  Each
// failure prints one diagnostic line to stderr prefixed "books: ".
package main
