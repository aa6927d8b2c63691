package books

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// schema is executed on every open; both statements are idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS book (
    title TEXT PRIMARY KEY,
    url TEXT,
    start_date TEXT,
    end_date TEXT
);
CREATE TABLE IF NOT EXISTS author (
    title TEXT NOT NULL REFERENCES book (title)
        ON DELETE CASCADE ON UPDATE CASCADE,
    author TEXT NOT NULL,
    PRIMARY KEY (title, author)
);
`

// Filter selects which titles List returns and how they are ordered.
type Filter int

const (
	// FilterUnstarted lists books not yet started, by title.
	FilterUnstarted Filter = iota
	// FilterStarted lists books started but not finished, by title.
	FilterStarted
	// FilterFinished lists finished books, by finish date.
	FilterFinished
	// FilterWithoutURL lists books with no URL recorded, by title.
	FilterWithoutURL
)

// listQueries maps each filter to its statement. The WHERE and ORDER BY
// clauses are part of the command contract and must not change.
var listQueries = map[Filter]string{
	FilterUnstarted:  "SELECT title FROM book WHERE start_date IS NULL ORDER BY title",
	FilterStarted:    "SELECT title FROM book WHERE start_date IS NOT NULL AND end_date IS NULL ORDER BY title",
	FilterFinished:   "SELECT title FROM book WHERE end_date IS NOT NULL ORDER BY end_date",
	FilterWithoutURL: "SELECT title FROM book WHERE url IS NULL ORDER BY title",
}

// Store executes the SQL behind every command against one open database.
type Store struct {
	db *sql.DB
}

// OpenStore opens the database file at path, creating it if absent, prepares
// the schema, and verifies foreign key enforcement.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_foreign_keys=on")
	if err != nil {
		return nil, wrapf(KindStorage, err, "cannot open %s", path)
	}
	s := &Store{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, wrapf(KindStorage, err, "cannot initialize %s", path)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ensureSchema creates the book and author tables when absent and confirms
// the connection enforces foreign keys, which the rename cascade depends on.
func (s *Store) ensureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("cannot execute schema: %w", err)
	}
	var enabled int
	if err := s.db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
		return fmt.Errorf("cannot check foreign_keys pragma: %w", err)
	}
	if enabled != 1 {
		return errors.New("foreign key enforcement is disabled")
	}
	return nil
}

// Add inserts the book and its author rows in one transaction. A failure on
// any statement rolls the whole transaction back, so a duplicate title or
// author leaves existing rows untouched.
func (s *Store) Add(ctx context.Context, b Book) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapf(KindStorage, err, "cannot begin transaction")
	}
	defer tx.Rollback()

	var url any
	if b.URL != "" {
		url = b.URL
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO book (title, url) VALUES (?, ?)", b.Title, url); err != nil {
		if isConstraint(err) {
			return errf(KindStorage, "already exists: %s", b.Title)
		}
		return wrapf(KindStorage, err, "cannot insert %s", b.Title)
	}
	for _, author := range b.Authors {
		if _, err := tx.ExecContext(ctx, "INSERT INTO author (title, author) VALUES (?, ?)", b.Title, author); err != nil {
			if isConstraint(err) {
				return errf(KindStorage, "duplicate author: %s", author)
			}
			return wrapf(KindStorage, err, "cannot insert author %s", author)
		}
	}
	if err := tx.Commit(); err != nil {
		return wrapf(KindStorage, err, "cannot commit transaction")
	}
	return nil
}

// Start records date as the day reading began.
func (s *Store) Start(ctx context.Context, title, date string) error {
	return s.updateOne(ctx, title, "UPDATE book SET start_date = ? WHERE title = ?", date, title)
}

// Finish records date as the day reading ended. No ordering is enforced
// between the two dates; finishing an unstarted book is allowed.
func (s *Store) Finish(ctx context.Context, title, date string) error {
	return s.updateOne(ctx, title, "UPDATE book SET end_date = ? WHERE title = ?", date, title)
}

// SetURL replaces the book's URL.
func (s *Store) SetURL(ctx context.Context, title, url string) error {
	return s.updateOne(ctx, title, "UPDATE book SET url = ? WHERE title = ?", url, title)
}

// Rename changes a book's title. The author rows follow through the ON
// UPDATE CASCADE on their foreign key. Renaming onto a title that is already
// taken fails without touching either book.
func (s *Store) Rename(ctx context.Context, oldTitle, newTitle string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE book SET title = ? WHERE title = ?", newTitle, oldTitle)
	if err != nil {
		if isConstraint(err) {
			return errf(KindStorage, "already exists: %s", newTitle)
		}
		return wrapf(KindStorage, err, "cannot rename %s", oldTitle)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapf(KindStorage, err, "cannot rename %s", oldTitle)
	}
	if n != 1 {
		return notFound(oldTitle)
	}
	return nil
}

// List returns the titles matching f in its defined order.
func (s *Store) List(ctx context.Context, f Filter) ([]string, error) {
	query, ok := listQueries[f]
	if !ok {
		return nil, errf(KindStorage, "unknown filter %d", f)
	}
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapf(KindStorage, err, "cannot list books")
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, wrapf(KindStorage, err, "cannot list books")
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapf(KindStorage, err, "cannot list books")
	}
	return titles, nil
}

// Get loads one book with its authors in alphabetical order. The second
// return reports whether the title is stored at all.
func (s *Store) Get(ctx context.Context, title string) (Book, bool, error) {
	b := Book{Title: title}
	var url, start, end sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT url, start_date, end_date FROM book WHERE title = ?", title).
		Scan(&url, &start, &end)
	if errors.Is(err, sql.ErrNoRows) {
		return Book{}, false, nil
	}
	if err != nil {
		return Book{}, false, wrapf(KindStorage, err, "cannot read %s", title)
	}
	b.URL, b.StartDate, b.EndDate = url.String, start.String, end.String

	b.Authors, err = s.authors(ctx, title)
	if err != nil {
		return Book{}, false, err
	}
	return b, true, nil
}

// Unfinished returns books with no finish date, ordered by title, each with
// its authors in alphabetical order.
func (s *Store) Unfinished(ctx context.Context) ([]Book, error) {
	return s.books(ctx, "SELECT title, url, start_date, end_date FROM book WHERE end_date IS NULL ORDER BY title")
}

// Finished returns finished books ordered by finish date, each with its
// authors in alphabetical order.
func (s *Store) Finished(ctx context.Context) ([]Book, error) {
	return s.books(ctx, "SELECT title, url, start_date, end_date FROM book WHERE end_date IS NOT NULL ORDER BY end_date")
}

func (s *Store) books(ctx context.Context, query string) ([]Book, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapf(KindStorage, err, "cannot read books")
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		var url, start, end sql.NullString
		if err := rows.Scan(&b.Title, &url, &start, &end); err != nil {
			return nil, wrapf(KindStorage, err, "cannot read books")
		}
		b.URL, b.StartDate, b.EndDate = url.String, start.String, end.String
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapf(KindStorage, err, "cannot read books")
	}
	for i := range out {
		authors, err := s.authors(ctx, out[i].Title)
		if err != nil {
			return nil, err
		}
		out[i].Authors = authors
	}
	return out, nil
}

// authors returns the book's author names in alphabetical order.
func (s *Store) authors(ctx context.Context, title string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT author FROM author WHERE title = ? ORDER BY author", title)
	if err != nil {
		return nil, wrapf(KindStorage, err, "cannot read authors of %s", title)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, wrapf(KindStorage, err, "cannot read authors of %s", title)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapf(KindStorage, err, "cannot read authors of %s", title)
	}
	return names, nil
}

// updateOne runs an UPDATE that must affect exactly one row and reports
// not-found when it affects none.
func (s *Store) updateOne(ctx context.Context, title, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapf(KindStorage, err, "cannot update %s", title)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapf(KindStorage, err, "cannot update %s", title)
	}
	if n != 1 {
		return notFound(title)
	}
	return nil
}

// isConstraint reports whether err is a SQLite constraint violation, such as
// a duplicate primary key.
func isConstraint(err error) bool {
	var serr sqlite3.Error
	return errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint
}
