package books

import (
	"context"
	"fmt"
	"html"
	"io"
)

// Render writes one HTML list item per book to w, for embedding in a
// personal website: unfinished books ordered by title when complete is
// false, finished books ordered by finish date (and carrying that date)
// when it is true.
func (l *Library) Render(ctx context.Context, complete bool, w io.Writer) error {
	var (
		list []Book
		err  error
	)
	if complete {
		list, err = l.store.Finished(ctx)
	} else {
		list, err = l.store.Unfinished(ctx)
	}
	if err != nil {
		return err
	}
	for _, b := range list {
		item, err := renderItem(b, complete)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, item); err != nil {
			return wrapf(KindEnvironment, err, "cannot write output")
		}
	}
	return nil
}

// renderItem builds the list item for one book: the title in <em>, the
// authors joined for prose, and, when withDate is set, the formatted finish
// date in parentheses. Titles and names are HTML-escaped.
func renderItem(b Book, withDate bool) (string, error) {
	names := make([]string, len(b.Authors))
	for i, name := range b.Authors {
		names[i] = html.EscapeString(name)
	}
	authors, err := joinAuthors(names)
	if err != nil {
		return "", wrapf(KindDataFormat, err, "cannot render %s", b.Title)
	}
	title := html.EscapeString(b.Title)
	if !withDate {
		return fmt.Sprintf("<li><em>%s</em> by %s</li>", title, authors), nil
	}
	date, err := formatDate(b.EndDate)
	if err != nil {
		return "", wrapf(KindDataFormat, err, "cannot format date for %s", b.Title)
	}
	return fmt.Sprintf("<li><em>%s</em> by %s (%s)</li>", title, authors, date), nil
}
