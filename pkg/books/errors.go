package books

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the tool can produce. The CLI maps kinds to
// exit codes; tests assert on them.
type Kind int

const (
	// KindUsage marks argument and input mistakes: blank titles, malformed
	// URLs, missing authors.
	KindUsage Kind = iota + 1

	// KindEnvironment marks failures preparing the surroundings: the data
	// directory, the config file, or output plumbing.
	KindEnvironment

	// KindNotFound marks updates that matched no stored book.
	KindNotFound

	// KindDataFormat marks stored records the formatter cannot present,
	// such as malformed dates or author lists longer than three names.
	KindDataFormat

	// KindStorage marks SQL and driver failures, including uniqueness
	// violations.
	KindStorage
)

// String returns the kind's name for logs and tests.
func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindEnvironment:
		return "environment"
	case KindNotFound:
		return "not found"
	case KindDataFormat:
		return "data format"
	case KindStorage:
		return "storage"
	}
	return "unknown"
}

// Error is the single error type this package returns. Every failure carries
// a Kind and a message ready to print after the "books: " prefix.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return e.Msg + ": " + e.Err.Error()
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	}
	return e.Kind.String() + " error"
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind carried by err, or zero when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// errf builds an Error with a formatted message.
func errf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// wrapf builds an Error around a cause with a formatted message.
func wrapf(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// notFound builds the canonical not-found error for a title.
func notFound(title string) *Error {
	return errf(KindNotFound, "not found: %s", title)
}
