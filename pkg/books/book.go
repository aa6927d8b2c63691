package books

import (
	"errors"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Book is a tracked book. Title is the unique key; the remaining fields are
// optional and empty until set. Dates are local calendar dates in YYYY-MM-DD
// form.
type Book struct {
	Title     string   `json:"title"`
	URL       string   `json:"url,omitempty"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Authors   []string `json:"authors"`
}

// Started reports whether reading has begun.
func (b Book) Started() bool { return b.StartDate != "" }

// Finished reports whether reading is complete.
func (b Book) Finished() bool { return b.EndDate != "" }

// Validate checks a book before it is added: the title and every author must
// be non-blank, and the URL, when given, must be an absolute http or https
// URL.
func (b Book) Validate() error {
	err := validation.ValidateStruct(&b,
		validation.Field(&b.Title,
			validation.Required.Error("title is required"),
			validation.By(notBlank),
		),
		validation.Field(&b.Authors,
			validation.Required.Error("at least one author is required"),
			validation.Each(validation.By(notBlank)),
		),
		validation.Field(&b.URL,
			validation.When(b.URL != "",
				is.URL.Error("must be a valid URL"),
				validation.By(webURL),
			),
		),
	)
	if err != nil {
		return wrapf(KindUsage, err, "invalid book")
	}
	return nil
}

// validateURL checks a URL passed to set-url.
func validateURL(raw string) error {
	err := validation.Validate(raw,
		validation.Required.Error("url is required"),
		is.URL.Error("must be a valid URL"),
		validation.By(webURL),
	)
	if err != nil {
		return wrapf(KindUsage, err, "invalid url")
	}
	return nil
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("must not be blank")
	}
	return nil
}

// webURL accepts absolute http and https URLs only.
func webURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must be an absolute http or https URL")
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}
