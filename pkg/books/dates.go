package books

import "time"

// dateLayout is the stored form of every date: a local calendar date.
const dateLayout = "2006-01-02"

// displayLayout is the rendered form: long month name, no leading zero on
// the day.
const displayLayout = "January 2, 2006"

// today returns the current local calendar date in stored form.
func today() string {
	return time.Now().Format(dateLayout)
}

// formatDate re-renders a stored date for display, e.g. "2023-07-04" becomes
// "July 4, 2023".
func formatDate(stored string) (string, error) {
	t, err := time.Parse(dateLayout, stored)
	if err != nil {
		return "", err
	}
	return t.Format(displayLayout), nil
}
