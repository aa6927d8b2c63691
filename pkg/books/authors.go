package books

import "fmt"

// joinAuthors joins up to three author names the way they read in prose:
// "A", "A and B", "A, B, and C". Longer lists are not supported and return
// an error rather than truncating.
func joinAuthors(names []string) (string, error) {
	switch len(names) {
	case 1:
		return names[0], nil
	case 2:
		return names[0] + " and " + names[1], nil
	case 3:
		return names[0] + ", " + names[1] + ", and " + names[2], nil
	}
	return "", fmt.Errorf("cannot join %d author names", len(names))
}
