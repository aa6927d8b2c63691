package books

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinAuthors(t *testing.T) {
	t.Run("one name", func(t *testing.T) {
		got, err := joinAuthors([]string{"Frank Herbert"})
		assert.NoError(t, err)
		assert.Equal(t, "Frank Herbert", got)
	})

	t.Run("two names", func(t *testing.T) {
		got, err := joinAuthors([]string{"Neil Gaiman", "Terry Pratchett"})
		assert.NoError(t, err)
		assert.Equal(t, "Neil Gaiman and Terry Pratchett", got)
	})

	t.Run("three names", func(t *testing.T) {
		got, err := joinAuthors([]string{"A", "B", "C"})
		assert.NoError(t, err)
		assert.Equal(t, "A, B, and C", got)
	})

	t.Run("no names", func(t *testing.T) {
		_, err := joinAuthors(nil)
		assert.Error(t, err)
	})

	t.Run("four names are refused, not truncated", func(t *testing.T) {
		_, err := joinAuthors([]string{"A", "B", "C", "D"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "4")
	})
}
