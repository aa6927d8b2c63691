package books

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderItem(t *testing.T) {
	t.Run("one author", func(t *testing.T) {
		got, err := renderItem(Book{Title: "Dune", Authors: []string{"Frank Herbert"}}, false)
		require.NoError(t, err)
		assert.Equal(t, "<li><em>Dune</em> by Frank Herbert</li>", got)
	})

	t.Run("two authors", func(t *testing.T) {
		got, err := renderItem(Book{Title: "Good Omens", Authors: []string{"Neil Gaiman", "Terry Pratchett"}}, false)
		require.NoError(t, err)
		assert.Equal(t, "<li><em>Good Omens</em> by Neil Gaiman and Terry Pratchett</li>", got)
	})

	t.Run("three authors", func(t *testing.T) {
		got, err := renderItem(Book{Title: "T", Authors: []string{"A", "B", "C"}}, false)
		require.NoError(t, err)
		assert.Equal(t, "<li><em>T</em> by A, B, and C</li>", got)
	})

	t.Run("four authors fail naming the title", func(t *testing.T) {
		_, err := renderItem(Book{Title: "Crowded", Authors: []string{"A", "B", "C", "D"}}, false)
		require.Error(t, err)
		assert.Equal(t, KindDataFormat, KindOf(err))
		assert.Contains(t, err.Error(), "Crowded")
	})

	t.Run("finish date in prose form", func(t *testing.T) {
		b := Book{Title: "Dune", Authors: []string{"Frank Herbert"}, EndDate: "2023-07-04"}
		got, err := renderItem(b, true)
		require.NoError(t, err)
		assert.Equal(t, "<li><em>Dune</em> by Frank Herbert (July 4, 2023)</li>", got)
	})

	t.Run("malformed date fails naming the title", func(t *testing.T) {
		b := Book{Title: "Dune", Authors: []string{"Frank Herbert"}, EndDate: "04-07-2023"}
		_, err := renderItem(b, true)
		require.Error(t, err)
		assert.Equal(t, KindDataFormat, KindOf(err))
		assert.Contains(t, err.Error(), "Dune")
	})

	t.Run("html is escaped", func(t *testing.T) {
		b := Book{Title: "Cats & <Dogs>", Authors: []string{"A & B"}}
		got, err := renderItem(b, false)
		require.NoError(t, err)
		assert.Equal(t, "<li><em>Cats &amp; &lt;Dogs&gt;</em> by A &amp; B</li>", got)
	})
}

func TestLibraryRender(t *testing.T) {
	ctx := context.Background()
	lib := newTestLibrary(t, nil)

	// Insertion order differs from the alphabetical order Render uses.
	require.NoError(t, lib.Add(ctx, "Good Omens", []string{"Terry Pratchett", "Neil Gaiman"}, ""))
	require.NoError(t, lib.Add(ctx, "Dune", []string{"Frank Herbert"}, ""))

	var out bytes.Buffer
	require.NoError(t, lib.Render(ctx, false, &out))
	assert.Equal(t,
		"<li><em>Dune</em> by Frank Herbert</li>\n"+
			"<li><em>Good Omens</em> by Neil Gaiman and Terry Pratchett</li>\n",
		out.String())
}

func TestLibraryRenderComplete(t *testing.T) {
	ctx := context.Background()
	lib := newTestLibrary(t, nil)

	require.NoError(t, lib.store.Add(ctx, Book{Title: "Late", Authors: []string{"L"}}))
	require.NoError(t, lib.store.Add(ctx, Book{Title: "Early", Authors: []string{"E"}}))
	require.NoError(t, lib.store.Add(ctx, Book{Title: "Unread", Authors: []string{"U"}}))
	require.NoError(t, lib.store.Finish(ctx, "Late", "2024-06-15"))
	require.NoError(t, lib.store.Finish(ctx, "Early", "2024-05-01"))

	var out bytes.Buffer
	require.NoError(t, lib.Render(ctx, true, &out))
	assert.Equal(t,
		"<li><em>Early</em> by E (May 1, 2024)</li>\n"+
			"<li><em>Late</em> by L (June 15, 2024)</li>\n",
		out.String())
}

func TestLibraryRenderFourAuthors(t *testing.T) {
	ctx := context.Background()
	lib := newTestLibrary(t, nil)

	require.NoError(t, lib.Add(ctx, "Crowded", []string{"A", "B", "C", "D"}, ""))

	var out bytes.Buffer
	err := lib.Render(ctx, false, &out)
	require.Error(t, err)
	assert.Equal(t, KindDataFormat, KindOf(err))
	assert.Contains(t, err.Error(), "Crowded")
}
