package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/ftbfs/books/pkg/books"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show TITLE",
		Short: "Show a book's details",
		Long: `Print the book's title, URL and reading dates when set, and its
authors. A title that is not stored prints nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withLibrary(func(ctx context.Context, lib *books.Library, cfg books.Config) error {
				return a.paged(cfg, func(w io.Writer) error {
					return lib.Show(ctx, args[0], w)
				})
			})
		},
	}
}
