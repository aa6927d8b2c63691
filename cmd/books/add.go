package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ftbfs/books/pkg/books"
)

func newAddCmd(a *app) *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "add TITLE AUTHOR...",
		Short: "Add a book",
		Long: `Add a book with one or more authors. The title must not be in the
store yet; the book, its URL and all its authors are stored in one
transaction.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withLibrary(func(ctx context.Context, lib *books.Library, _ books.Config) error {
				return lib.Add(ctx, args[0], args[1:], url)
			})
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "URL of the book")
	return cmd
}
