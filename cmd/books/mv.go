package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ftbfs/books/pkg/books"
)

func newRenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mv OLD_TITLE NEW_TITLE",
		Short: "Change a book's title",
		Long:  "Rename a book. Its authors follow the title automatically.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withLibrary(func(ctx context.Context, lib *books.Library, _ books.Config) error {
				return lib.Rename(ctx, args[0], args[1])
			})
		},
	}
}
