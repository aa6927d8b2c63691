package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ftbfs/books/pkg/books"
)

func newSetURLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-url TITLE URL",
		Short: "Set a book's URL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withLibrary(func(ctx context.Context, lib *books.Library, _ books.Config) error {
				return lib.SetURL(ctx, args[0], args[1])
			})
		},
	}
}
