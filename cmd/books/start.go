package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ftbfs/books/pkg/books"
)

func newStartCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "start TITLE",
		Short: "Start reading a book",
		Long:  "Record today as the day reading of TITLE began.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withLibrary(func(ctx context.Context, lib *books.Library, _ books.Config) error {
				return lib.Start(ctx, args[0])
			})
		},
	}
}
