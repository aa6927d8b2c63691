package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ftbfs/books/pkg/books"
)

func newFinishCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "finish TITLE",
		Aliases: []string{"read"},
		Short:   "Finish reading a book",
		Long: `Record today as the day reading of TITLE ended. A book does not
have to be started to be finished. "read" is the historical name of
this command and still works.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withLibrary(func(ctx context.Context, lib *books.Library, _ books.Config) error {
				return lib.Finish(ctx, args[0])
			})
		},
	}
}
