package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ftbfs/books/pkg/books"
)

func newRenderCmd(a *app) *cobra.Command {
	var complete bool
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render books as HTML list items",
		Long: `Write one <li> fragment per unfinished book, ordered by title, for
embedding in a personal website. With --complete, write finished books
ordered by finish date instead, each with its finish date spelled out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withLibrary(func(ctx context.Context, lib *books.Library, _ books.Config) error {
				return lib.Render(ctx, complete, a.stdout)
			})
		},
	}
	cmd.Flags().BoolVar(&complete, "complete", false, "render finished books with their finish dates")
	return cmd
}
