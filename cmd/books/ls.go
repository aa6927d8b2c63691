package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/ftbfs/books/pkg/books"
)

func newListCmd(a *app) *cobra.Command {
	var finished, started, withoutURL bool
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List books",
		Long: `List unstarted books by title. --finished lists finished books by
finish date and --started lists books in progress; --without-url lists
books with no URL recorded. When several filters are given, the first
of finished, started, without-url wins.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := books.FilterUnstarted
			switch {
			case finished:
				filter = books.FilterFinished
			case started:
				filter = books.FilterStarted
			case withoutURL:
				filter = books.FilterWithoutURL
			}
			return a.withLibrary(func(ctx context.Context, lib *books.Library, cfg books.Config) error {
				return a.paged(cfg, func(w io.Writer) error {
					return lib.List(ctx, filter, w)
				})
			})
		},
	}
	cmd.Flags().BoolVar(&finished, "finished", false, "list finished books instead of unstarted ones")
	cmd.Flags().BoolVar(&started, "started", false, "list started books instead of unstarted ones")
	cmd.Flags().BoolVar(&withoutURL, "without-url", false, "list books with no URL")
	return cmd
}
