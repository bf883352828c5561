package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bookquery/internal/book"
)

const defaultRecentYear = 2010

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: year must be an integer, got %q", book.ErrInvalidInput, s)
	}
	return year, nil
}

func afterYearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "after-year YEAR",
		Short:   "Find books published after YEAR",
		Long:    "Find books published after YEAR. Pass negative years after --, e.g. bookq after-year -- -100.",
		Example: "  bookq after-year 1950\n  bookq after-year -- -100",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, svc *book.Service) (any, error) {
				return svc.FindAfterYear(ctx, year)
			})
		},
	}
}

func byAuthorCmd(a *app) *cobra.Command {
	var summary bool
	cmd := &cobra.Command{
		Use:   "by-author AUTHOR",
		Short: "Find books by AUTHOR (exact, case sensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc *book.Service) (any, error) {
				if summary {
					return svc.FindByAuthorSummaries(ctx, args[0])
				}
				return svc.FindByAuthor(ctx, args[0])
			})
		},
	}
	cmd.Flags().BoolVar(&summary, "summary", false, "return only title, author and price")
	return cmd
}

func updatePriceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update-price TITLE PRICE",
		Short: "Set the price of one book titled TITLE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("%w: price must be a number, got %q", book.ErrInvalidInput, args[1])
			}
			return a.run(cmd, func(ctx context.Context, svc *book.Service) (any, error) {
				return svc.UpdatePriceByTitle(ctx, args[0], price)
			})
		},
	}
}

func deleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete TITLE",
		Short: "Delete one book titled TITLE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc *book.Service) (any, error) {
				n, err := svc.DeleteByTitle(ctx, args[0])
				if err != nil {
					return nil, err
				}
				return map[string]int64{"deleted": n}, nil
			})
		},
	}
}

func inStockCmd(a *app) *cobra.Command {
	var after int
	cmd := &cobra.Command{
		Use:   "in-stock",
		Short: "List in-stock books published after a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc *book.Service) (any, error) {
				return svc.FindInStockAfterYear(ctx, after)
			})
		},
	}
	cmd.Flags().IntVar(&after, "after", defaultRecentYear, "published year lower bound (exclusive)")
	return cmd
}

func sortPriceCmd(a *app) *cobra.Command {
	var (
		after int
		desc  bool
	)
	cmd := &cobra.Command{
		Use:   "sort-price",
		Short: "List in-stock books published after a year ordered by price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc *book.Service) (any, error) {
				return svc.SortByPrice(ctx, after, !desc)
			})
		},
	}
	cmd.Flags().IntVar(&after, "after", defaultRecentYear, "published year lower bound (exclusive)")
	cmd.Flags().BoolVar(&desc, "desc", false, "most expensive first")
	return cmd
}

func pageCmd(a *app) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "page INDEX",
		Short: "Show page INDEX (zero based) of all books ordered by price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: page index must be an integer, got %q", book.ErrInvalidInput, args[0])
			}
			if !cmd.Flags().Changed("size") {
				size = a.v.GetInt("page_size")
			}
			return a.run(cmd, func(ctx context.Context, svc *book.Service) (any, error) {
				return svc.Paginate(ctx, size, index)
			})
		},
	}
	cmd.Flags().IntVar(&size, "size", book.DefaultPageSize, "books per page")
	return cmd
}

func avgPriceByGenreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "avg-price-by-genre",
		Short: "Average price per genre, highest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc *book.Service) (any, error) {
				return svc.AveragePriceByGenre(ctx)
			})
		},
	}
}

func countByDecadeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count-by-decade",
		Short: "Number of books per publication decade, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc *book.Service) (any, error) {
				return svc.CountByDecade(ctx)
			})
		},
	}
}

func createIndexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "create-index FIELD:DIR[,FIELD:DIR...]",
		Short:   "Create an index, e.g. author:1,published_year:-1",
		Example: "  bookq create-index title:1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := book.ParseIndexSpec(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, svc *book.Service) (any, error) {
				name, err := svc.CreateIndex(ctx, spec)
				if err != nil {
					return nil, err
				}
				return map[string]string{"name": name}, nil
			})
		},
	}
}

func createDefaultIndexesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create-default-indexes",
		Short: "Create the title and author/published_year indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc *book.Service) (any, error) {
				names, err := svc.CreateDefaultIndexes(ctx)
				if err != nil {
					return nil, err
				}
				return map[string][]string{"names": names}, nil
			})
		},
	}
}

func explainCmd(a *app) *cobra.Command {
	var (
		author string
		after  int
	)
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show execution statistics for the by-author (default) or after-year query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := book.ByAuthor(author)
			if cmd.Flags().Changed("after") {
				q = book.AfterYear(after)
			}
			return a.run(cmd, func(ctx context.Context, svc *book.Service) (any, error) {
				return svc.Explain(ctx, q)
			})
		},
	}
	cmd.Flags().StringVar(&author, "author", "George Orwell", "author for the by-author query")
	cmd.Flags().IntVar(&after, "after", 0, "explain the after-year query instead")
	return cmd
}
