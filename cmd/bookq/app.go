package main

import (
	"context"
	"io"
	"log/slog"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bookquery/internal/book"
	"bookquery/internal/config"
	"bookquery/internal/platform/database"
	"bookquery/internal/platform/logger"
)

type opener func(context.Context, *config.Config, *slog.Logger) (book.Repository, database.CloseFunc, error)

type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	open   opener
}

// newRootCmd builds the command tree. Global flags are bound to the viper keys
// so they override BOOKQ_* variables.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "bookq",
		Short:         "Run the books query library against MongoDB or PostgreSQL",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("backend", "", "engine to use: mongo or postgres")
	flags.String("mongo-uri", "", "MongoDB connection URI")
	flags.String("postgres-dsn", "", "PostgreSQL connection string")
	flags.Duration("timeout", 0, "per query timeout")
	flags.String("log-level", "", "debug, info, warn or error")

	for key, name := range map[string]string{
		"backend":      "backend",
		"mongo.uri":    "mongo-uri",
		"postgres.dsn": "postgres-dsn",
		"timeout":      "timeout",
		"log.level":    "log-level",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(
		afterYearCmd(a),
		byAuthorCmd(a),
		updatePriceCmd(a),
		deleteCmd(a),
		inStockCmd(a),
		sortPriceCmd(a),
		pageCmd(a),
		avgPriceByGenreCmd(a),
		countByDecadeCmd(a),
		createIndexCmd(a),
		createDefaultIndexesCmd(a),
		explainCmd(a),
	)
	return root
}

// run opens the configured engine, calls fn and prints its result as JSON.
func (a *app) run(cmd *cobra.Command, fn func(context.Context, *book.Service) (any, error)) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	log := logger.New(a.errOut, logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	repo, closeDB, err := a.open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeDB(context.Background()); err != nil {
			log.Warn("close database", "error", err)
		}
	}()

	result, err := fn(ctx, book.NewService(repo))
	if err != nil {
		return err
	}
	return a.print(result)
}

func (a *app) print(v any) error {
	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = a.out.Write(append(b, '\n'))
	return err
}
