package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"bookquery/internal/book"
	"bookquery/internal/config"
	"bookquery/internal/platform/database"
	"bookquery/internal/platform/logger"
	"bookquery/internal/seed"
)

type options struct {
	random int
	reset  bool
	seed   int64
}

func main() {
	var opts options
	flag.IntVar(&opts.random, "random", 0, "Also insert N generated books")
	flag.BoolVar(&opts.reset, "reset", false, "Delete every book before inserting")
	flag.Int64Var(&opts.seed, "seed", time.Now().UnixNano(), "Random generator seed for -random")
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.Load(config.New())
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(os.Stderr, logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx := context.Background()
	repo, closeDB, err := database.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := runAndClose(ctx, repo, closeDB, opts, log); err != nil {
		log.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}

// runAndClose seeds repo and always releases its connections before returning.
func runAndClose(ctx context.Context, repo book.Repository, closeDB database.CloseFunc, opts options, log *slog.Logger) error {
	runErr := run(ctx, repo, opts, log)
	if err := closeDB(context.Background()); err != nil {
		log.Warn("close database", "error", err)
	}
	return runErr
}

func run(ctx context.Context, repo book.Repository, opts options, log *slog.Logger) error {
	if opts.reset {
		log.Info("deleting existing books")
		if err := repo.DeleteAll(ctx); err != nil {
			return err
		}
	}

	books := seed.Books()
	if opts.random > 0 {
		log.Info("generating books", "count", opts.random, "seed", opts.seed)
		books = append(books, seed.Random(rand.New(rand.NewSource(opts.seed)), opts.random)...)
	}

	n, err := repo.InsertMany(ctx, books)
	if err != nil {
		return err
	}
	log.Info("inserted books", "count", n)
	return nil
}
