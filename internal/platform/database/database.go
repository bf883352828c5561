// Package database opens the configured engine and hands back a book.Repository.
package database

import (
	"context"
	"fmt"
	"log/slog"

	"bookquery/internal/book"
	"bookquery/internal/config"
)

// CloseFunc releases the connections behind a repository.
type CloseFunc func(context.Context) error

// Open connects to the backend named by cfg. The returned repository logs every
// call through logger.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (book.Repository, CloseFunc, error) {
	var (
		repo    book.Repository
		closeFn CloseFunc
	)

	switch cfg.Backend {
	case config.BackendMongo:
		client, err := OpenMongo(ctx, cfg.Mongo.URI, logger)
		if err != nil {
			return nil, nil, err
		}
		coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		repo = book.NewMongoRepo(coll, cfg.Timeout)
		closeFn = client.Disconnect
	case config.BackendPostgres:
		pool, err := OpenPostgres(ctx, cfg.Postgres.DSN, logger)
		if err != nil {
			return nil, nil, err
		}
		repo = book.NewPostgresRepo(pool, cfg.Timeout)
		closeFn = func(context.Context) error {
			pool.Close()
			return nil
		}
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}

	return book.NewLoggingRepository(repo, logger.With("backend", cfg.Backend)), closeFn, nil
}
