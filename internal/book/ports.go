package book

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks bookquery/internal/book Repository

// Repository defines the contract an engine implements to run the query library.
type Repository interface {
	Find(ctx context.Context, q Query) ([]Book, error)
	UpdatePriceByTitle(ctx context.Context, title string, price float64) (UpdateResult, error)
	DeleteByTitle(ctx context.Context, title string) (int64, error)
	AveragePriceByGenre(ctx context.Context) ([]GenreAverage, error)
	CountByDecade(ctx context.Context) ([]DecadeCount, error)
	CreateIndex(ctx context.Context, spec IndexSpec) (string, error)
	Explain(ctx context.Context, q Query) (Plan, error)
	InsertMany(ctx context.Context, books []Book) (int, error)
	DeleteAll(ctx context.Context) error
	Ping(ctx context.Context) error
}
