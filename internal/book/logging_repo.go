package book

import (
	"context"
	"log/slog"
	"time"
)

// LoggingRepository logs every call that reaches the wrapped engine.
type LoggingRepository struct {
	next   Repository
	logger *slog.Logger
}

func NewLoggingRepository(next Repository, logger *slog.Logger) *LoggingRepository {
	return &LoggingRepository{next: next, logger: logger}
}

func (r *LoggingRepository) log(ctx context.Context, op string, start time.Time, err error, attrs ...any) {
	attrs = append(attrs, "op", op, "duration_ms", time.Since(start).Milliseconds())
	if err != nil {
		r.logger.ErrorContext(ctx, "query failed", append(attrs, "error", err)...)
		return
	}
	r.logger.DebugContext(ctx, "query done", attrs...)
}

func (r *LoggingRepository) Find(ctx context.Context, q Query) ([]Book, error) {
	start := time.Now()
	out, err := r.next.Find(ctx, q)
	r.log(ctx, "find", start, err, "query", q.String(), "results", len(out))
	return out, err
}

func (r *LoggingRepository) UpdatePriceByTitle(ctx context.Context, title string, price float64) (UpdateResult, error) {
	start := time.Now()
	res, err := r.next.UpdatePriceByTitle(ctx, title, price)
	r.log(ctx, "update_price_by_title", start, err, "title", title, "matched", res.Matched, "modified", res.Modified)
	return res, err
}

func (r *LoggingRepository) DeleteByTitle(ctx context.Context, title string) (int64, error) {
	start := time.Now()
	n, err := r.next.DeleteByTitle(ctx, title)
	r.log(ctx, "delete_by_title", start, err, "title", title, "deleted", n)
	return n, err
}

func (r *LoggingRepository) AveragePriceByGenre(ctx context.Context) ([]GenreAverage, error) {
	start := time.Now()
	out, err := r.next.AveragePriceByGenre(ctx)
	r.log(ctx, "average_price_by_genre", start, err, "results", len(out))
	return out, err
}

func (r *LoggingRepository) CountByDecade(ctx context.Context) ([]DecadeCount, error) {
	start := time.Now()
	out, err := r.next.CountByDecade(ctx)
	r.log(ctx, "count_by_decade", start, err, "results", len(out))
	return out, err
}

func (r *LoggingRepository) CreateIndex(ctx context.Context, spec IndexSpec) (string, error) {
	start := time.Now()
	name, err := r.next.CreateIndex(ctx, spec)
	r.log(ctx, "create_index", start, err, "index", spec.Name())
	return name, err
}

func (r *LoggingRepository) Explain(ctx context.Context, q Query) (Plan, error) {
	start := time.Now()
	plan, err := r.next.Explain(ctx, q)
	r.log(ctx, "explain", start, err, "query", q.String())
	return plan, err
}

func (r *LoggingRepository) InsertMany(ctx context.Context, books []Book) (int, error) {
	start := time.Now()
	n, err := r.next.InsertMany(ctx, books)
	r.log(ctx, "insert_many", start, err, "inserted", n)
	return n, err
}

func (r *LoggingRepository) DeleteAll(ctx context.Context) error {
	start := time.Now()
	err := r.next.DeleteAll(ctx)
	r.log(ctx, "delete_all", start, err)
	return err
}

func (r *LoggingRepository) Ping(ctx context.Context) error {
	return r.next.Ping(ctx)
}
