package book

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepo runs the query library against the books table.
type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Find(ctx context.Context, q Query) ([]Book, error) {
	sql, args := pgSelect(q)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", q.Name, err)
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		var b Book
		if q.Projection == ProjectSummary {
			err = rows.Scan(&b.Title, &b.Author, &b.Price)
		} else {
			err = rows.Scan(&b.ID, &b.Title, &b.Author, &b.PublishedYear, &b.Price, &b.Genre, &b.InStock)
		}
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", q.Name, err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) UpdatePriceByTitle(ctx context.Context, title string, price float64) (UpdateResult, error) {
	const sql = `
		UPDATE books SET price = $1
		WHERE id = (SELECT id FROM books WHERE title = $2 LIMIT 1)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql, price, title)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("update price: %w", err)
	}
	n := tag.RowsAffected()
	return UpdateResult{Matched: n, Modified: n}, nil
}

func (r *PostgresRepo) DeleteByTitle(ctx context.Context, title string) (int64, error) {
	const sql = `
		DELETE FROM books
		WHERE id = (SELECT id FROM books WHERE title = $1 LIMIT 1)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql, title)
	if err != nil {
		return 0, fmt.Errorf("delete book: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PostgresRepo) AveragePriceByGenre(ctx context.Context) ([]GenreAverage, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, averagePriceByGenreSQL)
	if err != nil {
		return nil, fmt.Errorf("aggregate average price: %w", err)
	}
	defer rows.Close()

	out := []GenreAverage{}
	for rows.Next() {
		var g GenreAverage
		if err := rows.Scan(&g.Genre, &g.AveragePrice); err != nil {
			return nil, fmt.Errorf("scan average price: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) CountByDecade(ctx context.Context) ([]DecadeCount, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, countByDecadeSQL)
	if err != nil {
		return nil, fmt.Errorf("aggregate decades: %w", err)
	}
	defer rows.Close()

	out := []DecadeCount{}
	for rows.Next() {
		var d DecadeCount
		if err := rows.Scan(&d.Decade, &d.Count); err != nil {
			return nil, fmt.Errorf("scan decades: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) CreateIndex(ctx context.Context, spec IndexSpec) (string, error) {
	sql, name, err := pgCreateIndex(spec)
	if err != nil {
		return "", err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.db.Exec(timeoutCtx, sql); err != nil {
		return "", fmt.Errorf("create index %s: %w", name, err)
	}
	return name, nil
}

// Explain runs EXPLAIN ANALYZE over the rendered query. The simple protocol is used
// so the arguments are interpolated client side.
func (r *PostgresRepo) Explain(ctx context.Context, q Query) (Plan, error) {
	sql, args := pgSelect(q)
	explain := "EXPLAIN (ANALYZE, BUFFERS, FORMAT JSON) " + sql

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var out string
	execArgs := append([]any{pgx.QueryExecModeSimpleProtocol}, args...)
	if err := r.db.QueryRow(timeoutCtx, explain, execArgs...).Scan(&out); err != nil {
		return nil, fmt.Errorf("explain %s: %w", q.Name, err)
	}

	var plans []Plan
	if err := json.Unmarshal([]byte(out), &plans); err != nil {
		return nil, fmt.Errorf("explain %s: %w", q.Name, err)
	}
	if len(plans) == 0 {
		return Plan{}, nil
	}
	return plans[0], nil
}

func (r *PostgresRepo) InsertMany(ctx context.Context, books []Book) (int, error) {
	if len(books) == 0 {
		return 0, nil
	}
	const sql = `
		INSERT INTO books (title, author, published_year, price, genre, in_stock)
		VALUES ($1, $2, $3, $4, $5, $6)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(timeoutCtx)

	batch := &pgx.Batch{}
	for _, b := range books {
		batch.Queue(sql, b.Title, b.Author, b.PublishedYear, b.Price, b.Genre, b.InStock)
	}
	if err := tx.SendBatch(timeoutCtx, batch).Close(); err != nil {
		return 0, fmt.Errorf("insert books: %w", err)
	}
	if err := tx.Commit(timeoutCtx); err != nil {
		return 0, fmt.Errorf("insert books: %w", err)
	}
	return len(books), nil
}

func (r *PostgresRepo) DeleteAll(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.db.Exec(timeoutCtx, "DELETE FROM books"); err != nil {
		return fmt.Errorf("delete all books: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Ping(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.Ping(timeoutCtx)
}
