package book

import (
	"fmt"
	"strings"
)

const (
	allColumns     = "id::text, title, author, published_year, price, genre, in_stock"
	summaryColumns = "title, author, price"
)

var indexableColumns = map[string]bool{
	FieldTitle:         true,
	FieldAuthor:        true,
	FieldPublishedYear: true,
	FieldPrice:         true,
	FieldGenre:         true,
	FieldInStock:       true,
}

func pgWhere(f Filter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if f.InStock != nil {
		clauses = append(clauses, fmt.Sprintf("in_stock = $%d", argn))
		args = append(args, *f.InStock)
		argn++
	}

	if f.PublishedAfter != nil {
		clauses = append(clauses, fmt.Sprintf("published_year > $%d", argn))
		args = append(args, *f.PublishedAfter)
		argn++
	}

	if f.Author != "" {
		clauses = append(clauses, fmt.Sprintf("author = $%d", argn))
		args = append(args, f.Author)
		argn++
	}

	if f.Title != "" {
		clauses = append(clauses, fmt.Sprintf("title = $%d", argn))
		args = append(args, f.Title)
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

func pgOrderBy(o Order) string {
	switch o {
	case PriceAsc:
		return "ORDER BY price ASC, id ASC"
	case PriceDesc:
		return "ORDER BY price DESC, id ASC"
	default:
		return ""
	}
}

// pgSelect renders q as a SELECT statement and its arguments.
func pgSelect(q Query) (string, []any) {
	cols := allColumns
	if q.Projection == ProjectSummary {
		cols = summaryColumns
	}

	where, args := pgWhere(q.Filter)
	parts := []string{"SELECT " + cols, "FROM books", where}
	if order := pgOrderBy(q.Order); order != "" {
		parts = append(parts, order)
	}
	if q.Limit > 0 {
		args = append(args, q.Limit)
		parts = append(parts, fmt.Sprintf("LIMIT $%d", len(args)))
	}
	if q.Skip > 0 {
		args = append(args, q.Skip)
		parts = append(parts, fmt.Sprintf("OFFSET $%d", len(args)))
	}
	return strings.Join(parts, " "), args
}

// pgCreateIndex renders spec as CREATE INDEX. Columns are checked against the schema
// because identifiers cannot be bound as parameters.
func pgCreateIndex(spec IndexSpec) (string, string, error) {
	cols := make([]string, 0, len(spec.Fields))
	for _, f := range spec.Fields {
		if !indexableColumns[f.Field] {
			return "", "", fmt.Errorf("%w: %q", ErrUnsupportedField, f.Field)
		}
		dir := "ASC"
		if f.Direction < 0 {
			dir = "DESC"
		}
		cols = append(cols, f.Field+" "+dir)
	}
	name := "books_" + strings.ReplaceAll(spec.Name(), "-", "m")
	sql := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON books (%s)", name, strings.Join(cols, ", "))
	return sql, name, nil
}

const (
	averagePriceByGenreSQL = `
		SELECT COALESCE(genre, '') AS genre, AVG(price)::float8 AS average_price
		FROM books
		GROUP BY genre
		ORDER BY average_price DESC`

	countByDecadeSQL = `
		SELECT (FLOOR(published_year / 10.0) * 10)::int AS decade, COUNT(*)::int AS count
		FROM books
		GROUP BY decade
		ORDER BY decade ASC`
)
