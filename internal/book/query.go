package book

import (
	"fmt"
	"math"
	"strings"
)

// DefaultPageSize is the number of books per page when none is given.
const DefaultPageSize = 5

// Projection selects which book fields a query returns.
type Projection int

const (
	// ProjectAll returns whole documents.
	ProjectAll Projection = iota
	// ProjectSummary returns title, author and price only, without the identifier.
	ProjectSummary
)

// Order is the price ordering applied to a query.
type Order int

const (
	// Unordered leaves ordering to the engine.
	Unordered Order = iota
	// PriceAsc orders by price, cheapest first.
	PriceAsc
	// PriceDesc orders by price, most expensive first.
	PriceDesc
)

// Filter is the conjunction of the predicates a query applies. Zero values are not applied.
type Filter struct {
	PublishedAfter *int
	Author         string
	Title          string
	InStock        *bool
}

// Query is a named find template that engines render into their own query language.
type Query struct {
	Name       string
	Filter     Filter
	Projection Projection
	Order      Order
	Skip       int64
	Limit      int64
}

// String describes the template, used in logs.
func (q Query) String() string {
	var parts []string
	if q.Filter.PublishedAfter != nil {
		parts = append(parts, fmt.Sprintf("published_year>%d", *q.Filter.PublishedAfter))
	}
	if q.Filter.Author != "" {
		parts = append(parts, fmt.Sprintf("author=%q", q.Filter.Author))
	}
	if q.Filter.Title != "" {
		parts = append(parts, fmt.Sprintf("title=%q", q.Filter.Title))
	}
	if q.Filter.InStock != nil {
		parts = append(parts, fmt.Sprintf("in_stock=%t", *q.Filter.InStock))
	}
	switch q.Order {
	case PriceAsc:
		parts = append(parts, "sort=price")
	case PriceDesc:
		parts = append(parts, "sort=-price")
	}
	if q.Skip > 0 {
		parts = append(parts, fmt.Sprintf("skip=%d", q.Skip))
	}
	if q.Limit > 0 {
		parts = append(parts, fmt.Sprintf("limit=%d", q.Limit))
	}
	return q.Name + "{" + strings.Join(parts, " ") + "}"
}

// AfterYear matches books published strictly after year.
func AfterYear(year int) Query {
	return Query{
		Name:   "after_year",
		Filter: Filter{PublishedAfter: &year},
	}
}

// ByAuthor matches books whose author equals author exactly.
func ByAuthor(author string) Query {
	return Query{
		Name:   "by_author",
		Filter: Filter{Author: author},
	}
}

// ByAuthorSummary is ByAuthor with the summary projection.
func ByAuthorSummary(author string) Query {
	q := ByAuthor(author)
	q.Name = "by_author_summary"
	q.Projection = ProjectSummary
	return q
}

// InStockAfterYear matches in-stock books published after year, summary projection.
func InStockAfterYear(year int) Query {
	inStock := true
	return Query{
		Name: "in_stock_after_year",
		Filter: Filter{
			PublishedAfter: &year,
			InStock:        &inStock,
		},
		Projection: ProjectSummary,
	}
}

// SortedByPrice returns q ordered by price.
func SortedByPrice(q Query, ascending bool) Query {
	if ascending {
		q.Order = PriceAsc
	} else {
		q.Order = PriceDesc
	}
	q.Name += "_by_price"
	return q
}

// Page returns the pageIndex-th page of pageSize summaries over all books ordered by price.
// Callers validate the arguments; see Service.Paginate. An offset past math.MaxInt64
// saturates so the page stays empty instead of wrapping around.
func Page(pageSize, pageIndex int) Query {
	var skip int64
	switch {
	case pageSize <= 0:
	case int64(pageIndex) > math.MaxInt64/int64(pageSize):
		skip = math.MaxInt64
	default:
		skip = int64(pageIndex) * int64(pageSize)
	}
	return Query{
		Name:       "page",
		Projection: ProjectSummary,
		Order:      PriceAsc,
		Skip:       skip,
		Limit:      int64(pageSize),
	}
}
