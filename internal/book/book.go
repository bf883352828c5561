package book

import (
	"errors"
)

var (
	// ErrInvalidInput is returned when an operation argument violates its constraints.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedField is returned when an index names a field outside the book schema.
	ErrUnsupportedField = errors.New("unsupported field")
)

// Field names as stored by every engine.
const (
	FieldTitle         = "title"
	FieldAuthor        = "author"
	FieldPublishedYear = "published_year"
	FieldPrice         = "price"
	FieldGenre         = "genre"
	FieldInStock       = "in_stock"
)

// Book represents a book document.
type Book struct {
	ID            string  `json:"id,omitempty"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	PublishedYear int     `json:"published_year"`
	Price         float64 `json:"price"`
	Genre         string  `json:"genre"`
	InStock       bool    `json:"in_stock"`
}

// Summary is the title/author/price projection of a book.
type Summary struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Price  float64 `json:"price"`
}

// Summary returns the projected view of b.
func (b Book) Summary() Summary {
	return Summary{Title: b.Title, Author: b.Author, Price: b.Price}
}

// GenreAverage is one row of the average price by genre aggregation.
type GenreAverage struct {
	Genre        string  `json:"genre" bson:"_id"`
	AveragePrice float64 `json:"average_price" bson:"averagePrice"`
}

// DecadeCount is one row of the books per decade aggregation.
type DecadeCount struct {
	Decade int `json:"decade" bson:"_id"`
	Count  int `json:"count" bson:"count"`
}

// UpdateResult reports how many documents a single-document update touched.
type UpdateResult struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
}

// Plan holds execution statistics exactly as the engine reported them.
type Plan map[string]any

func summaries(books []Book) []Summary {
	out := make([]Summary, 0, len(books))
	for _, b := range books {
		out = append(out, b.Summary())
	}
	return out
}
