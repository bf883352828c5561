package book

import (
	"fmt"
	"strings"
)

// Index key directions.
const (
	Ascending  = 1
	Descending = -1
)

// IndexField is one key of an index, in order.
type IndexField struct {
	Field     string `json:"field" validate:"required,oneof=title author published_year price genre in_stock"`
	Direction int    `json:"direction" validate:"oneof=1 -1"`
}

// IndexSpec is an ordered list of index keys.
type IndexSpec struct {
	Fields []IndexField `json:"fields" validate:"required,min=1,dive"`
}

var (
	// TitleIndex speeds up lookups by title.
	TitleIndex = IndexSpec{Fields: []IndexField{
		{Field: FieldTitle, Direction: Ascending},
	}}
	// AuthorYearIndex is the compound author/published_year index.
	AuthorYearIndex = IndexSpec{Fields: []IndexField{
		{Field: FieldAuthor, Direction: Ascending},
		{Field: FieldPublishedYear, Direction: Ascending},
	}}
)

// Name returns the conventional index name, e.g. "author_1_published_year_1".
func (s IndexSpec) Name() string {
	parts := make([]string, 0, len(s.Fields)*2)
	for _, f := range s.Fields {
		parts = append(parts, f.Field, fmt.Sprint(f.Direction))
	}
	return strings.Join(parts, "_")
}

// ParseIndexSpec parses "title:1,author:-1". A missing direction means ascending.
func ParseIndexSpec(s string) (IndexSpec, error) {
	var spec IndexSpec
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		field, dir, found := strings.Cut(part, ":")
		f := IndexField{Field: strings.TrimSpace(field), Direction: Ascending}
		if found {
			switch strings.TrimSpace(dir) {
			case "1", "+1", "asc":
				f.Direction = Ascending
			case "-1", "desc":
				f.Direction = Descending
			default:
				return IndexSpec{}, fmt.Errorf("%w: direction %q for %s", ErrInvalidInput, dir, f.Field)
			}
		}
		spec.Fields = append(spec.Fields, f)
	}
	if len(spec.Fields) == 0 {
		return IndexSpec{}, fmt.Errorf("%w: empty index spec", ErrInvalidInput)
	}
	return spec, nil
}
