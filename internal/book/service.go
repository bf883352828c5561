package book

import (
	"context"
	"fmt"
	"math"
)

// Service exposes the named query library over a Repository.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// FindAfterYear returns books published after year.
func (s *Service) FindAfterYear(ctx context.Context, year int) ([]Book, error) {
	return s.repo.Find(ctx, AfterYear(year))
}

// FindByAuthor returns books whose author matches exactly.
func (s *Service) FindByAuthor(ctx context.Context, author string) ([]Book, error) {
	if err := validateStruct(authorInput{Author: author}); err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, ByAuthor(author))
}

// FindByAuthorSummaries is FindByAuthor with the summary projection.
func (s *Service) FindByAuthorSummaries(ctx context.Context, author string) ([]Summary, error) {
	if err := validateStruct(authorInput{Author: author}); err != nil {
		return nil, err
	}
	books, err := s.repo.Find(ctx, ByAuthorSummary(author))
	if err != nil {
		return nil, err
	}
	return summaries(books), nil
}

// UpdatePriceByTitle sets the price of at most one book with the given title.
func (s *Service) UpdatePriceByTitle(ctx context.Context, title string, price float64) (UpdateResult, error) {
	if err := validateStruct(priceUpdateInput{Title: title, Price: price}); err != nil {
		return UpdateResult{}, err
	}
	return s.repo.UpdatePriceByTitle(ctx, title, price)
}

// DeleteByTitle deletes at most one book with the given title.
func (s *Service) DeleteByTitle(ctx context.Context, title string) (int64, error) {
	if err := validateStruct(titleInput{Title: title}); err != nil {
		return 0, err
	}
	return s.repo.DeleteByTitle(ctx, title)
}

// FindInStockAfterYear returns summaries of in-stock books published after year.
func (s *Service) FindInStockAfterYear(ctx context.Context, year int) ([]Summary, error) {
	books, err := s.repo.Find(ctx, InStockAfterYear(year))
	if err != nil {
		return nil, err
	}
	return summaries(books), nil
}

// SortByPrice is FindInStockAfterYear ordered by price.
func (s *Service) SortByPrice(ctx context.Context, year int, ascending bool) ([]Summary, error) {
	books, err := s.repo.Find(ctx, SortedByPrice(InStockAfterYear(year), ascending))
	if err != nil {
		return nil, err
	}
	return summaries(books), nil
}

// Paginate returns one page of book summaries ordered by price.
func (s *Service) Paginate(ctx context.Context, pageSize, pageIndex int) ([]Summary, error) {
	if err := validateStruct(pageInput{PageSize: pageSize, PageIndex: pageIndex}); err != nil {
		return nil, err
	}
	if int64(pageIndex) > math.MaxInt64/int64(pageSize) {
		return nil, fmt.Errorf("%w: page offset overflows", ErrInvalidInput)
	}
	books, err := s.repo.Find(ctx, Page(pageSize, pageIndex))
	if err != nil {
		return nil, err
	}
	return summaries(books), nil
}

// AveragePriceByGenre returns the mean price per genre, highest first.
func (s *Service) AveragePriceByGenre(ctx context.Context) ([]GenreAverage, error) {
	return s.repo.AveragePriceByGenre(ctx)
}

// CountByDecade returns the number of books per publication decade, oldest first.
func (s *Service) CountByDecade(ctx context.Context) ([]DecadeCount, error) {
	return s.repo.CountByDecade(ctx)
}

// CreateIndex asks the engine to build the index described by spec.
func (s *Service) CreateIndex(ctx context.Context, spec IndexSpec) (string, error) {
	if err := validateStruct(spec); err != nil {
		return "", err
	}
	return s.repo.CreateIndex(ctx, spec)
}

// CreateDefaultIndexes creates the title and author/published_year indexes.
func (s *Service) CreateDefaultIndexes(ctx context.Context) ([]string, error) {
	var names []string
	for _, spec := range []IndexSpec{TitleIndex, AuthorYearIndex} {
		name, err := s.CreateIndex(ctx, spec)
		if err != nil {
			return names, err
		}
		names = append(names, name)
	}
	return names, nil
}

// Explain returns the engine's execution statistics for q.
func (s *Service) Explain(ctx context.Context, q Query) (Plan, error) {
	return s.repo.Explain(ctx, q)
}

// Ping checks that the engine is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
