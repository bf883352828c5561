package book_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookquery/internal/book"
	"bookquery/internal/book/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMux(t *testing.T) (*http.ServeMux, *mocks.MockRepository) {
	svc, repo := newService(t)
	mux := http.NewServeMux()
	book.NewHTTPHandler(svc, 0).Register(mux)
	return mux, repo
}

func serve(mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
	Error   struct {
		Code string `json:"code"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return env
}

func TestHTTPHandler_FindAfterYear(t *testing.T) {
	mux, repo := newMux(t)

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().Find(gomock.Any(), book.AfterYear(1950)).Return([]book.Book{hobbit}, nil)

		w := serve(mux, http.MethodGet, "/books/published-after/1950", "")

		assert.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		assert.True(t, env.Success)
		assert.Equal(t, float64(1), env.Meta["count"])
	})

	t.Run("bad year", func(t *testing.T) {
		w := serve(mux, http.MethodGet, "/books/published-after/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("engine error", func(t *testing.T) {
		repo.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)

		w := serve(mux, http.MethodGet, "/books/published-after/1950", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", decode(t, w).Error.Code)
	})
}

func TestHTTPHandler_FindByAuthor(t *testing.T) {
	mux, repo := newMux(t)

	repo.EXPECT().Find(gomock.Any(), book.ByAuthorSummary("George Orwell")).
		Return([]book.Book{{Title: "1984", Author: "George Orwell", Price: 10.99}}, nil)

	w := serve(mux, http.MethodGet, "/books/by-author/George%20Orwell?view=summary", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var out []book.Summary
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &out))
	assert.Equal(t, []book.Summary{{Title: "1984", Author: "George Orwell", Price: 10.99}}, out)
}

func TestHTTPHandler_InStock(t *testing.T) {
	mux, repo := newMux(t)

	t.Run("sorted descending", func(t *testing.T) {
		repo.EXPECT().Find(gomock.Any(), book.SortedByPrice(book.InStockAfterYear(2010), false)).Return(nil, nil)

		w := serve(mux, http.MethodGet, "/books/in-stock/published-after/2010?order=desc", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown order", func(t *testing.T) {
		w := serve(mux, http.MethodGet, "/books/in-stock/published-after/2010?order=up", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Paginate(t *testing.T) {
	mux, repo := newMux(t)

	t.Run("default size", func(t *testing.T) {
		repo.EXPECT().Find(gomock.Any(), book.Page(book.DefaultPageSize, 2)).Return([]book.Book{orwell}, nil)

		w := serve(mux, http.MethodGet, "/books/pages/2", "")
		assert.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		assert.Equal(t, float64(5), env.Meta["page_size"])
		assert.Equal(t, float64(2), env.Meta["page"])
	})

	t.Run("negative index", func(t *testing.T) {
		w := serve(mux, http.MethodGet, "/books/pages/-1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decode(t, w).Error.Code)
	})
}

func TestHTTPHandler_UpdatePrice(t *testing.T) {
	mux, repo := newMux(t)

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().UpdatePriceByTitle(gomock.Any(), "The Hobbit", 14.99).Return(book.UpdateResult{Matched: 1, Modified: 1}, nil)

		w := serve(mux, http.MethodPatch, "/books/by-title/The%20Hobbit/price", `{"price":14.99}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		w := serve(mux, http.MethodPatch, "/books/by-title/The%20Hobbit/price", `{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative price", func(t *testing.T) {
		w := serve(mux, http.MethodPatch, "/books/by-title/The%20Hobbit/price", `{"price":-1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_DeleteByTitle(t *testing.T) {
	mux, repo := newMux(t)
	repo.EXPECT().DeleteByTitle(gomock.Any(), "Moby Dick").Return(int64(1), nil)

	w := serve(mux, http.MethodDelete, "/books/by-title/Moby%20Dick", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":1}`, string(decode(t, w).Data))
}

func TestHTTPHandler_Stats(t *testing.T) {
	mux, repo := newMux(t)
	repo.EXPECT().AveragePriceByGenre(gomock.Any()).Return([]book.GenreAverage{{Genre: "Fantasy", AveragePrice: 17.49}}, nil)
	repo.EXPECT().CountByDecade(gomock.Any()).Return([]book.DecadeCount{{Decade: 1990, Count: 1}}, nil)

	w := serve(mux, http.MethodGet, "/stats/genres/average-price", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"genre":"Fantasy","average_price":17.49}]`, string(decode(t, w).Data))

	w = serve(mux, http.MethodGet, "/stats/decades", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"decade":1990,"count":1}]`, string(decode(t, w).Data))
}

func TestHTTPHandler_CreateIndex(t *testing.T) {
	mux, repo := newMux(t)

	t.Run("created", func(t *testing.T) {
		repo.EXPECT().CreateIndex(gomock.Any(), book.AuthorYearIndex).Return("author_1_published_year_1", nil)

		w := serve(mux, http.MethodPost, "/indexes", `{"fields":[{"field":"author","direction":1},{"field":"published_year","direction":1}]}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"name":"author_1_published_year_1"}`, string(decode(t, w).Data))
	})

	t.Run("unsupported field", func(t *testing.T) {
		w := serve(mux, http.MethodPost, "/indexes", `{"fields":[{"field":"isbn","direction":1}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Explain(t *testing.T) {
	mux, repo := newMux(t)
	repo.EXPECT().Explain(gomock.Any(), book.ByAuthor("George Orwell")).Return(book.Plan{"ok": float64(1)}, nil)

	w := serve(mux, http.MethodGet, "/books/by-author/George%20Orwell/explain", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":1}`, string(decode(t, w).Data))
}
