package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"bookquery/internal/httpx"
)

type HTTPHandler struct {
	service  *Service
	pageSize int
}

func NewHTTPHandler(service *Service, pageSize int) *HTTPHandler {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &HTTPHandler{service: service, pageSize: pageSize}
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /books/published-after/{year}", h.FindAfterYear)
	mux.HandleFunc("GET /books/by-author/{author}", h.FindByAuthor)
	mux.HandleFunc("GET /books/by-author/{author}/explain", h.ExplainByAuthor)
	mux.HandleFunc("GET /books/in-stock/published-after/{year}", h.FindInStockAfterYear)
	mux.HandleFunc("GET /books/pages/{index}", h.Paginate)
	mux.HandleFunc("PATCH /books/by-title/{title}/price", h.UpdatePriceByTitle)
	mux.HandleFunc("DELETE /books/by-title/{title}", h.DeleteByTitle)
	mux.HandleFunc("GET /stats/genres/average-price", h.AveragePriceByGenre)
	mux.HandleFunc("GET /stats/decades", h.CountByDecade)
	mux.HandleFunc("POST /indexes", h.CreateIndex)
}

// FindAfterYear handles GET /books/published-after/{year}
func (h *HTTPHandler) FindAfterYear(w http.ResponseWriter, r *http.Request) {
	year, ok := h.pathInt(w, r, "year")
	if !ok {
		return
	}
	books, err := h.service.FindAfterYear(r.Context(), year)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, books, map[string]interface{}{"count": len(books)})
}

// FindByAuthor handles GET /books/by-author/{author}?view=summary
func (h *HTTPHandler) FindByAuthor(w http.ResponseWriter, r *http.Request) {
	author := r.PathValue("author")
	if r.URL.Query().Get("view") == "summary" {
		out, err := h.service.FindByAuthorSummaries(r.Context(), author)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		httpx.JSONSuccessWithRequest(r, w, out, map[string]interface{}{"count": len(out)})
		return
	}

	books, err := h.service.FindByAuthor(r.Context(), author)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, books, map[string]interface{}{"count": len(books)})
}

// ExplainByAuthor handles GET /books/by-author/{author}/explain
func (h *HTTPHandler) ExplainByAuthor(w http.ResponseWriter, r *http.Request) {
	plan, err := h.service.Explain(r.Context(), ByAuthor(r.PathValue("author")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, plan, nil)
}

// FindInStockAfterYear handles GET /books/in-stock/published-after/{year}?order=asc|desc
func (h *HTTPHandler) FindInStockAfterYear(w http.ResponseWriter, r *http.Request) {
	year, ok := h.pathInt(w, r, "year")
	if !ok {
		return
	}

	var (
		out []Summary
		err error
	)
	switch order := r.URL.Query().Get("order"); order {
	case "":
		out, err = h.service.FindInStockAfterYear(r.Context(), year)
	case "asc", "desc":
		out, err = h.service.SortByPrice(r.Context(), year, order == "asc")
	default:
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid order",
			[]httpx.ErrorDetail{{Field: "order", Message: "order must be asc or desc"}})
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, out, map[string]interface{}{"count": len(out)})
}

// Paginate handles GET /books/pages/{index}?size=5
func (h *HTTPHandler) Paginate(w http.ResponseWriter, r *http.Request) {
	index, ok := h.pathInt(w, r, "index")
	if !ok {
		return
	}
	size := h.pageSize
	if s := r.URL.Query().Get("size"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid page size",
				[]httpx.ErrorDetail{{Field: "size", Message: "size must be an integer"}})
			return
		}
		size = v
	}

	out, err := h.service.Paginate(r.Context(), size, index)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, out, map[string]interface{}{
		"page":      index,
		"page_size": size,
		"count":     len(out),
	})
}

type priceRequest struct {
	Price float64 `json:"price"`
}

// UpdatePriceByTitle handles PATCH /books/by-title/{title}/price
func (h *HTTPHandler) UpdatePriceByTitle(w http.ResponseWriter, r *http.Request) {
	var req priceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}

	res, err := h.service.UpdatePriceByTitle(r.Context(), r.PathValue("title"), req.Price)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, res, nil)
}

// DeleteByTitle handles DELETE /books/by-title/{title}
func (h *HTTPHandler) DeleteByTitle(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.DeleteByTitle(r.Context(), r.PathValue("title"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, map[string]int64{"deleted": n}, nil)
}

// AveragePriceByGenre handles GET /stats/genres/average-price
func (h *HTTPHandler) AveragePriceByGenre(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.AveragePriceByGenre(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, out, nil)
}

// CountByDecade handles GET /stats/decades
func (h *HTTPHandler) CountByDecade(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.CountByDecade(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, out, nil)
}

// CreateIndex handles POST /indexes
func (h *HTTPHandler) CreateIndex(w http.ResponseWriter, r *http.Request) {
	var spec IndexSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}

	name, err := h.service.CreateIndex(r.Context(), spec)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessCreatedWithRequest(r, w, map[string]string{"name": name})
}

func (h *HTTPHandler) pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid path parameter",
			[]httpx.ErrorDetail{{Field: name, Message: name + " must be an integer"}})
		return 0, false
	}
	return v, true
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnsupportedField):
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	default:
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
