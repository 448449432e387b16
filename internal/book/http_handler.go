package book

import (
	"errors"
	"net/http"
	"strconv"

	"bookrest/internal/httpx"

	"github.com/rs/zerolog"
)

type HTTPHandler struct {
	service *Service
	log     zerolog.Logger
}

func NewHTTPHandler(service *Service, log zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET "+ResourcePath, h.FindAll)
	mux.HandleFunc("GET "+ResourcePath+"/{id}", h.FindByID)
	mux.HandleFunc("POST "+ResourcePath, h.Create)
	mux.HandleFunc("PUT "+ResourcePath, h.Update)
	mux.HandleFunc("DELETE "+ResourcePath+"/{id}", h.Delete)
}

// FindAll handles GET /api/book/v1
// @Summary Finds all books
// @Description Returns every book with its self link
// @Tags Book
// @Produce json
// @Success 200 {object} httpx.SuccessResponse{data=[]BookVO}
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/book/v1 [get]
func (h *HTTPHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.FindAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]any{"total": len(books)})
}

// FindByID handles GET /api/book/v1/{id}
// @Summary Finds a book
// @Description Returns the book identified by id
// @Tags Book
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} httpx.SuccessResponse{data=BookVO}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/book/v1/{id} [get]
func (h *HTTPHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	vo, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, vo, nil)
}

// Create handles POST /api/book/v1
// @Summary Adds a new book
// @Description Persists the book and returns it with its self link
// @Tags Book
// @Accept json
// @Produce json
// @Param book body BookVO true "Book to create"
// @Success 201 {object} httpx.SuccessResponse{data=BookVO}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 422 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/book/v1 [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decode(w, r)
	if !ok {
		return
	}

	vo, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if self, found := vo.Links.Rel(RelSelf); found {
		w.Header().Set("Location", self.Href)
	}
	httpx.JSONSuccessCreated(w, r, vo)
}

// Update handles PUT /api/book/v1
// @Summary Updates a book
// @Description Overwrites the book identified by the body id; never inserts
// @Tags Book
// @Accept json
// @Produce json
// @Param book body BookVO true "Book to update"
// @Success 200 {object} httpx.SuccessResponse{data=BookVO}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 422 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/book/v1 [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decode(w, r)
	if !ok {
		return
	}

	vo, err := h.service.Update(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, vo, nil)
}

// Delete handles DELETE /api/book/v1/{id}
// @Summary Deletes a book
// @Tags Book
// @Param id path int true "Book ID"
// @Success 204
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/book/v1/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

func (h *HTTPHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "id must be an integer", nil)
		return 0, false
	}
	return id, true
}

// decode returns a nil VO for an empty or null body; the service rejects it.
func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request) (*BookVO, bool) {
	var in *BookVO
	if err := httpx.DecodeJSON(r, &in); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
			return nil, false
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Malformed JSON body", nil)
		return nil, false
	}
	if in != nil {
		if details := httpx.ValidateStruct(in); len(details) > 0 {
			httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
			return nil, false
		}
	}
	return in, true
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var mapErr *MappingError
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, ErrRequiredObjectIsNull):
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
	case errors.As(err, &mapErr):
		h.log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("book mapping failed")
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	default:
		h.log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("book request failed")
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
