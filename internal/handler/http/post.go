package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/classboard/classboard/internal/domain"
	"github.com/classboard/classboard/internal/service"
	apperrors "github.com/classboard/classboard/pkg/errors"
	"github.com/classboard/classboard/pkg/httputil"
	"github.com/classboard/classboard/pkg/pagination"
	"github.com/classboard/classboard/pkg/validator"
)

// PostHandler handles HTTP requests for post endpoints.
type PostHandler struct {
	service *service.PostService
	logger  *slog.Logger
}

// NewPostHandler creates a new post HTTP handler.
func NewPostHandler(svc *service.PostService, logger *slog.Logger) *PostHandler {
	return &PostHandler{service: svc, logger: logger}
}

// CreatePostRequest is the JSON request body for creating a post.
type CreatePostRequest struct {
	Title      string  `json:"title" validate:"required,min=1,max=255"`
	Content    string  `json:"content" validate:"required"`
	CategoryID *string `json:"category_id" validate:"omitempty,uuid4"`
	Published  bool    `json:"published"`
}

// UpdatePostRequest is the JSON request body for updating a post.
type UpdatePostRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content    *string `json:"content"`
	CategoryID *string `json:"category_id"`
	Published  *bool   `json:"published"`
}

// Create handles POST /api/v1/posts
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		writeAppError(w, r, apperrors.TokenMissing())
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	post, err := h.service.Create(r.Context(), claims.UserID, service.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		Published:  req.Published,
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	httputil.OK(w, http.StatusCreated, post)
}

// List handles GET /api/v1/posts
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)
	filter, invalid := postFilterFromRequest(r)
	if len(invalid) > 0 {
		httputil.FailFields(w, http.StatusBadRequest, "VALIDATION_ERROR", invalid)
		return
	}

	result, err := h.service.List(r.Context(), filter, params)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	httputil.OK(w, http.StatusOK, result)
}

// Get handles GET /api/v1/posts/{slug}
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	httputil.OK(w, http.StatusOK, post)
}

// Update handles PUT /api/v1/posts/{id}
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		writeAppError(w, r, apperrors.TokenMissing())
		return
	}

	id := chi.URLParam(r, "id")

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	post, err := h.service.Update(r.Context(), claims.UserID, RoleFromContext(r.Context()), id, service.UpdatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		Published:  req.Published,
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	httputil.OK(w, http.StatusOK, post)
}

// Delete handles DELETE /api/v1/posts/{id}
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		writeAppError(w, r, apperrors.TokenMissing())
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), claims.UserID, RoleFromContext(r.Context()), id); err != nil {
		writeAppError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// postFilterFromRequest extracts list filters from the query string.
// Unparseable values are reported in the returned field map.
func postFilterFromRequest(r *http.Request) (domain.PostFilter, map[string]string) {
	q := r.URL.Query()
	filter := domain.PostFilter{
		CategorySlug: q.Get("category"),
		Search:       q.Get("q"),
	}
	invalid := map[string]string{}

	if author := q.Get("author"); author != "" {
		if _, err := uuid.Parse(author); err != nil {
			invalid["author"] = "must be a valid UUID"
		} else {
			filter.AuthorID = author
		}
	}

	if published := q.Get("published"); published != "" {
		v, err := strconv.ParseBool(published)
		if err != nil {
			invalid["published"] = "must be a boolean value"
		} else {
			filter.Published = &v
		}
	}

	return filter, invalid
}
