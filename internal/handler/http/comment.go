package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/classboard/classboard/internal/service"
	apperrors "github.com/classboard/classboard/pkg/errors"
	"github.com/classboard/classboard/pkg/httputil"
	"github.com/classboard/classboard/pkg/pagination"
	"github.com/classboard/classboard/pkg/validator"
)

// CommentHandler handles HTTP requests for comment endpoints.
type CommentHandler struct {
	service *service.CommentService
	logger  *slog.Logger
}

// NewCommentHandler creates a new comment HTTP handler.
func NewCommentHandler(svc *service.CommentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{service: svc, logger: logger}
}

// CreateCommentRequest is the JSON request body for creating a comment.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// Create handles POST /api/v1/posts/{postID}/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		writeAppError(w, r, apperrors.TokenMissing())
		return
	}

	postID := chi.URLParam(r, "postID")

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	comment, err := h.service.Create(r.Context(), claims.UserID, postID, req.Content)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	httputil.OK(w, http.StatusCreated, comment)
}

// List handles GET /api/v1/posts/{postID}/comments
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	params := pagination.FromRequest(r)

	result, err := h.service.ListByPostID(r.Context(), postID, params)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	httputil.OK(w, http.StatusOK, result)
}

// Delete handles DELETE /api/v1/comments/{id}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
