package http

import (
	"log/slog"
	"net/http"

	apperrors "github.com/classboard/classboard/pkg/errors"
	"github.com/classboard/classboard/pkg/httputil"
	"github.com/classboard/classboard/pkg/logger"
	"github.com/classboard/classboard/pkg/validator"
)

// writeAppError maps an application error to the wire envelope. Internal
// causes are logged with the request context and never leave the server.
func writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	code := apperrors.Code(err)

	l := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		l.ErrorContext(r.Context(), "request failed",
			slog.String("code", code),
			slog.String("error", err.Error()),
		)
	} else {
		l.DebugContext(r.Context(), "request rejected",
			slog.String("code", code),
			slog.String("error", err.Error()),
		)
	}

	httputil.Fail(w, status, code)
}

// writeValidationError maps a struct validation failure to a 400 with the
// offending fields.
func writeValidationError(w http.ResponseWriter, err error) {
	if ve, ok := err.(*validator.ValidationError); ok {
		httputil.FailFields(w, http.StatusBadRequest, "VALIDATION_ERROR", ve.Fields())
		return
	}
	httputil.Fail(w, http.StatusBadRequest, "VALIDATION_ERROR")
}

// writeInvalidBody rejects a request whose JSON body could not be decoded.
func writeInvalidBody(w http.ResponseWriter) {
	httputil.Fail(w, http.StatusBadRequest, "INVALID_INPUT")
}
