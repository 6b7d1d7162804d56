package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsSentinel(t *testing.T) {
	err := NotFound("post", "p-1")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
	assert.Equal(t, "NOT_FOUND", Code(err))
}

func TestLoginFailures_AreDistinguishable(t *testing.T) {
	iu := InvalidUser()
	ic := InvalidCredentials()

	assert.True(t, errors.Is(iu, ErrInvalidUser))
	assert.False(t, errors.Is(iu, ErrInvalidCredentials))
	assert.True(t, errors.Is(ic, ErrInvalidCredentials))
	assert.False(t, errors.Is(ic, ErrInvalidUser))

	// Both map to 401 but carry distinct wire codes.
	assert.Equal(t, http.StatusUnauthorized, iu.Status)
	assert.Equal(t, http.StatusUnauthorized, ic.Status)
	assert.Equal(t, "INVALID_USER", iu.Code)
	assert.Equal(t, "ENCRYPTION_ERROR", ic.Code)
}

func TestInternal_NeverLeaksCause(t *testing.T) {
	cause := fmt.Errorf("pq: connection refused")
	err := Internal(cause)

	assert.Equal(t, "SERVER_ERROR_INTERNAL", err.Code)
	assert.True(t, errors.Is(err, ErrInternal))
	assert.True(t, errors.Is(err, cause), "cause must stay reachable for logging")
	assert.NotContains(t, err.Message, "connection refused")
}

func TestPermissionCheck_FailsClosed(t *testing.T) {
	err := PermissionCheck(errors.New("store down"))
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "PERMISSION_CHECK_ERROR", err.Code)
	assert.True(t, errors.Is(err, ErrPermissionCheck))
}

func TestHTTPStatus_SentinelsWithoutAppError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("lookup: %w", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("insert: %w", ErrAlreadyExists), http.StatusConflict},
		{ErrTokenMissing, http.StatusUnauthorized},
		{ErrTokenInvalid, http.StatusForbidden},
		{ErrNoPermission, http.StatusForbidden},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), "err=%v", tc.err)
	}
}

func TestCode_DefaultsToInternal(t *testing.T) {
	assert.Equal(t, "SERVER_ERROR_INTERNAL", Code(errors.New("boom")))
}
