package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classboard/classboard/internal/domain"
)

const testSecret = "test-secret-key-for-token-tests"

func TestGenerate_VerifiesToOriginalClaims(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)
	roleID := domain.RoleIDTeacher

	token, err := m.Generate("u-1", "professor@classboard.app", "professor", &roleID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "professor@classboard.app", claims.Email)
	assert.Equal(t, "professor", claims.Name)
	require.NotNil(t, claims.RoleID)
	assert.Equal(t, domain.RoleIDTeacher, *claims.RoleID)
}

func TestGenerate_RoleIDOptional(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	token, err := m.Generate("u-2", "student@classboard.app", "student", nil)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Nil(t, claims.RoleID)
}

func TestVerify_ExpiredToken(t *testing.T) {
	m := NewTokenManager(testSecret, -time.Minute)

	token, err := m.Generate("u-1", "a@b.c", "a", nil)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	assert.Nil(t, claims)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenExpired), "want ErrTokenExpired, got %v", err)
}

func TestVerify_WrongSecret(t *testing.T) {
	signer := NewTokenManager(testSecret, time.Hour)
	verifier := NewTokenManager("a-completely-different-secret", time.Hour)

	token, err := signer.Generate("u-1", "a@b.c", "a", nil)
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Nil(t, claims)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenSignatureInvalid), "want ErrTokenSignatureInvalid, got %v", err)
}

func TestVerify_MalformedToken(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	claims, err := m.Verify("not.a.token")
	assert.Nil(t, claims)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenMalformed), "want ErrTokenMalformed, got %v", err)
}

func TestVerify_TamperedToken(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	token, err := m.Generate("u-1", "a@b.c", "a", nil)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	claims, err := m.Verify(tampered)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestGenerate_ExpirySetFromTTL(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	token, err := m.Generate("u-1", "a@b.c", "a", nil)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, time.Hour, lifetime)
}
