package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTokenValidator is a map-backed TokenValidator for unit tests.
type testTokenValidator struct {
	validTokens map[string]uuid.UUID
}

func newTestTokenValidator() *testTokenValidator {
	return &testTokenValidator{validTokens: make(map[string]uuid.UUID)}
}

func (v *testTokenValidator) addValidToken(token string, userID uuid.UUID) {
	v.validTokens[token] = userID
}

func (v *testTokenValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	userID, ok := v.validTokens[tokenString]
	if !ok {
		return nil, fmt.Errorf("invalid token")
	}
	return &testClaims{userID: userID}, nil
}

type testClaims struct {
	userID uuid.UUID
}

func (c *testClaims) GetUserID() uuid.UUID {
	return c.userID
}

// runAuthed sends a request through the middleware with the given header and
// reports whether the inner handler ran and which user ID it saw.
func runAuthed(t *testing.T, validator TokenValidator, authHeader string) (bool, uuid.UUID, int) {
	t.Helper()

	handlerCalled := false
	var contextUserID uuid.UUID
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		extracted, err := GetUserID(r)
		require.NoError(t, err)
		contextUserID = extracted
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	AuthMiddleware(validator)(handler).ServeHTTP(w, req)

	return handlerCalled, contextUserID, w.Code
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	validator := newTestTokenValidator()
	userID := uuid.New()
	validator.addValidToken("valid-test-token-123", userID)

	called, contextUserID, code := runAuthed(t, validator, "Bearer valid-test-token-123")

	assert.True(t, called, "handler should be called")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, userID, contextUserID)
}

func TestAuthMiddleware_CaseInsensitiveBearer(t *testing.T) {
	validator := newTestTokenValidator()
	userID := uuid.New()
	validator.addValidToken("tok", userID)

	for _, header := range []string{"bearer tok", "BEARER tok", "BeArEr tok"} {
		called, contextUserID, code := runAuthed(t, validator, header)
		assert.True(t, called, header)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, userID, contextUserID)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	called, _, code := runAuthed(t, newTestTokenValidator(), "")

	assert.False(t, called, "handler should not be called")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAuthMiddleware_InvalidFormat(t *testing.T) {
	cases := []struct {
		name       string
		authHeader string
	}{
		{"missing Bearer prefix", "token123"},
		{"empty token", "Bearer "},
		{"only Bearer", "Bearer"},
		{"extra parts", "Bearer token123 extra"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called, _, code := runAuthed(t, newTestTokenValidator(), tc.authHeader)
			assert.False(t, called, "handler should not be called")
			assert.Equal(t, http.StatusUnauthorized, code)
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	called, _, code := runAuthed(t, newTestTokenValidator(), "Bearer not-a-known-token")

	assert.False(t, called, "handler should not be called")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestGetUserID_Success(t *testing.T) {
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(context.WithValue(req.Context(), userIDKey, userID))

	extracted, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, userID, extracted)
}

func TestGetUserID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	userID, err := GetUserID(req)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, userID)
	assert.Contains(t, err.Error(), "user ID not found")
}

func TestGetUserID_InvalidType(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(context.WithValue(req.Context(), userIDKey, "not-a-uuid"))

	userID, err := GetUserID(req)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, userID)
}
