package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/review-scripter/internal/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-at-least-32-characters!!",
		ExpirationHours: 1,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := newTestJWTService()
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_WrongSecret(t *testing.T) {
	service := newTestJWTService()
	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{
		Secret:          "a-completely-different-secret-value",
		ExpirationHours: 1,
	})

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_EmptyToken(t *testing.T) {
	_, err := newTestJWTService().ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	_, err := newTestJWTService().ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	secret := "test-secret-at-least-32-characters!!"
	service := NewJWTService(&config.JWTConfig{Secret: secret, ExpirationHours: 1})

	// Sign a token that expired an hour ago
	past := time.Now().Add(-2 * time.Hour)
	claims := &Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(past),
			NotBefore: jwt.NewNumericDate(past),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = service.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	service := newTestJWTService()
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)

	validator := service.AsTokenValidator()
	getter, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, getter.GetUserID())
}
