package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig_CostRange(t *testing.T) {
	tests := []struct {
		name     string
		cost     string
		wantCost int
		wantErr  bool
	}{
		{"default when unset", "", 12, false},
		{"minimum", "10", 10, false},
		{"maximum", "14", 14, false},
		{"below minimum", "9", 0, true},
		{"above maximum", "15", 0, true},
		{"negative", "-5", 0, true},
		{"zero", "0", 0, true},
		{"non-numeric", "invalid", 0, true},
		{"float", "12.5", 0, true},
		{"whitespace not trimmed", "  12  ", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.cost)
			t.Setenv("PASSWORD_PEPPER", "")

			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("correct-horse-battery")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, cfg.VerifyPassword("correct-horse-battery", hash))
	assert.False(t, cfg.VerifyPassword("wrong-password", hash))

	// Bcrypt salts, so rehashing the same password yields a different hash
	hash2, err := cfg.HashPassword("correct-horse-battery")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
	assert.True(t, cfg.VerifyPassword("correct-horse-battery", hash2))
}

func TestPasswordConfig_Pepper(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "global-secret"}
	plain := &PasswordConfig{BcryptCost: 10}

	hash, err := peppered.HashPassword("correct-horse-battery")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("correct-horse-battery", hash))
	// Without the pepper the same password must not verify
	assert.False(t, plain.VerifyPassword("correct-horse-battery", hash))

	// A different pepper must not verify either
	rotated := &PasswordConfig{BcryptCost: 10, Pepper: "other-secret"}
	assert.False(t, rotated.VerifyPassword("correct-horse-battery", hash))
}

func TestPasswordConfig_EmptyPassword(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("")
	require.NoError(t, err)
	assert.True(t, cfg.VerifyPassword("", hash))
	assert.False(t, cfg.VerifyPassword("not-empty", hash))
}

func TestPasswordConfig_BcryptLengthLimit(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	// 72 bytes is bcrypt's input limit; at the limit hashing works
	atLimit := strings.Repeat("a", 72)
	hash, err := cfg.HashPassword(atLimit)
	require.NoError(t, err)
	assert.True(t, cfg.VerifyPassword(atLimit, hash))

	// Beyond the limit bcrypt errors rather than truncating
	_, err = cfg.HashPassword(strings.Repeat("a", 73))
	assert.Error(t, err)

	// The pepper counts toward the limit
	longPepper := &PasswordConfig{BcryptCost: 10, Pepper: strings.Repeat("p", 64)}
	_, err = longPepper.HashPassword("test12345")
	assert.Error(t, err)
}

func TestPasswordConfig_MalformedHash(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	for _, malformed := range []string{"", "not-a-hash", "$2a$12$invalid", "invalid$format"} {
		assert.False(t, cfg.VerifyPassword("test", malformed), "hash %q", malformed)
	}
}
