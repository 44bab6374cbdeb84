package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("gizli-sifre-123")
	require.NoError(t, err)
	assert.NotEqual(t, "gizli-sifre-123", hash)

	assert.True(t, CheckPasswordHash("gizli-sifre-123", hash))
	assert.False(t, CheckPasswordHash("yanlis-sifre", hash))
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("test-secret", time.Hour, "user-1", "a@b.com", "couple")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "couple", claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	_, err := GenerateToken("", time.Hour, "user-1", "a@b.com", "couple")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-one", time.Hour, "user-1", "a@b.com", "couple")
	require.NoError(t, err)

	_, err = ParseToken("secret-two", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("secret", "not-a-token")
	assert.Error(t, err)
}

func TestTokenFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"empty", "", "", false},
		{"bare token", "abc123", "", false},
		{"bearer", "Bearer abc123", "abc123", true},
		{"lowercase scheme", "bearer abc123", "abc123", true},
		{"missing token", "Bearer ", "", false},
		{"wrong scheme", "Basic abc123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TokenFromHeader(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
