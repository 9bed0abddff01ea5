package jwthelper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	key := []byte("secret")

	token, err := GenerateToken(key, "9999999999", RoleUser, time.Hour, "curl/8.0")
	require.NoError(t, err)

	claims, err := ParseToken(key, token)
	require.NoError(t, err)
	assert.Equal(t, "9999999999", claims.Subject)
	assert.Equal(t, RoleUser, claims.Role)
	assert.Equal(t, "curl/8.0", claims.UserAgent)
}

func TestParseToken_Rejects(t *testing.T) {
	key := []byte("secret")

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "wrong key",
			token: func(t *testing.T) string {
				token, err := GenerateToken([]byte("other"), "1", RoleAdmin, time.Hour, "")
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				token, err := GenerateToken(key, "1", RoleUser, -time.Minute, "")
				require.NoError(t, err)
				return token
			},
		},
		{
			name:  "garbage",
			token: func(*testing.T) string { return "not.a.token" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(key, tt.token(t))
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
