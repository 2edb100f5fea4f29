package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shashiranjanraj/maison/config"
	"github.com/shashiranjanraj/maison/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	id := auth.Identity{ID: 7, Username: "shashi", Role: "user"}

	token, err := auth.GenerateToken(id)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.False(t, got.IsAdmin())
}

func TestAdminRole(t *testing.T) {
	token, err := auth.GenerateToken(auth.Identity{ID: 1, Username: "admin", Role: auth.RoleAdmin})
	require.NoError(t, err)

	got, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.True(t, got.IsAdmin())
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := auth.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	claims := auth.Claims{UserID: 1, Username: "mallory", Role: auth.RoleAdmin}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = auth.VerifyToken(forged)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	claims := auth.Claims{
		UserID:   1,
		Username: "late",
		Role:     "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.JWTSecret()))
	require.NoError(t, err)

	_, err = auth.VerifyToken(expired)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, auth.CheckPassword(hash, "hunter2"))
	assert.False(t, auth.CheckPassword(hash, "hunter3"))
}
