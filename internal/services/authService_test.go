package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", hash)

	require.True(t, VerifyPassword("hunter2", hash))
	require.False(t, VerifyPassword("hunter3", hash))
}

func TestGenerateJWTCarriesClaims(t *testing.T) {
	svc := &AuthService{secret: "s3cret", ttl: time.Hour}

	signed, err := svc.GenerateJWT("64f000000000000000000001", "e@x.com", "hr")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("s3cret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, "64f000000000000000000001", claims["user_id"])
	require.Equal(t, "e@x.com", claims["email"])
	require.Equal(t, "hr", claims["role"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	require.True(t, exp.After(time.Now()))
}
