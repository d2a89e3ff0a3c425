package security

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)

	tokenString, err := issuer.GenerateToken("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := issuer.Auth().Decode(tokenString)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)

	userID, err := GetUserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.Expiration(), 5*time.Second)
}

func TestTokenFromOtherSecretIsRejected(t *testing.T) {
	tokenString, err := NewTokenIssuer([]byte("one"), time.Hour).GenerateToken("user-1")
	require.NoError(t, err)

	_, err = NewTokenIssuer([]byte("two"), time.Hour).Auth().Decode(tokenString)
	assert.Error(t, err)
}

func TestGetUserIDFromClaims(t *testing.T) {
	_, err := GetUserIDFromClaims(jwt.MapClaims{})
	assert.Error(t, err)

	_, err = GetUserIDFromClaims(jwt.MapClaims{"user_id": 42})
	assert.Error(t, err)

	id, err := GetUserIDFromClaims(jwt.MapClaims{"user_id": "abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
}
