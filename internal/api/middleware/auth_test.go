package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chandraguptgosavi/codemore-backend/internal/common"
	"github.com/chandraguptgosavi/codemore-backend/internal/common/security"
	"github.com/chandraguptgosavi/codemore-backend/internal/domain/model"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userFinderFunc func(ctx context.Context, id string) (*model.User, error)

func (f userFinderFunc) FindByID(ctx context.Context, id string) (*model.User, error) {
	return f(ctx, id)
}

func knownUsers(ids ...string) UserFinder {
	return userFinderFunc(func(_ context.Context, id string) (*model.User, error) {
		for _, known := range ids {
			if id == known {
				return &model.User{ID: id}, nil
			}
		}
		return nil, common.ErrNotFound
	})
}

func protected(t *testing.T, tokens *security.TokenIssuer, users UserFinder) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUserIDFromContext(r.Context())
		require.True(t, ok)
		w.Write([]byte(id))
	})
	return jwtauth.Verifier(tokens.Auth())(Authenticator(users)(next))
}

func TestAuthenticator(t *testing.T) {
	tokens := security.NewTokenIssuer([]byte("secret"), time.Hour)
	valid, err := tokens.GenerateToken("u1")
	require.NoError(t, err)
	orphan, err := tokens.GenerateToken("ghost")
	require.NoError(t, err)
	foreign, err := security.NewTokenIssuer([]byte("other"), time.Hour).GenerateToken("u1")
	require.NoError(t, err)
	expired, err := security.NewTokenIssuer([]byte("secret"), -time.Hour).GenerateToken("u1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{"valid", "Bearer " + valid, http.StatusOK, "u1"},
		{"missing", "", http.StatusUnauthorized, `{"error":"Token missing!"}`},
		{"bad signature", "Bearer " + foreign, http.StatusUnauthorized, `{"error":"Not Authorized"}`},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, `{"error":"Not Authorized"}`},
		{"deleted user", "Bearer " + orphan, http.StatusUnauthorized, `{"error":"Not Authorized"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			protected(t, tokens, knownUsers("u1")).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestAuthenticatorLookupFailure(t *testing.T) {
	tokens := security.NewTokenIssuer([]byte("secret"), time.Hour)
	valid, err := tokens.GenerateToken("u1")
	require.NoError(t, err)
	broken := userFinderFunc(func(context.Context, string) (*model.User, error) {
		return nil, errors.New("connection reset")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+valid)
	rec := httptest.NewRecorder()
	protected(t, tokens, broken).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
