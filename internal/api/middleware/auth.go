package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/chandraguptgosavi/codemore-backend/internal/common"
	"github.com/chandraguptgosavi/codemore-backend/internal/common/security"
	"github.com/chandraguptgosavi/codemore-backend/internal/domain/model"

	"github.com/go-chi/jwtauth/v5"
	log "github.com/sirupsen/logrus"
)

type contextKey string

const UserIDCtxKey contextKey = "userID"

// UserFinder loads the user a token was issued to.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// Authenticator requires a valid bearer token (verified earlier by jwtauth.Verifier)
// whose user still exists, and stores the user id in the request context.
func Authenticator(users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				if errors.Is(err, jwtauth.ErrNoTokenFound) {
					common.RespondWithError(w, http.StatusUnauthorized, "Token missing!")
				} else {
					common.RespondWithError(w, http.StatusUnauthorized, "Not Authorized")
				}
				return
			}
			if token == nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Token missing!")
				return
			}

			userID, err := security.GetUserIDFromClaims(claims)
			if err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Not Authorized")
				return
			}

			if _, err := users.FindByID(r.Context(), userID); err != nil {
				if !errors.Is(err, common.ErrNotFound) {
					log.WithField("user", userID).Errorf("failed to load authenticated user: %v", err)
					common.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
					return
				}
				common.RespondWithError(w, http.StatusUnauthorized, "Not Authorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDCtxKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext returns the id stored by Authenticator.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}
