package common

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{fmt.Errorf("problem x: %w", ErrNotFound), http.StatusNotFound},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrBadRequest, http.StatusBadRequest},
		{fmt.Errorf("title is required: %w", ErrMissingFields), http.StatusBadRequest},
		{ErrInvalidTestCaseFormat, http.StatusBadRequest},
		{ErrEmptyUpdate, http.StatusBadRequest},
		{ErrConflict, http.StatusConflict},
		{ErrRateLimited, http.StatusTooManyRequests},
		{fmt.Errorf("insert: %w", &pgconn.PgError{Code: PgCodeUniqueViolation}), http.StatusConflict},
		{ErrInternalServer, http.StatusInternalServerError},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatusFromError(tt.err), "%v", tt.err)
	}
}

func TestPublicMessageHidesInternalErrors(t *testing.T) {
	assert.Equal(t, "Internal Server Error", PublicMessage(fmt.Errorf("dial tcp 10.0.0.1: refused")))
	assert.Equal(t, "at least one field required", PublicMessage(ErrEmptyUpdate))
}

func TestRespondWithDomainError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithDomainError(rec, fmt.Errorf("username already exists: %w", ErrConflict))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"username already exists: resource conflict"}`, rec.Body.String())
}
