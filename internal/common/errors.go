package common

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	PgCodeUniqueViolation     = "23505"
	PgCodeForeignKeyViolation = "23503"
)

var (
	ErrBadRequest            = errors.New("bad request")
	ErrMissingFields         = errors.New("fields are missing")
	ErrInvalidTestCaseFormat = errors.New("test case format is invalid")
	ErrEmptyUpdate           = errors.New("at least one field required")
	ErrNotFound              = errors.New("requested resource not found")
	ErrConflict              = errors.New("resource conflict") // e.g., username already exists
	ErrUnauthorized          = errors.New("unauthorized access")
	ErrRateLimited           = errors.New("judge request limit exceeded")
	ErrInternalServer        = errors.New("internal server error")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidTestCaseFormat),
		errors.Is(err, ErrEmptyUpdate):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PgCodeUniqueViolation {
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

// PublicMessage is the text sent to clients for err. Internal failures are not exposed.
func PublicMessage(err error) string {
	if HTTPStatusFromError(err) == http.StatusInternalServerError {
		return "Internal Server Error"
	}
	return err.Error()
}
