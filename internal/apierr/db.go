package apierr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// FromDB maps state-store failures to stable DB_* codes so clients can
// tell a constraint violation from a broken deployment.
func FromDB(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return New(http.StatusNotFound, "DB_NOT_FOUND", err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return New(http.StatusConflict, "DB_UNIQUE", err)
		case "23503":
			return New(http.StatusBadRequest, "DB_FOREIGN_KEY", err)
		case "23514":
			return New(http.StatusBadRequest, "DB_CONSTRAINT", err)
		case "42P01":
			return New(http.StatusInternalServerError, "DB_TABLE_MISSING", err)
		case "42703":
			return New(http.StatusInternalServerError, "DB_COLUMN_MISSING", err)
		case "42501":
			return New(http.StatusInternalServerError, "DB_INSUFFICIENT_PRIVILEGE", err)
		}
	}
	return New(http.StatusInternalServerError, "DB_ERROR", err)
}
