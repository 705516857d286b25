package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// SQLSTATE codes with a domain meaning.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"23514": domain.ErrValidation,    // check_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
}

// MapError prefixes err with "<entity> <id>" and translates pgx errors into
// domain sentinels. Context errors and unknown database errors are kept as is.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	mapped := err
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
	case errors.Is(err, pgx.ErrNoRows):
		mapped = domain.ErrNotFound
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if sentinel, ok := pgCodeErrors[pgErr.Code]; ok {
				mapped = sentinel
			}
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, mapped)
}
