package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassificator translates driver errors into the sentinel errors of
// this package.
type ErrorClassificator interface {
	Classify(err error) error
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
// Mapping:
//   - nil → nil
//   - [sql.ErrNoRows] → [ErrNoUserWasFound]
//   - 23505 unique_violation → [ErrEmailAlreadyExists]
//   - 23503 foreign_key_violation → [ErrNoUserWasFound]
//   - Class 08 and 57P03 → [ErrDatabaseUnavailable]
//   - anything else → wrapped as "unexpected DB error"
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoUserWasFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrEmailAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return ErrNoUserWasFound
		case pgerrcode.ConnectionException,
			pgerrcode.ConnectionDoesNotExist,
			pgerrcode.ConnectionFailure,
			pgerrcode.CannotConnectNow:
			return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
		}
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}
