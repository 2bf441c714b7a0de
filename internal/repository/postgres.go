package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgExclusionViolation  = "23P01"
	pgInvalidTextRepr     = "22P02"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

func pgCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

type scanner interface {
	Scan(dest ...any) error
}

// validID reports whether id can be a primary key. Anything else cannot
// match a row, so callers answer "not found" without a round trip.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// isNoRows also covers ids postgres refuses to cast to uuid.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || pgCode(err) == pgInvalidTextRepr
}
