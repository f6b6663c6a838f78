// Package postgres implements the user, token and link repositories on top of sqlx.
// Uniqueness of emails, token hashes and short tokens is enforced by table constraints
// and reported through the sentinel errors of the entity package.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationErrCode = "23505"

func isUniqueViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.SQLState() == uniqueViolationErrCode
}
