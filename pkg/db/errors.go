package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const pgUniqueViolationCode = "23505"

// sqlite reports unique violations by column list, not constraint name
// ("UNIQUE constraint failed: leads.user_id, leads.email"). Known constraints
// from the schema map to that form so the same check works under the sqlite
// test driver.
var sqliteConstraintColumns = map[string]string{
	"users_email_key":         "users.email",
	"leads_user_id_email_key": "leads.user_id, leads.email",
}

// IsUniqueViolation reports whether the provided error is a unique-constraint
// violation. When constraintName is given the constraint must match; Postgres
// errors are inspected structurally, everything else (sqlite in tests) falls
// back to message matching.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		if pgxErr.Code != pgUniqueViolationCode {
			return false
		}
		return constraintName == "" || pgxErr.ConstraintName == constraintName
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if string(pqErr.Code) != pgUniqueViolationCode {
			return false
		}
		return constraintName == "" || pqErr.Constraint == constraintName
	}

	msg := err.Error()
	if strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed") {
		if constraintName == "" || strings.Contains(msg, constraintName) {
			return true
		}
		columns, ok := sqliteConstraintColumns[constraintName]
		return ok && strings.Contains(msg, columns)
	}
	return false
}
