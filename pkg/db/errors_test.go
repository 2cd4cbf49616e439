package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolationNil(t *testing.T) {
	if IsUniqueViolation(nil, "") {
		t.Fatal("nil error should not be a unique violation")
	}
}

func TestIsUniqueViolationPgx(t *testing.T) {
	err := fmt.Errorf("create lead: %w", &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "leads_user_id_email_key",
	})

	if !IsUniqueViolation(err, "") {
		t.Fatal("expected pgx unique violation to match without constraint")
	}
	if !IsUniqueViolation(err, "leads_user_id_email_key") {
		t.Fatal("expected pgx unique violation to match named constraint")
	}
	if IsUniqueViolation(err, "users_email_key") {
		t.Fatal("did not expect a different constraint to match")
	}
}

func TestIsUniqueViolationPgxOtherCode(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", ConstraintName: "leads_user_id_fkey"}
	if IsUniqueViolation(err, "") {
		t.Fatal("foreign key violation should not match")
	}
}

func TestIsUniqueViolationSQLiteMessage(t *testing.T) {
	err := errors.New("UNIQUE constraint failed: leads.user_id, leads.email")
	if !IsUniqueViolation(err, "") {
		t.Fatal("expected sqlite unique violation to match")
	}
	if !IsUniqueViolation(err, "leads.email") {
		t.Fatal("expected sqlite unique violation to match substring constraint")
	}
}

func TestIsUniqueViolationSQLiteConstraintName(t *testing.T) {
	// services pass the postgres constraint name; sqlite only knows columns
	leadErr := errors.New("UNIQUE constraint failed: leads.user_id, leads.email")
	if !IsUniqueViolation(leadErr, "leads_user_id_email_key") {
		t.Fatal("expected lead constraint name to match sqlite column form")
	}

	userErr := errors.New("UNIQUE constraint failed: users.email")
	if !IsUniqueViolation(userErr, "users_email_key") {
		t.Fatal("expected user constraint name to match sqlite column form")
	}

	if IsUniqueViolation(userErr, "leads_user_id_email_key") {
		t.Fatal("did not expect a different constraint to match")
	}
}

func TestIsUniqueViolationUnrelated(t *testing.T) {
	if IsUniqueViolation(errors.New("connection refused"), "") {
		t.Fatal("unrelated error should not match")
	}
}
