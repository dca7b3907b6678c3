package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(fmt.Errorf("create station: %w", gorm.ErrDuplicatedKey)) {
		t.Fatalf("expected wrapped ErrDuplicatedKey to match")
	}
	if !IsUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("expected pg 23505 to match")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("foreign key violation should not match")
	}
	if IsUniqueViolation(errors.New("timeout")) || IsUniqueViolation(nil) {
		t.Fatalf("unexpected match")
	}
}
