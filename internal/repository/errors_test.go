package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pq.Error{Code: "23505", Constraint: "users_email_key"}

	if !isUniqueViolation(uniqueErr) {
		t.Error("bare 23505 not recognized")
	}
	if !isUniqueViolation(fmt.Errorf("create user: %w", uniqueErr)) {
		t.Error("wrapped 23505 not recognized")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Error("foreign key violation reported as unique violation")
	}
	if isUniqueViolation(errors.New("boom")) {
		t.Error("plain error reported as unique violation")
	}
	if isUniqueViolation(nil) {
		t.Error("nil reported as unique violation")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	fkErr := &pq.Error{Code: "23503", Constraint: "students_classroom_id_fkey"}

	if !isForeignKeyViolation(fkErr) {
		t.Error("bare 23503 not recognized")
	}
	if !isForeignKeyViolation(fmt.Errorf("create student: %w", fkErr)) {
		t.Error("wrapped 23503 not recognized")
	}
	if isForeignKeyViolation(&pq.Error{Code: "23505"}) {
		t.Error("unique violation reported as foreign key violation")
	}
}
