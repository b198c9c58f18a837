package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	dupErr := &pq.Error{Code: uniqueViolation, Constraint: "clientes_email_key"}

	if !isUniqueViolation(dupErr) {
		t.Errorf("expected unique violation for code 23505")
	}
	if !isUniqueViolation(fmt.Errorf("insert cliente: %w", dupErr)) {
		t.Errorf("expected unique violation through wrapping")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Errorf("foreign key violation must not map to duplicate email")
	}
	if isUniqueViolation(errors.New("pq: duplicate key value")) {
		t.Errorf("plain error must not map to duplicate email")
	}
	if isUniqueViolation(nil) {
		t.Errorf("nil error must not map to duplicate email")
	}
}
