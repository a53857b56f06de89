package repository

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsSerializationFailure(t *testing.T) {
	serialization := &pgconn.PgError{Code: "40001"}
	if !isSerializationFailure(serialization) {
		t.Error("40001 must be treated as a serialization failure")
	}
	if !isSerializationFailure(fmt.Errorf("tx failed: %w", serialization)) {
		t.Error("wrapped 40001 must still be recognized")
	}
	if isSerializationFailure(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation is not a serialization failure")
	}
	if isSerializationFailure(nil) {
		t.Error("nil is not a serialization failure")
	}
}
