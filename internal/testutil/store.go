package testutil

import (
	"testing"

	"github.com/wahek/task-list/internal/store/sqlstore"
)

// NewTestStore creates an in-memory SQLite store with all migrations applied
// and closes it when the test completes.
func NewTestStore(t *testing.T) *sqlstore.Store {
	t.Helper()

	s, err := sqlstore.Open(sqlstore.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}
