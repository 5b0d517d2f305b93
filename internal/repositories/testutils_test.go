package repositories_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/carewell/eldercare/internal/db"
	"github.com/carewell/eldercare/internal/testhelpers"
)

// newTestDB creates a fresh in-memory database seeded with the demo data.
func newTestDB(t *testing.T) (*db.Database, *slog.Logger) {
	t.Helper()
	logger := testhelpers.NewLogger(io.Discard)
	dbs, err := db.NewDatabase(context.Background(), ":memory:", logger)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := dbs.Close(); err != nil {
			t.Fatal(err)
		}
	})
	return dbs, logger
}
