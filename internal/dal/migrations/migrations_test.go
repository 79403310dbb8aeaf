package migrations

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func openDB(t *testing.T) *bbolt.DB {
	t.Helper()

	db, err := bbolt.Open(filepath.Join(t.TempDir(), "test.db"), 0600, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestRunMigrations_EmptyDatabase(t *testing.T) {
	db := openDB(t)

	require.NoError(t, RunMigrations(db, slog.New(slog.DiscardHandler)))

	err := db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(migrationsBucket))
		require.NotNil(t, b, "migrations bucket not created")

		for _, m := range registeredMigrations {
			record := b.Get(fmt.Appendf(nil, "v%d", m.Version()))
			if assert.NotNilf(t, record, "migration %d not recorded", m.Version()) {
				_, err := time.Parse(time.RFC3339, string(record))
				assert.NoError(t, err)
			}
		}

		assert.NotNil(t, tx.Bucket([]byte("broadcasts")), "broadcasts bucket not created")
		return nil
	})
	require.NoError(t, err)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openDB(t)
	log := slog.New(slog.DiscardHandler)

	require.NoError(t, RunMigrations(db, log))
	applied, err := getAppliedMigrations(db)
	require.NoError(t, err)

	require.NoError(t, RunMigrations(db, log))
	again, err := getAppliedMigrations(db)
	require.NoError(t, err)

	assert.Len(t, again, len(registeredMigrations))
	assert.Equal(t, applied, again, "second run must not re-apply migrations")
}

func TestGetAppliedMigrations_InvalidKey(t *testing.T) {
	db := openDB(t)
	require.NoError(t, ensureMigrationsBucket(db))
	require.NoError(t, db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(migrationsBucket)).Put([]byte("bogus"), []byte(time.Now().Format(time.RFC3339)))
	}))

	_, err := getAppliedMigrations(db)
	assert.ErrorContains(t, err, "parse version from key bogus")
}
