package migrations

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.etcd.io/bbolt"

	v1 "github.com/Roma7-7-7/watch-now-bot/internal/dal/migrations/v1"
	v2 "github.com/Roma7-7-7/watch-now-bot/internal/dal/migrations/v2"
)

// Migration is a single versioned change of the bolt database layout.
type Migration interface {
	Version() int
	Description() string
	Up(db *bbolt.DB) error
}

const migrationsBucket = "migrations"

var registeredMigrations = []Migration{
	v1.New(),
	v2.New(),
}

// RunMigrations applies every registered migration that is not yet recorded
// in the migrations bucket, in version order.
func RunMigrations(db *bbolt.DB, log *slog.Logger) error {
	log = log.With("component", "migrations")

	if err := ensureMigrationsBucket(db); err != nil {
		return fmt.Errorf("ensure migrations bucket: %w", err)
	}

	applied, err := getAppliedMigrations(db)
	if err != nil {
		return fmt.Errorf("get applied migrations: %w", err)
	}

	pending := slices.Clone(registeredMigrations)
	slices.SortFunc(pending, func(a, b Migration) int {
		return a.Version() - b.Version()
	})

	appliedCount := 0
	for _, migration := range pending {
		version := migration.Version()
		if appliedAt, ok := applied[version]; ok {
			log.Debug("Skipping already-applied migration",
				"version", version,
				"applied_at", appliedAt.Format(time.RFC3339))
			continue
		}

		log.Info("Applying migration",
			"version", version,
			"description", migration.Description())

		start := time.Now()
		if err := migration.Up(db); err != nil {
			return fmt.Errorf("migration v%d: %w", version, err)
		}
		if err := recordMigration(db, version, time.Now()); err != nil {
			return fmt.Errorf("record migration v%d: %w", version, err)
		}

		appliedCount++
		log.Info("Migration applied", "version", version, "duration", time.Since(start))
	}

	if appliedCount > 0 {
		log.Info("Migrations completed", "applied_count", appliedCount)
	}
	return nil
}

func ensureMigrationsBucket(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error { //nolint:wrapcheck // it's ok
		_, err := tx.CreateBucketIfNotExists([]byte(migrationsBucket))
		return err
	})
}

func getAppliedMigrations(db *bbolt.DB) (map[int]time.Time, error) {
	applied := make(map[int]time.Time)

	err := db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(migrationsBucket)).ForEach(func(k, v []byte) error {
			var version int
			if _, err := fmt.Sscanf(string(k), "v%d", &version); err != nil {
				return fmt.Errorf("parse version from key %s: %w", k, err)
			}

			appliedAt, err := time.Parse(time.RFC3339, string(v))
			if err != nil {
				return fmt.Errorf("parse timestamp for v%d: %w", version, err)
			}

			applied[version] = appliedAt
			return nil
		})
	})

	return applied, err
}

func recordMigration(db *bbolt.DB, version int, at time.Time) error {
	return db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(migrationsBucket))
		if b == nil {
			return errors.New("migrations bucket not found")
		}
		return b.Put(fmt.Appendf(nil, "v%d", version), []byte(at.Format(time.RFC3339)))
	})
}
