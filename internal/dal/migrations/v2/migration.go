package v2

import (
	"fmt"

	"go.etcd.io/bbolt"
)

// MigrationV2 creates the broadcast history bucket.
type MigrationV2 struct{}

func New() *MigrationV2 {
	return &MigrationV2{}
}

func (m *MigrationV2) Version() int {
	return 2 //nolint:mnd // version 2
}

func (m *MigrationV2) Description() string {
	return "Create broadcasts bucket"
}

func (m *MigrationV2) Up(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error { //nolint:wrapcheck // it's ok
		if _, err := tx.CreateBucketIfNotExists([]byte("broadcasts")); err != nil {
			return fmt.Errorf("create broadcasts bucket: %w", err)
		}
		return nil
	})
}
