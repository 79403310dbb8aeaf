package dal

import (
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

type BoltDB struct {
	db *bbolt.DB
}

// NewBoltDB expects the buckets to be created by migrations beforehand.
func NewBoltDB(db *bbolt.DB) (*BoltDB, error) {
	err := db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(broadcastsBucket)) == nil {
			return fmt.Errorf("bucket %q not found", broadcastsBucket)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("check buckets: %w", err)
	}

	return &BoltDB{db: db}, nil
}

func (s *BoltDB) Close() error {
	return s.db.Close() //nolint:wrapcheck // it's ok
}

func u64tob(v uint64) []byte {
	b := make([]byte, 8) //nolint:mnd // uint64 size
	binary.BigEndian.PutUint64(b, v)
	return b
}
