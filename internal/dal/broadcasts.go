package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const broadcastsBucket = "broadcasts"

// Broadcast is the outcome of a single broadcast run.
type Broadcast struct {
	ID         uint64    `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Successful int       `json:"successful"`
	Failed     int       `json:"failed"`
	Active     int       `json:"active"`
}

// PutBroadcast assigns the next sequence ID and returns the stored record.
func (s *BoltDB) PutBroadcast(b Broadcast) (Broadcast, error) {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(broadcastsBucket))

		id, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		b.ID = id

		data, err := json.Marshal(&b)
		if err != nil {
			return fmt.Errorf("marshal broadcast id=%d: %w", id, err)
		}
		if err := bucket.Put(u64tob(id), data); err != nil {
			return fmt.Errorf("put broadcast id=%d: %w", id, err)
		}
		return nil
	})

	return b, err
}

func (s *BoltDB) LastBroadcast() (Broadcast, bool, error) {
	var res Broadcast
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		_, v := tx.Bucket([]byte(broadcastsBucket)).Cursor().Last()
		if v == nil {
			return nil
		}
		found = true
		return json.Unmarshal(v, &res)
	})

	return res, found, err
}
