package dal

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/watch-now-bot/internal/dal/migrations"
)

type BoltDBTestSuite struct {
	suite.Suite
	db    *bbolt.DB
	store *BoltDB
	now   time.Time
}

// SetupSuite runs ONCE before all tests in the suite
func (s *BoltDBTestSuite) SetupSuite() {
	db, err := bbolt.Open(filepath.Join(s.T().TempDir(), "test.db"), 0600, nil)
	s.Require().NoError(err)

	s.Require().NoError(migrations.RunMigrations(db, slog.New(slog.DiscardHandler)))

	s.db = db
	s.store, err = NewBoltDB(db)
	s.Require().NoError(err)
}

func (s *BoltDBTestSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
}

// SetupTest runs before EACH test
func (s *BoltDBTestSuite) SetupTest() {
	s.now = time.Date(2025, time.November, 11, 18, 19, 20, 0, time.UTC)
}

// TearDownTest drops bucket data but keeps the database
func (s *BoltDBTestSuite) TearDownTest() {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(broadcastsBucket)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(broadcastsBucket))
		return err
	})
	s.Require().NoError(err)
}

func TestBoltDBTestSuite(t *testing.T) {
	suite.Run(t, new(BoltDBTestSuite))
}

func TestNewBoltDB_NoMigrations(t *testing.T) {
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "test.db"), 0600, nil)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if _, err := NewBoltDB(db); err == nil {
		t.Fatal("expected error for database without broadcasts bucket")
	}
}
