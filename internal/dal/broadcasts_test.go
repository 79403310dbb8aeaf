package dal

import (
	"time"
)

func (s *BoltDBTestSuite) TestBoltDB_LastBroadcast_Empty() {
	_, ok, err := s.store.LastBroadcast()
	s.Require().NoError(err)
	s.False(ok)
}

func (s *BoltDBTestSuite) TestBoltDB_PutBroadcast() {
	startedAt := s.now.Add(-time.Minute)

	first, err := s.store.PutBroadcast(Broadcast{StartedAt: startedAt, FinishedAt: s.now, Successful: 2, Failed: 1, Active: 2})
	s.Require().NoError(err)
	s.Equal(uint64(1), first.ID)
	s.Equal(s.now, first.FinishedAt)

	finishedAt := s.now.Add(time.Hour)
	second, err := s.store.PutBroadcast(Broadcast{StartedAt: startedAt, FinishedAt: finishedAt, Active: 5})
	s.Require().NoError(err)
	s.Equal(uint64(2), second.ID)
	s.Equal(finishedAt, second.FinishedAt)

	last, ok, err := s.store.LastBroadcast()
	s.Require().NoError(err)
	if s.True(ok) {
		s.Equal(second.ID, last.ID)
		s.Equal(5, last.Active)
		s.True(finishedAt.Equal(last.FinishedAt))
		s.True(startedAt.Equal(last.StartedAt))
	}
}

func (s *BoltDBTestSuite) TestBoltDB_LastBroadcast_OrderBeyondTen() {
	// keys are big-endian so cursor order matches insertion order past single digits
	for i := range 12 {
		_, err := s.store.PutBroadcast(Broadcast{StartedAt: s.now, FinishedAt: s.now, Successful: i})
		s.Require().NoError(err)
	}

	last, ok, err := s.store.LastBroadcast()
	s.Require().NoError(err)
	if s.True(ok) {
		s.Equal(uint64(12), last.ID)
		s.Equal(11, last.Successful)
	}
}
