package txarchive

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/gabapcia/walletcore/internal/wallet"
)

// ErrNoSyncRecorded is returned by LastSyncTime before any successful sync.
var ErrNoSyncRecorded = errors.New("no sync recorded")

// Record is one archived transaction state.
type Record struct {
	Tx         wallet.Tx `json:"tx"`
	Event      string    `json:"event"`
	ArchivedAt time.Time `json:"archived_at"`
}

// Store persists archived transactions and the last successful sync time.
// A record replaces any earlier record with the same transaction id.
type Store interface {
	SaveTx(ctx context.Context, rec Record) error
	ListTxs(ctx context.Context, limit int) ([]Record, error)
	SaveLastSyncTime(ctx context.Context, t time.Time) error
	LastSyncTime(ctx context.Context) (time.Time, error)
}

// memoryStore keeps everything in process. It backs walletd when no Redis
// address is configured.
type memoryStore struct {
	mu       sync.RWMutex
	txs      map[wallet.ID]Record
	lastSync time.Time
}

var _ Store = (*memoryStore)(nil)

func NewMemoryStore() *memoryStore {
	return &memoryStore{txs: make(map[wallet.ID]Record)}
}

func (s *memoryStore) SaveTx(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txs[rec.Tx.ID] = rec
	return nil
}

// ListTxs returns up to limit records, newest transaction first. A limit of
// zero or less returns everything.
func (s *memoryStore) ListTxs(_ context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	recs := make([]Record, 0, len(s.txs))
	for _, rec := range s.txs {
		recs = append(recs, rec)
	}
	s.mu.RUnlock()

	slices.SortFunc(recs, func(a, b Record) int {
		return b.Tx.Timestamp.Compare(a.Tx.Timestamp)
	})

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

func (s *memoryStore) SaveLastSyncTime(_ context.Context, t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSync = t
	return nil
}

func (s *memoryStore) LastSyncTime(_ context.Context) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastSync.IsZero() {
		return time.Time{}, ErrNoSyncRecorded
	}
	return s.lastSync, nil
}
