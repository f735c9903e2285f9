package repository

import (
	"context"
	"sync"
	"time"

	"github.com/osmosis-labs/psq/domain"
	sharesdomain "github.com/osmosis-labs/psq/domain/shares"
)

// AccountSnapshotRepository serves consistent per-address snapshots of
// balances, locked coins and unlocking coins.
type AccountSnapshotRepository interface {
	// GetAccountSnapshot returns the current snapshot for the address,
	// refreshing it from the chain if the cached one has expired.
	GetAccountSnapshot(ctx context.Context, address string) (sharesdomain.AccountSnapshot, error)
}

type snapshotEntry struct {
	snapshot  sharesdomain.AccountSnapshot
	fetchedAt time.Time
}

type accountSnapshotRepository struct {
	shareClient sharesdomain.ShareGRPCClient
	ttl         time.Duration

	mutex     sync.RWMutex
	snapshots map[string]snapshotEntry
	version   uint64

	// Injectable for tests.
	nowFn func() time.Time
}

var _ AccountSnapshotRepository = &accountSnapshotRepository{}

// NewAccountSnapshotRepository creates an account snapshot repository that
// refreshes snapshots through the given client once they are older than ttl.
func NewAccountSnapshotRepository(shareClient sharesdomain.ShareGRPCClient, ttl time.Duration) AccountSnapshotRepository {
	return &accountSnapshotRepository{
		shareClient: shareClient,
		ttl:         ttl,
		snapshots:   make(map[string]snapshotEntry),
		nowFn:       time.Now,
	}
}

// GetAccountSnapshot implements AccountSnapshotRepository.
func (r *accountSnapshotRepository) GetAccountSnapshot(ctx context.Context, address string) (sharesdomain.AccountSnapshot, error) {
	r.mutex.RLock()
	entry, found := r.snapshots[address]
	r.mutex.RUnlock()

	if found && r.nowFn().Sub(entry.fetchedAt) < r.ttl {
		return entry.snapshot, nil
	}

	return r.refresh(ctx, address)
}

func (r *accountSnapshotRepository) refresh(ctx context.Context, address string) (sharesdomain.AccountSnapshot, error) {
	balances, err := r.shareClient.AllBalances(ctx, address)
	if err != nil {
		domain.PSQSnapshotFetchErrorCounter.Inc()
		return sharesdomain.AccountSnapshot{}, err
	}

	lockedCoins, err := r.shareClient.AccountLockedCoins(ctx, address)
	if err != nil {
		domain.PSQSnapshotFetchErrorCounter.Inc()
		return sharesdomain.AccountSnapshot{}, err
	}

	unlockingCoins, err := r.shareClient.AccountUnlockingCoins(ctx, address)
	if err != nil {
		domain.PSQSnapshotFetchErrorCounter.Inc()
		return sharesdomain.AccountSnapshot{}, err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	// Another caller may have refreshed while we were fetching.
	// The later write wins; versions stay monotonic either way.
	r.version++

	snapshot := sharesdomain.AccountSnapshot{
		Address:        address,
		Balances:       balances,
		LockedCoins:    lockedCoins,
		UnlockingCoins: unlockingCoins,
		Version:        r.version,
	}

	r.snapshots[address] = snapshotEntry{
		snapshot:  snapshot,
		fetchedAt: r.nowFn(),
	}

	return snapshot, nil
}
