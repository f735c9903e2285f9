package mocks

import (
	"context"
	"time"

	"github.com/cosmos/cosmos-sdk/types"
	lockup "github.com/osmosis-labs/osmosis/v25/x/lockup/types"

	sharesdomain "github.com/osmosis-labs/psq/domain/shares"
)

type ShareGRPCClientMock struct {
	MockAllBalancesCb           func(ctx context.Context, address string) (types.Coins, error)
	MockAccountLockedCoinsCb    func(ctx context.Context, address string) (types.Coins, error)
	MockAccountUnlockingCoinsCb func(ctx context.Context, address string) (types.Coins, error)
	MockAccountLockedDurationCb func(ctx context.Context, address string, duration time.Duration) ([]lockup.PeriodLock, error)
}

// AllBalances implements sharesdomain.ShareGRPCClient.
func (m *ShareGRPCClientMock) AllBalances(ctx context.Context, address string) (types.Coins, error) {
	if m.MockAllBalancesCb != nil {
		return m.MockAllBalancesCb(ctx, address)
	}

	panic("unimplemented")
}

// AccountLockedCoins implements sharesdomain.ShareGRPCClient.
func (m *ShareGRPCClientMock) AccountLockedCoins(ctx context.Context, address string) (types.Coins, error) {
	if m.MockAccountLockedCoinsCb != nil {
		return m.MockAccountLockedCoinsCb(ctx, address)
	}

	panic("unimplemented")
}

// AccountUnlockingCoins implements sharesdomain.ShareGRPCClient.
func (m *ShareGRPCClientMock) AccountUnlockingCoins(ctx context.Context, address string) (types.Coins, error) {
	if m.MockAccountUnlockingCoinsCb != nil {
		return m.MockAccountUnlockingCoinsCb(ctx, address)
	}

	panic("unimplemented")
}

// AccountLockedDuration implements sharesdomain.ShareGRPCClient.
func (m *ShareGRPCClientMock) AccountLockedDuration(ctx context.Context, address string, duration time.Duration) ([]lockup.PeriodLock, error) {
	if m.MockAccountLockedDurationCb != nil {
		return m.MockAccountLockedDurationCb(ctx, address, duration)
	}

	panic("unimplemented")
}

var _ sharesdomain.ShareGRPCClient = &ShareGRPCClientMock{}
