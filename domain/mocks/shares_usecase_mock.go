package mocks

import (
	"context"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/psq/domain/mvc"
	sharesdomain "github.com/osmosis-labs/psq/domain/shares"
)

type SharesUsecaseMock struct {
	GetUserPoolsFunc              func(ctx context.Context, address string) ([]uint64, error)
	GetShareCurrencyFunc          func(poolID uint64) sharesdomain.ShareCurrency
	GetLockedShareFunc            func(ctx context.Context, address string, poolID uint64) (sdk.Coin, error)
	GetLockedShareRatioFunc       func(ctx context.Context, address string, poolID uint64) (sharesdomain.Ratio, error)
	GetLockedShareValueFunc       func(ctx context.Context, address string, poolID uint64, poolLiquidityCap osmomath.Dec) (sharesdomain.FiatValue, error)
	GetUnlockingShareFunc         func(ctx context.Context, address string, poolID uint64) (sdk.Coin, error)
	GetAvailableShareFunc         func(ctx context.Context, address string, poolID uint64) (sdk.Coin, error)
	GetAvailableShareRatioFunc    func(ctx context.Context, address string, poolID uint64) (sharesdomain.Ratio, error)
	GetTotalShareFunc             func(ctx context.Context, address string, poolID uint64) (sdk.Coin, error)
	GetTotalShareRatioFunc        func(ctx context.Context, address string, poolID uint64) (sharesdomain.Ratio, error)
	GetShareAssetsFunc            func(ctx context.Context, address string, poolID uint64) ([]sharesdomain.ShareAsset, error)
	GetLockedSharesByDurationFunc func(ctx context.Context, address string, poolID uint64, durations []time.Duration) ([]sharesdomain.DurationLock, error)
}

// GetUserPools implements mvc.SharesUsecase.
func (m *SharesUsecaseMock) GetUserPools(ctx context.Context, address string) ([]uint64, error) {
	if m.GetUserPoolsFunc != nil {
		return m.GetUserPoolsFunc(ctx, address)
	}

	panic("unimplemented")
}

// GetShareCurrency implements mvc.SharesUsecase.
func (m *SharesUsecaseMock) GetShareCurrency(poolID uint64) sharesdomain.ShareCurrency {
	if m.GetShareCurrencyFunc != nil {
		return m.GetShareCurrencyFunc(poolID)
	}

	return sharesdomain.NewShareCurrency(poolID)
}

// GetLockedShare implements mvc.SharesUsecase.
func (m *SharesUsecaseMock) GetLockedShare(ctx context.Context, address string, poolID uint64) (sdk.Coin, error) {
	if m.GetLockedShareFunc != nil {
		return m.GetLockedShareFunc(ctx, address, poolID)
	}

	panic("unimplemented")
}

// GetLockedShareRatio implements mvc.SharesUsecase.
func (m *SharesUsecaseMock) GetLockedShareRatio(ctx context.Context, address string, poolID uint64) (sharesdomain.Ratio, error) {
	if m.GetLockedShareRatioFunc != nil {
		return m.GetLockedShareRatioFunc(ctx, address, poolID)
	}

	panic("unimplemented")
}

// GetLockedShareValue implements mvc.SharesUsecase.
func (m *SharesUsecaseMock) GetLockedShareValue(ctx context.Context, address string, poolID uint64, poolLiquidityCap osmomath.Dec) (sharesdomain.FiatValue, error) {
	if m.GetLockedShareValueFunc != nil {
		return m.GetLockedShareValueFunc(ctx, address, poolID, poolLiquidityCap)
	}

	panic("unimplemented")
}

// GetUnlockingShare implements mvc.SharesUsecase.
func (m *SharesUsecaseMock) GetUnlockingShare(ctx context.Context, address string, poolID uint64) (sdk.Coin, error) {
	if m.GetUnlockingShareFunc != nil {
		return m.GetUnlockingShareFunc(ctx, address, poolID)
	}

	panic("unimplemented")
}

// GetAvailableShare implements mvc.SharesUsecase.
func (m *SharesUsecaseMock) GetAvailableShare(ctx context.Context, address string, poolID uint64) (sdk.Coin, error) {
	if m.GetAvailableShareFunc != nil {
		return m.GetAvailableShareFunc(ctx, address, poolID)
	}

	panic("unimplemented")
}

// GetAvailableShareRatio implements mvc.SharesUsecase.
func (m *SharesUsecaseMock) GetAvailableShareRatio(ctx context.Context, address string, poolID uint64) (sharesdomain.Ratio, error) {
	if m.GetAvailableShareRatioFunc != nil {
		return m.GetAvailableShareRatioFunc(ctx, address, poolID)
	}

	panic("unimplemented")
}

// GetTotalShare implements mvc.SharesUsecase.
func (m *SharesUsecaseMock) GetTotalShare(ctx context.Context, address string, poolID uint64) (sdk.Coin, error) {
	if m.GetTotalShareFunc != nil {
		return m.GetTotalShareFunc(ctx, address, poolID)
	}

	panic("unimplemented")
}

// GetTotalShareRatio implements mvc.SharesUsecase.
func (m *SharesUsecaseMock) GetTotalShareRatio(ctx context.Context, address string, poolID uint64) (sharesdomain.Ratio, error) {
	if m.GetTotalShareRatioFunc != nil {
		return m.GetTotalShareRatioFunc(ctx, address, poolID)
	}

	panic("unimplemented")
}

// GetShareAssets implements mvc.SharesUsecase.
func (m *SharesUsecaseMock) GetShareAssets(ctx context.Context, address string, poolID uint64) ([]sharesdomain.ShareAsset, error) {
	if m.GetShareAssetsFunc != nil {
		return m.GetShareAssetsFunc(ctx, address, poolID)
	}

	panic("unimplemented")
}

// GetLockedSharesByDuration implements mvc.SharesUsecase.
func (m *SharesUsecaseMock) GetLockedSharesByDuration(ctx context.Context, address string, poolID uint64, durations []time.Duration) ([]sharesdomain.DurationLock, error) {
	if m.GetLockedSharesByDurationFunc != nil {
		return m.GetLockedSharesByDurationFunc(ctx, address, poolID, durations)
	}

	panic("unimplemented")
}

var _ mvc.SharesUsecase = &SharesUsecaseMock{}
