package mvc

import (
	"context"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/osmosis-labs/osmosis/osmomath"

	sharesdomain "github.com/osmosis-labs/psq/domain/shares"
)

// SharesUsecase represents the share module's use cases.
//
// All operations are side-effect free derivations over the account snapshot
// and pool registry current at call time. Absence of data is a value, not an
// error: a missing coin record yields a zero amount and an unknown pool yields
// the not-ready sentinel. Errors are returned only for data source failures.
type SharesUsecase interface {
	// GetUserPools returns the IDs of all pools the address owns shares of,
	// either liquid in the bank balance or locked. Deduplicated and sorted
	// in ascending numeric order.
	GetUserPools(ctx context.Context, address string) ([]uint64, error)

	// GetShareCurrency returns the share currency of the given pool.
	GetShareCurrency(poolID uint64) sharesdomain.ShareCurrency

	// GetLockedShare returns the amount of the pool's share coin in the
	// address's locked coins. Locked includes unlocking.
	GetLockedShare(ctx context.Context, address string, poolID uint64) (sdk.Coin, error)

	// GetLockedShareRatio returns lockedShare / pool total share.
	GetLockedShareRatio(ctx context.Context, address string, poolID uint64) (sharesdomain.Ratio, error)

	// GetLockedShareValue prices the locked share against the given pool
	// liquidity capitalization expressed in the quote currency.
	GetLockedShareValue(ctx context.Context, address string, poolID uint64, poolLiquidityCap osmomath.Dec) (sharesdomain.FiatValue, error)

	// GetUnlockingShare returns the amount of the pool's share coin that is
	// in the process of unlocking. Always a subset of the locked share.
	GetUnlockingShare(ctx context.Context, address string, poolID uint64) (sdk.Coin, error)

	// GetAvailableShare returns the amount of the pool's share coin held
	// liquid in the bank balance.
	GetAvailableShare(ctx context.Context, address string, poolID uint64) (sdk.Coin, error)

	// GetAvailableShareRatio returns availableShare / pool total share.
	GetAvailableShareRatio(ctx context.Context, address string, poolID uint64) (sharesdomain.Ratio, error)

	// GetTotalShare returns availableShare + lockedShare. Unlocking coins
	// are already counted inside locked and are never double-added.
	GetTotalShare(ctx context.Context, address string, poolID uint64) (sdk.Coin, error)

	// GetTotalShareRatio returns totalShare / pool total share.
	GetTotalShareRatio(ctx context.Context, address string, poolID uint64) (sharesdomain.Ratio, error)

	// GetShareAssets breaks the owned share down into the underlying pool
	// assets. Empty when the pool is unknown.
	GetShareAssets(ctx context.Context, address string, poolID uint64) ([]sharesdomain.ShareAsset, error)

	// GetLockedSharesByDuration returns, per requested duration, the locked
	// share amount and the IDs of the lock records of exactly that duration.
	GetLockedSharesByDuration(ctx context.Context, address string, poolID uint64, durations []time.Duration) ([]sharesdomain.DurationLock, error)
}
