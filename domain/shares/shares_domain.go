package sharesdomain

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/osmosis-labs/osmosis/osmomath"
)

// AccountSnapshot is a consistent view of one account's coins,
// materialized from the chain at a single point in time.
//
// Locked coins include coins that are in the process of unlocking.
// Unlocking coins are therefore a subset of locked coins, never additive.
//
// Version increases monotonically every time the snapshot is refreshed.
// Derivations memoized against one version must not be served for another.
type AccountSnapshot struct {
	Address        string    `json:"address"`
	Balances       sdk.Coins `json:"balances"`
	LockedCoins    sdk.Coins `json:"locked_coins"`
	UnlockingCoins sdk.Coins `json:"unlocking_coins"`
	Version        uint64    `json:"version"`
}

// ShareAsset is the user-owned slice of one underlying pool asset.
// Ratio is the asset's normalized weight within the pool.
type ShareAsset struct {
	Ratio osmomath.Dec `json:"ratio"`
	Asset sdk.Coin     `json:"asset"`
}

// DurationLock aggregates the user's lock records of one exact duration
// for a single share denom.
type DurationLock struct {
	Duration time.Duration `json:"duration"`
	Amount   sdk.Coin      `json:"amount"`
	LockIDs  []uint64      `json:"lock_ids"`
}
