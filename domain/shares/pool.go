package sharesdomain

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/osmosis-labs/osmosis/osmomath"
)

// PoolAsset is one weighted asset of a balancer pool.
type PoolAsset struct {
	Token  sdk.Coin     `json:"token"`
	Weight osmomath.Int `json:"weight"`
}

// Pool is the registry projection of a chain balancer pool.
// It carries only the fields needed for share position derivations
// and is read-only to the share module.
type Pool struct {
	ID          uint64       `json:"id"`
	TotalShare  osmomath.Int `json:"total_share"`
	TotalWeight osmomath.Int `json:"total_weight"`
	Assets      []PoolAsset  `json:"assets"`
}
