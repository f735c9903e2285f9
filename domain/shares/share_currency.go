package sharesdomain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// GammSharePrefix is the prefix of all GAMM pool share denoms.
	GammSharePrefix = "gamm"

	// ShareCoinExponent is the exponent of the pool share coin.
	// All GAMM shares are minted with 18 decimal places.
	ShareCoinExponent = 18

	shareDenomPrefix   = GammSharePrefix + "/pool/"
	shareDisplayPrefix = "GAMM/"
)

// ShareCurrency describes the synthetic coin that represents
// fractional ownership of one GAMM pool. It is a pure function
// of the pool ID and is never persisted.
type ShareCurrency struct {
	PoolID           uint64 `json:"pool_id"`
	CoinMinimalDenom string `json:"coin_minimal_denom"`
	CoinDenom        string `json:"coin_denom"`
	CoinExponent     int    `json:"coin_exponent"`
}

// NewShareCurrency returns the share currency of the pool with the given ID.
func NewShareCurrency(poolID uint64) ShareCurrency {
	return ShareCurrency{
		PoolID:           poolID,
		CoinMinimalDenom: FormatShareDenom(poolID),
		CoinDenom:        shareDisplayPrefix + strconv.FormatUint(poolID, 10),
		CoinExponent:     ShareCoinExponent,
	}
}

// FormatShareDenom returns the minimal denom of the share coin of the pool
// with the given ID, e.g. "gamm/pool/3".
func FormatShareDenom(poolID uint64) string {
	return fmt.Sprintf("%s%d", shareDenomPrefix, poolID)
}

// ParseShareDenom extracts the pool ID from a share denom.
// Returns false if the denom is not a valid share denom.
func ParseShareDenom(denom string) (uint64, bool) {
	suffix, found := strings.CutPrefix(denom, shareDenomPrefix)
	if !found {
		return 0, false
	}

	poolID, err := strconv.ParseUint(suffix, 10, 64)
	if err != nil {
		return 0, false
	}

	return poolID, true
}
