package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/labstack/echo/v4"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/psq/domain"
	"github.com/osmosis-labs/psq/domain/mvc"
	sharesdomain "github.com/osmosis-labs/psq/domain/shares"
	"github.com/osmosis-labs/psq/log"
)

// SharesHandler is the http handler for the share module use case
type SharesHandler struct {
	SUsecase mvc.SharesUsecase
	logger   log.Logger
}

const resourcePrefix = "/shares"

func formatSharesResource(resource string) string {
	return resourcePrefix + resource
}

// SharePositionResponse is the full share position of one address in one pool.
type SharePositionResponse struct {
	PoolID        uint64                     `json:"pool_id"`
	ShareCurrency sharesdomain.ShareCurrency `json:"share_currency"`

	AvailableShare sdk.Coin `json:"available_share"`
	LockedShare    sdk.Coin `json:"locked_share"`
	UnlockingShare sdk.Coin `json:"unlocking_share"`
	TotalShare     sdk.Coin `json:"total_share"`

	AvailableShareRatio sharesdomain.Ratio `json:"available_share_ratio"`
	LockedShareRatio    sharesdomain.Ratio `json:"locked_share_ratio"`
	TotalShareRatio     sharesdomain.Ratio `json:"total_share_ratio"`
}

// NewSharesHandler will initialize the shares/ resources endpoint
func NewSharesHandler(e *echo.Echo, su mvc.SharesUsecase, logger log.Logger) {
	handler := &SharesHandler{
		SUsecase: su,
		logger:   logger,
	}

	e.GET(formatSharesResource("/user-pools/:address"), handler.GetUserPools)
	e.GET(formatSharesResource("/position/:address/:poolID"), handler.GetSharePosition)
	e.GET(formatSharesResource("/assets/:address/:poolID"), handler.GetShareAssets)
	e.GET(formatSharesResource("/locks/:address/:poolID"), handler.GetLockedSharesByDuration)
	e.GET(formatSharesResource("/locked-value/:address/:poolID"), handler.GetLockedShareValue)
}

// @Summary Returns the IDs of all pools the address owns shares of.
// @Description Pool IDs are extracted from the address's positive bank balances
// and locked coins, deduplicated, and sorted in ascending numeric order.
//
// @Produce json
// @Success 200 {array} uint64 "Owned pool IDs"
// @Failure 400 {object} domain.ResponseError "Response error"
// @Param address path string true "Wallet Address"
// @Router /shares/user-pools/{address} [get]
func (a *SharesHandler) GetUserPools(c echo.Context) error {
	address := c.Param("address")
	if address == "" {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: "invalid address: cannot be empty"})
	}

	poolIDs, err := a.SUsecase.GetUserPools(c.Request().Context(), address)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, poolIDs)
}

// @Summary Returns the full share position of the address in the pool.
// @Description The position covers the available, locked, unlocking and total
// share amounts together with the ownership ratios against the pool's total
// share supply. Ratios are not ready when the pool is unknown to the registry.
//
// @Produce json
// @Success 200 {object} SharePositionResponse "Share position"
// @Failure 400 {object} domain.ResponseError "Response error"
// @Param address path string true "Wallet Address"
// @Param poolID path int true "Pool ID"
// @Router /shares/position/{address}/{poolID} [get]
func (a *SharesHandler) GetSharePosition(c echo.Context) error {
	address, poolID, err := parsePositionParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	ctx := c.Request().Context()

	availableShare, err := a.SUsecase.GetAvailableShare(ctx, address, poolID)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	lockedShare, err := a.SUsecase.GetLockedShare(ctx, address, poolID)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	unlockingShare, err := a.SUsecase.GetUnlockingShare(ctx, address, poolID)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	totalShare, err := a.SUsecase.GetTotalShare(ctx, address, poolID)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	availableShareRatio, err := a.SUsecase.GetAvailableShareRatio(ctx, address, poolID)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	lockedShareRatio, err := a.SUsecase.GetLockedShareRatio(ctx, address, poolID)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	totalShareRatio, err := a.SUsecase.GetTotalShareRatio(ctx, address, poolID)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, SharePositionResponse{
		PoolID:        poolID,
		ShareCurrency: a.SUsecase.GetShareCurrency(poolID),

		AvailableShare: availableShare,
		LockedShare:    lockedShare,
		UnlockingShare: unlockingShare,
		TotalShare:     totalShare,

		AvailableShareRatio: availableShareRatio,
		LockedShareRatio:    lockedShareRatio,
		TotalShareRatio:     totalShareRatio,
	})
}

// @Summary Returns the underlying pool assets owned through shares.
// @Description For each pool asset, the normalized asset weight and the slice
// of the asset amount owned through the address's total share. Empty when the
// pool is unknown.
//
// @Produce json
// @Success 200 {array} sharesdomain.ShareAsset "Owned share assets"
// @Failure 400 {object} domain.ResponseError "Response error"
// @Param address path string true "Wallet Address"
// @Param poolID path int true "Pool ID"
// @Router /shares/assets/{address}/{poolID} [get]
func (a *SharesHandler) GetShareAssets(c echo.Context) error {
	address, poolID, err := parsePositionParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	assets, err := a.SUsecase.GetShareAssets(c.Request().Context(), address, poolID)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, assets)
}

// @Summary Returns the locked share amounts grouped by lock duration.
// @Description For each requested duration, the locked share amount and the
// IDs of the lock records of exactly that duration.
//
// @Produce json
// @Success 200 {array} sharesdomain.DurationLock "Locked shares by duration"
// @Failure 400 {object} domain.ResponseError "Response error"
// @Param address path string true "Wallet Address"
// @Param poolID path int true "Pool ID"
// @Param durations query string true "Comma-separated Go durations, e.g. 24h,336h"
// @Router /shares/locks/{address}/{poolID} [get]
func (a *SharesHandler) GetLockedSharesByDuration(c echo.Context) error {
	address, poolID, err := parsePositionParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	durations, err := parseDurationsParam(c.QueryParam("durations"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	durationLocks, err := a.SUsecase.GetLockedSharesByDuration(c.Request().Context(), address, poolID, durations)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, durationLocks)
}

// @Summary Returns the fiat value of the address's locked shares.
// @Description Prices the locked share against the given pool liquidity
// capitalization. Not ready when the pool is unknown; a ready zero when the
// pool has a zero total share supply.
//
// @Produce json
// @Success 200 {object} sharesdomain.FiatValue "Locked share value"
// @Failure 400 {object} domain.ResponseError "Response error"
// @Param address path string true "Wallet Address"
// @Param poolID path int true "Pool ID"
// @Param liquidityCap query string true "Pool liquidity capitalization in the quote currency"
// @Router /shares/locked-value/{address}/{poolID} [get]
func (a *SharesHandler) GetLockedShareValue(c echo.Context) error {
	address, poolID, err := parsePositionParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	poolLiquidityCap, err := osmomath.NewDecFromStr(c.QueryParam("liquidityCap"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: "invalid liquidityCap: " + err.Error()})
	}

	value, err := a.SUsecase.GetLockedShareValue(c.Request().Context(), address, poolID, poolLiquidityCap)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, value)
}

func parsePositionParams(c echo.Context) (address string, poolID uint64, err error) {
	address = c.Param("address")
	if address == "" {
		return "", 0, domain.ErrBadParamInput
	}

	poolID, err = strconv.ParseUint(c.Param("poolID"), 10, 64)
	if err != nil {
		return "", 0, domain.ErrBadParamInput
	}

	return address, poolID, nil
}

func parseDurationsParam(raw string) ([]time.Duration, error) {
	if raw == "" {
		return nil, domain.ErrBadParamInput
	}

	parts := strings.Split(raw, ",")
	durations := make([]time.Duration, 0, len(parts))
	for _, part := range parts {
		duration, err := time.ParseDuration(strings.TrimSpace(part))
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		durations = append(durations, duration)
	}

	return durations, nil
}
