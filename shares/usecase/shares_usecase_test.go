package usecase_test

import (
	"context"
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/osmosis-labs/osmosis/osmomath"
	lockup "github.com/osmosis-labs/osmosis/v25/x/lockup/types"
	"github.com/stretchr/testify/suite"

	"github.com/osmosis-labs/psq/domain"
	"github.com/osmosis-labs/psq/domain/cache"
	"github.com/osmosis-labs/psq/domain/mocks"
	"github.com/osmosis-labs/psq/domain/mvc"
	sharesdomain "github.com/osmosis-labs/psq/domain/shares"
	"github.com/osmosis-labs/psq/log"
	"github.com/osmosis-labs/psq/shares/usecase"
)

type SharesUsecaseTestSuite struct {
	suite.Suite
}

func TestSharesUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(SharesUsecaseTestSuite))
}

const (
	testAddress = "osmo1qzkcv27dnqvyk67rzh6a2mhvnqa8g4xwq0g7c4"

	defaultPoolID  = uint64(3)
	unknownPoolID  = uint64(999)
	emptySupplyID  = uint64(7)
	testCacheSize  = 128
	defaultVersion = uint64(1)
)

var (
	defaultShareDenom = sharesdomain.FormatShareDenom(defaultPoolID)

	availableAmount = osmomath.NewInt(30)
	lockedAmount    = osmomath.NewInt(50)
	unlockingAmount = osmomath.NewInt(20)

	// availableAmount + lockedAmount
	totalAmount = osmomath.NewInt(80)

	defaultTotalShare = osmomath.NewInt(100)

	defaultSnapshot = sharesdomain.AccountSnapshot{
		Address:        testAddress,
		Balances:       sdk.NewCoins(sdk.NewCoin(defaultShareDenom, availableAmount), sdk.NewCoin("uosmo", osmomath.NewInt(1000))),
		LockedCoins:    sdk.NewCoins(sdk.NewCoin(defaultShareDenom, lockedAmount)),
		UnlockingCoins: sdk.NewCoins(sdk.NewCoin(defaultShareDenom, unlockingAmount)),
		Version:        defaultVersion,
	}

	defaultPool = sharesdomain.Pool{
		ID:          defaultPoolID,
		TotalShare:  defaultTotalShare,
		TotalWeight: osmomath.NewInt(5),
		Assets: []sharesdomain.PoolAsset{
			{
				Token:  sdk.NewCoin("uosmo", osmomath.NewInt(100)),
				Weight: osmomath.NewInt(1),
			},
			{
				Token:  sdk.NewCoin("uatom", osmomath.NewInt(500)),
				Weight: osmomath.NewInt(4),
			},
		},
	}

	emptySupplyPool = sharesdomain.Pool{
		ID:          emptySupplyID,
		TotalShare:  osmomath.ZeroInt(),
		TotalWeight: osmomath.ZeroInt(),
	}
)

// registryGetPool serves the default and empty-supply pools, returning the
// not-found error for every other ID.
func registryGetPool(poolID uint64) (sharesdomain.Pool, error) {
	switch poolID {
	case defaultPoolID:
		return defaultPool, nil
	case emptySupplyID:
		return emptySupplyPool, nil
	default:
		return sharesdomain.Pool{}, domain.PoolNotFoundError{PoolID: poolID}
	}
}

func (s *SharesUsecaseTestSuite) newSharesUsecase(snapshot sharesdomain.AccountSnapshot, shareClient sharesdomain.ShareGRPCClient) mvc.SharesUsecase {
	derivationCache, err := cache.New(testCacheSize)
	s.Require().NoError(err)

	return usecase.NewSharesUsecase(
		&mocks.PoolsUsecaseMock{
			GetPoolFunc: registryGetPool,
		},
		&mocks.AccountSnapshotRepositoryMock{
			GetAccountSnapshotFunc: func(ctx context.Context, address string) (sharesdomain.AccountSnapshot, error) {
				return snapshot, nil
			},
		},
		shareClient,
		derivationCache,
		&log.NoOpLogger{},
	)
}

func (s *SharesUsecaseTestSuite) TestGetUserPools() {
	tests := []struct {
		name string

		balances    sdk.Coins
		lockedCoins sdk.Coins

		expectedPoolIDs []uint64
	}{
		{
			name: "no balances and no locks -> empty",

			expectedPoolIDs: []uint64{},
		},
		{
			name: "non-share balances are skipped",

			balances: sdk.NewCoins(sdk.NewCoin("uosmo", osmomath.NewInt(100)), sdk.NewCoin("uatom", osmomath.NewInt(5))),

			expectedPoolIDs: []uint64{},
		},
		{
			name: "share balances and locks are deduplicated and numerically sorted",

			balances: sdk.NewCoins(
				sdk.NewCoin(sharesdomain.FormatShareDenom(2), osmomath.OneInt()),
				sdk.NewCoin(sharesdomain.FormatShareDenom(10), osmomath.OneInt()),
				sdk.NewCoin("uosmo", osmomath.NewInt(100)),
			),
			lockedCoins: sdk.NewCoins(
				sdk.NewCoin(sharesdomain.FormatShareDenom(1), osmomath.OneInt()),
				sdk.NewCoin(sharesdomain.FormatShareDenom(2), osmomath.OneInt()),
			),

			expectedPoolIDs: []uint64{1, 2, 10},
		},
		{
			name: "locked-only pool is included",

			lockedCoins: sdk.NewCoins(sdk.NewCoin(sharesdomain.FormatShareDenom(42), osmomath.OneInt())),

			expectedPoolIDs: []uint64{42},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			sharesUsecase := s.newSharesUsecase(sharesdomain.AccountSnapshot{
				Address:     testAddress,
				Balances:    tc.balances,
				LockedCoins: tc.lockedCoins,
				Version:     defaultVersion,
			}, &mocks.ShareGRPCClientMock{})

			poolIDs, err := sharesUsecase.GetUserPools(context.Background(), testAddress)
			s.Require().NoError(err)

			s.Require().Equal(tc.expectedPoolIDs, poolIDs)
		})
	}
}

func (s *SharesUsecaseTestSuite) TestGetShareCurrency() {
	sharesUsecase := s.newSharesUsecase(defaultSnapshot, &mocks.ShareGRPCClientMock{})

	currency := sharesUsecase.GetShareCurrency(defaultPoolID)

	s.Require().Equal(defaultPoolID, currency.PoolID)
	s.Require().Equal("gamm/pool/3", currency.CoinMinimalDenom)
	s.Require().Equal("GAMM/3", currency.CoinDenom)
	s.Require().Equal(sharesdomain.ShareCoinExponent, currency.CoinExponent)
}

// Covers the amount getters end to end against one snapshot: unlocking coins
// stay a subset of locked coins, and the total equals available plus locked.
func (s *SharesUsecaseTestSuite) TestGetShareAmounts() {
	sharesUsecase := s.newSharesUsecase(defaultSnapshot, &mocks.ShareGRPCClientMock{})
	ctx := context.Background()

	availableShare, err := sharesUsecase.GetAvailableShare(ctx, testAddress, defaultPoolID)
	s.Require().NoError(err)
	s.Require().Equal(sdk.NewCoin(defaultShareDenom, availableAmount), availableShare)

	lockedShare, err := sharesUsecase.GetLockedShare(ctx, testAddress, defaultPoolID)
	s.Require().NoError(err)
	s.Require().Equal(sdk.NewCoin(defaultShareDenom, lockedAmount), lockedShare)

	unlockingShare, err := sharesUsecase.GetUnlockingShare(ctx, testAddress, defaultPoolID)
	s.Require().NoError(err)
	s.Require().Equal(sdk.NewCoin(defaultShareDenom, unlockingAmount), unlockingShare)
	s.Require().True(unlockingShare.Amount.LTE(lockedShare.Amount))

	totalShare, err := sharesUsecase.GetTotalShare(ctx, testAddress, defaultPoolID)
	s.Require().NoError(err)
	s.Require().Equal(sdk.NewCoin(defaultShareDenom, totalAmount), totalShare)
	s.Require().Equal(availableShare.Amount.Add(lockedShare.Amount), totalShare.Amount)
}

// Missing records resolve to zero coins rather than errors.
func (s *SharesUsecaseTestSuite) TestGetShareAmounts_NoRecords() {
	sharesUsecase := s.newSharesUsecase(sharesdomain.AccountSnapshot{
		Address: testAddress,
		Version: defaultVersion,
	}, &mocks.ShareGRPCClientMock{})
	ctx := context.Background()

	totalShare, err := sharesUsecase.GetTotalShare(ctx, testAddress, defaultPoolID)
	s.Require().NoError(err)

	s.Require().Equal(sdk.NewCoin(defaultShareDenom, osmomath.ZeroInt()), totalShare)
	s.Require().True(totalShare.IsZero())
}

func (s *SharesUsecaseTestSuite) TestGetShareRatios() {
	tests := []struct {
		name string

		poolID uint64

		getRatio func(sharesUsecase mvc.SharesUsecase) (sharesdomain.Ratio, error)

		expectedReady bool
		expectedRatio osmomath.Dec
	}{
		{
			name:   "total share ratio of registered pool",
			poolID: defaultPoolID,

			expectedReady: true,
			// totalAmount / defaultTotalShare
			expectedRatio: osmomath.MustNewDecFromStr("0.8"),
		},
		{
			name:   "unknown pool -> not ready",
			poolID: unknownPoolID,

			expectedReady: false,
		},
		{
			name:   "zero total share supply -> ready zero",
			poolID: emptySupplyID,

			expectedReady: true,
			expectedRatio: osmomath.ZeroDec(),
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			sharesUsecase := s.newSharesUsecase(defaultSnapshot, &mocks.ShareGRPCClientMock{})

			ratio, err := sharesUsecase.GetTotalShareRatio(context.Background(), testAddress, tc.poolID)
			s.Require().NoError(err)

			value, isReady := ratio.Get()
			s.Require().Equal(tc.expectedReady, isReady)
			if tc.expectedReady {
				s.Require().Equal(tc.expectedRatio, value)
			}
		})
	}
}

func (s *SharesUsecaseTestSuite) TestGetAvailableAndLockedShareRatio() {
	sharesUsecase := s.newSharesUsecase(defaultSnapshot, &mocks.ShareGRPCClientMock{})
	ctx := context.Background()

	availableRatio, err := sharesUsecase.GetAvailableShareRatio(ctx, testAddress, defaultPoolID)
	s.Require().NoError(err)
	// availableAmount / defaultTotalShare
	s.Require().Equal(osmomath.MustNewDecFromStr("0.3"), availableRatio.MustGet())

	lockedRatio, err := sharesUsecase.GetLockedShareRatio(ctx, testAddress, defaultPoolID)
	s.Require().NoError(err)
	// lockedAmount / defaultTotalShare
	s.Require().Equal(osmomath.MustNewDecFromStr("0.5"), lockedRatio.MustGet())
}

func (s *SharesUsecaseTestSuite) TestGetLockedShareValue() {
	tests := []struct {
		name string

		poolID           uint64
		poolLiquidityCap osmomath.Dec

		expectedReady bool
		expectedValue osmomath.Dec
	}{
		{
			name: "locked ratio times pool liquidity cap",

			poolID:           defaultPoolID,
			poolLiquidityCap: osmomath.MustNewDecFromStr("1000"),

			expectedReady: true,
			// lockedAmount / defaultTotalShare * 1000
			expectedValue: osmomath.MustNewDecFromStr("500"),
		},
		{
			name: "unknown pool -> not ready",

			poolID:           unknownPoolID,
			poolLiquidityCap: osmomath.MustNewDecFromStr("1000"),

			expectedReady: false,
		},
		{
			name: "zero total share supply -> ready zero",

			poolID:           emptySupplyID,
			poolLiquidityCap: osmomath.MustNewDecFromStr("1000"),

			expectedReady: true,
			expectedValue: osmomath.ZeroDec(),
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			sharesUsecase := s.newSharesUsecase(defaultSnapshot, &mocks.ShareGRPCClientMock{})

			fiatValue, err := sharesUsecase.GetLockedShareValue(context.Background(), testAddress, tc.poolID, tc.poolLiquidityCap)
			s.Require().NoError(err)

			value, isReady := fiatValue.Get()
			s.Require().Equal(tc.expectedReady, isReady)
			if tc.expectedReady {
				s.Require().Equal(tc.expectedValue, value)
			}
		})
	}
}

func (s *SharesUsecaseTestSuite) TestGetShareAssets() {
	tests := []struct {
		name string

		poolID uint64

		expectedAssets []sharesdomain.ShareAsset
	}{
		{
			name: "owned asset slices follow normalized weights and total share ratio",

			poolID: defaultPoolID,

			expectedAssets: []sharesdomain.ShareAsset{
				{
					// weight 1 / total weight 5
					Ratio: osmomath.MustNewDecFromStr("0.2"),
					// 100 * 0.8, truncated
					Asset: sdk.NewCoin("uosmo", osmomath.NewInt(80)),
				},
				{
					// weight 4 / total weight 5
					Ratio: osmomath.MustNewDecFromStr("0.8"),
					// 500 * 0.8, truncated
					Asset: sdk.NewCoin("uatom", osmomath.NewInt(400)),
				},
			},
		},
		{
			name: "unknown pool -> empty",

			poolID: unknownPoolID,

			expectedAssets: []sharesdomain.ShareAsset{},
		},
		{
			name: "zero total weight -> empty",

			poolID: emptySupplyID,

			expectedAssets: []sharesdomain.ShareAsset{},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			sharesUsecase := s.newSharesUsecase(defaultSnapshot, &mocks.ShareGRPCClientMock{})

			assets, err := sharesUsecase.GetShareAssets(context.Background(), testAddress, tc.poolID)
			s.Require().NoError(err)

			s.Require().Equal(tc.expectedAssets, assets)
		})
	}
}

func (s *SharesUsecaseTestSuite) TestGetLockedSharesByDuration() {
	const (
		dayDuration  = 24 * time.Hour
		weekDuration = 7 * 24 * time.Hour
	)

	locksByDuration := map[time.Duration][]lockup.PeriodLock{
		dayDuration: {
			{
				ID:       11,
				Duration: dayDuration,
				Coins:    sdk.NewCoins(sdk.NewCoin(defaultShareDenom, osmomath.NewInt(10))),
			},
			{
				ID:       12,
				Duration: dayDuration,
				Coins:    sdk.NewCoins(sdk.NewCoin(defaultShareDenom, osmomath.NewInt(15))),
			},
			{
				// Lock over a different pool's shares must not contribute.
				ID:       13,
				Duration: dayDuration,
				Coins:    sdk.NewCoins(sdk.NewCoin(sharesdomain.FormatShareDenom(8), osmomath.NewInt(999))),
			},
		},
		weekDuration: {
			{
				ID:       21,
				Duration: weekDuration,
				Coins:    sdk.NewCoins(sdk.NewCoin(defaultShareDenom, osmomath.NewInt(25))),
			},
		},
	}

	shareClient := &mocks.ShareGRPCClientMock{
		MockAccountLockedDurationCb: func(ctx context.Context, address string, duration time.Duration) ([]lockup.PeriodLock, error) {
			return locksByDuration[duration], nil
		},
	}

	sharesUsecase := s.newSharesUsecase(defaultSnapshot, shareClient)

	durationLocks, err := sharesUsecase.GetLockedSharesByDuration(context.Background(), testAddress, defaultPoolID, []time.Duration{dayDuration, weekDuration, time.Hour})
	s.Require().NoError(err)

	s.Require().Equal([]sharesdomain.DurationLock{
		{
			Duration: dayDuration,
			Amount:   sdk.NewCoin(defaultShareDenom, osmomath.NewInt(25)),
			LockIDs:  []uint64{11, 12},
		},
		{
			Duration: weekDuration,
			Amount:   sdk.NewCoin(defaultShareDenom, osmomath.NewInt(25)),
			LockIDs:  []uint64{21},
		},
		{
			// No locks of this duration.
			Duration: time.Hour,
			Amount:   sdk.NewCoin(defaultShareDenom, osmomath.ZeroInt()),
			LockIDs:  []uint64{},
		},
	}, durationLocks)
}

// The duration lock derivation is memoized per snapshot version: repeated
// queries against the same snapshot hit the cache instead of the chain, while
// a refreshed snapshot recomputes.
func (s *SharesUsecaseTestSuite) TestGetLockedSharesByDuration_Memoization() {
	var (
		lockedDurationCalls int
		snapshotVersion     = defaultVersion
	)

	derivationCache, err := cache.New(testCacheSize)
	s.Require().NoError(err)

	sharesUsecase := usecase.NewSharesUsecase(
		&mocks.PoolsUsecaseMock{
			GetPoolFunc: registryGetPool,
		},
		&mocks.AccountSnapshotRepositoryMock{
			GetAccountSnapshotFunc: func(ctx context.Context, address string) (sharesdomain.AccountSnapshot, error) {
				snapshot := defaultSnapshot
				snapshot.Version = snapshotVersion
				return snapshot, nil
			},
		},
		&mocks.ShareGRPCClientMock{
			MockAccountLockedDurationCb: func(ctx context.Context, address string, duration time.Duration) ([]lockup.PeriodLock, error) {
				lockedDurationCalls++
				return nil, nil
			},
		},
		derivationCache,
		&log.NoOpLogger{},
	)

	ctx := context.Background()
	durations := []time.Duration{24 * time.Hour}

	_, err = sharesUsecase.GetLockedSharesByDuration(ctx, testAddress, defaultPoolID, durations)
	s.Require().NoError(err)
	s.Require().Equal(1, lockedDurationCalls)

	// Same snapshot version, served from the cache.
	_, err = sharesUsecase.GetLockedSharesByDuration(ctx, testAddress, defaultPoolID, durations)
	s.Require().NoError(err)
	s.Require().Equal(1, lockedDurationCalls)

	// Snapshot refresh invalidates the memoized derivation.
	snapshotVersion++

	_, err = sharesUsecase.GetLockedSharesByDuration(ctx, testAddress, defaultPoolID, durations)
	s.Require().NoError(err)
	s.Require().Equal(2, lockedDurationCalls)
}

func (s *SharesUsecaseTestSuite) TestFormatCacheKey() {
	s.Require().Equal("locked-share/v3/osmo1abc/5", usecase.FormatCacheKey("locked-share", 3, "osmo1abc", uint64(5)))
	s.Require().Equal("user-pools/v1/osmo1abc", usecase.FormatCacheKey("user-pools", 1, "osmo1abc"))
}

func (s *SharesUsecaseTestSuite) TestShareAmountOf() {
	coins := sdk.NewCoins(
		sdk.NewCoin(defaultShareDenom, osmomath.NewInt(100)),
		sdk.NewCoin("uosmo", osmomath.NewInt(50)),
	)

	s.Require().Equal(sdk.NewCoin(defaultShareDenom, osmomath.NewInt(100)), usecase.ShareAmountOf(coins, defaultPoolID))

	// No record for the pool resolves to a zero coin.
	s.Require().Equal(sdk.NewCoin(sharesdomain.FormatShareDenom(55), osmomath.ZeroInt()), usecase.ShareAmountOf(coins, 55))
}
