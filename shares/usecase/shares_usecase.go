package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/psq/domain"
	"github.com/osmosis-labs/psq/domain/cache"
	"github.com/osmosis-labs/psq/domain/mvc"
	sharesdomain "github.com/osmosis-labs/psq/domain/shares"
	"github.com/osmosis-labs/psq/log"
	"github.com/osmosis-labs/psq/shares/repository"
)

type sharesUseCase struct {
	poolsUseCase       mvc.PoolsUsecase
	snapshotRepository repository.AccountSnapshotRepository
	shareClient        sharesdomain.ShareGRPCClient

	cache  *cache.Cache
	logger log.Logger
}

var _ mvc.SharesUsecase = &sharesUseCase{}

const (
	userPoolsCacheOp     = "user-pools"
	lockedShareCacheOp   = "locked-share"
	unlockingShareOp     = "unlocking-share"
	availableShareOp     = "available-share"
	durationLocksCacheOp = "duration-locks"
)

// NewSharesUsecase creates a new share module use case.
func NewSharesUsecase(poolsUseCase mvc.PoolsUsecase, snapshotRepository repository.AccountSnapshotRepository, shareClient sharesdomain.ShareGRPCClient, derivationCache *cache.Cache, logger log.Logger) mvc.SharesUsecase {
	return &sharesUseCase{
		poolsUseCase:       poolsUseCase,
		snapshotRepository: snapshotRepository,
		shareClient:        shareClient,

		cache:  derivationCache,
		logger: logger,
	}
}

// GetUserPools implements mvc.SharesUsecase.
func (s *sharesUseCase) GetUserPools(ctx context.Context, address string) ([]uint64, error) {
	snapshot, err := s.snapshotRepository.GetAccountSnapshot(ctx, address)
	if err != nil {
		return nil, err
	}

	key := formatCacheKey(userPoolsCacheOp, snapshot.Version, address)
	return getCachedOrCompute(s, userPoolsCacheOp, key, func() ([]uint64, error) {
		poolIDs := make(map[uint64]struct{})

		for _, balance := range snapshot.Balances {
			if !balance.Amount.IsPositive() {
				continue
			}
			if poolID, ok := sharesdomain.ParseShareDenom(balance.Denom); ok {
				poolIDs[poolID] = struct{}{}
			}
		}

		for _, lockedCoin := range snapshot.LockedCoins {
			if poolID, ok := sharesdomain.ParseShareDenom(lockedCoin.Denom); ok {
				poolIDs[poolID] = struct{}{}
			}
		}

		result := make([]uint64, 0, len(poolIDs))
		for poolID := range poolIDs {
			result = append(result, poolID)
		}

		sort.Slice(result, func(i, j int) bool {
			return result[i] < result[j]
		})

		return result, nil
	})
}

// GetShareCurrency implements mvc.SharesUsecase.
func (s *sharesUseCase) GetShareCurrency(poolID uint64) sharesdomain.ShareCurrency {
	return sharesdomain.NewShareCurrency(poolID)
}

// GetLockedShare implements mvc.SharesUsecase.
func (s *sharesUseCase) GetLockedShare(ctx context.Context, address string, poolID uint64) (sdk.Coin, error) {
	snapshot, err := s.snapshotRepository.GetAccountSnapshot(ctx, address)
	if err != nil {
		return sdk.Coin{}, err
	}

	key := formatCacheKey(lockedShareCacheOp, snapshot.Version, address, poolID)
	return getCachedOrCompute(s, lockedShareCacheOp, key, func() (sdk.Coin, error) {
		return shareAmountOf(snapshot.LockedCoins, poolID), nil
	})
}

// GetLockedShareRatio implements mvc.SharesUsecase.
func (s *sharesUseCase) GetLockedShareRatio(ctx context.Context, address string, poolID uint64) (sharesdomain.Ratio, error) {
	lockedShare, err := s.GetLockedShare(ctx, address, poolID)
	if err != nil {
		return sharesdomain.UnreadyRatio(), err
	}

	return s.shareRatio(lockedShare, poolID)
}

// GetLockedShareValue implements mvc.SharesUsecase.
func (s *sharesUseCase) GetLockedShareValue(ctx context.Context, address string, poolID uint64, poolLiquidityCap osmomath.Dec) (sharesdomain.FiatValue, error) {
	lockedShareRatio, err := s.GetLockedShareRatio(ctx, address, poolID)
	if err != nil {
		return sharesdomain.UnreadyFiatValue(), err
	}

	ratio, isReady := lockedShareRatio.Get()
	if !isReady {
		return sharesdomain.UnreadyFiatValue(), nil
	}

	return sharesdomain.NewFiatValue(poolLiquidityCap.Mul(ratio)), nil
}

// GetUnlockingShare implements mvc.SharesUsecase.
func (s *sharesUseCase) GetUnlockingShare(ctx context.Context, address string, poolID uint64) (sdk.Coin, error) {
	snapshot, err := s.snapshotRepository.GetAccountSnapshot(ctx, address)
	if err != nil {
		return sdk.Coin{}, err
	}

	key := formatCacheKey(unlockingShareOp, snapshot.Version, address, poolID)
	return getCachedOrCompute(s, unlockingShareOp, key, func() (sdk.Coin, error) {
		return shareAmountOf(snapshot.UnlockingCoins, poolID), nil
	})
}

// GetAvailableShare implements mvc.SharesUsecase.
func (s *sharesUseCase) GetAvailableShare(ctx context.Context, address string, poolID uint64) (sdk.Coin, error) {
	snapshot, err := s.snapshotRepository.GetAccountSnapshot(ctx, address)
	if err != nil {
		return sdk.Coin{}, err
	}

	key := formatCacheKey(availableShareOp, snapshot.Version, address, poolID)
	return getCachedOrCompute(s, availableShareOp, key, func() (sdk.Coin, error) {
		return shareAmountOf(snapshot.Balances, poolID), nil
	})
}

// GetAvailableShareRatio implements mvc.SharesUsecase.
func (s *sharesUseCase) GetAvailableShareRatio(ctx context.Context, address string, poolID uint64) (sharesdomain.Ratio, error) {
	availableShare, err := s.GetAvailableShare(ctx, address, poolID)
	if err != nil {
		return sharesdomain.UnreadyRatio(), err
	}

	return s.shareRatio(availableShare, poolID)
}

// GetTotalShare implements mvc.SharesUsecase.
func (s *sharesUseCase) GetTotalShare(ctx context.Context, address string, poolID uint64) (sdk.Coin, error) {
	availableShare, err := s.GetAvailableShare(ctx, address, poolID)
	if err != nil {
		return sdk.Coin{}, err
	}

	// Unlocking coins are a subset of locked coins. Adding available and
	// locked therefore covers the full position without double counting.
	lockedShare, err := s.GetLockedShare(ctx, address, poolID)
	if err != nil {
		return sdk.Coin{}, err
	}

	return availableShare.Add(lockedShare), nil
}

// GetTotalShareRatio implements mvc.SharesUsecase.
func (s *sharesUseCase) GetTotalShareRatio(ctx context.Context, address string, poolID uint64) (sharesdomain.Ratio, error) {
	totalShare, err := s.GetTotalShare(ctx, address, poolID)
	if err != nil {
		return sharesdomain.UnreadyRatio(), err
	}

	return s.shareRatio(totalShare, poolID)
}

// GetShareAssets implements mvc.SharesUsecase.
func (s *sharesUseCase) GetShareAssets(ctx context.Context, address string, poolID uint64) ([]sharesdomain.ShareAsset, error) {
	pool, err := s.poolsUseCase.GetPool(poolID)
	if err != nil {
		if isPoolNotFound(err) {
			return []sharesdomain.ShareAsset{}, nil
		}
		return nil, err
	}

	totalShareRatio, err := s.GetTotalShareRatio(ctx, address, poolID)
	if err != nil {
		return nil, err
	}

	ratio, isReady := totalShareRatio.Get()
	if !isReady || pool.TotalWeight.IsZero() {
		return []sharesdomain.ShareAsset{}, nil
	}

	totalWeightDec := pool.TotalWeight.ToLegacyDec()

	assets := make([]sharesdomain.ShareAsset, 0, len(pool.Assets))
	for _, poolAsset := range pool.Assets {
		ownedAmount := poolAsset.Token.Amount.ToLegacyDec().Mul(ratio).TruncateInt()

		assets = append(assets, sharesdomain.ShareAsset{
			Ratio: poolAsset.Weight.ToLegacyDec().Quo(totalWeightDec),
			Asset: sdk.NewCoin(poolAsset.Token.Denom, ownedAmount),
		})
	}

	return assets, nil
}

// GetLockedSharesByDuration implements mvc.SharesUsecase.
func (s *sharesUseCase) GetLockedSharesByDuration(ctx context.Context, address string, poolID uint64, durations []time.Duration) ([]sharesdomain.DurationLock, error) {
	snapshot, err := s.snapshotRepository.GetAccountSnapshot(ctx, address)
	if err != nil {
		return nil, err
	}

	shareDenom := sharesdomain.FormatShareDenom(poolID)

	result := make([]sharesdomain.DurationLock, 0, len(durations))
	for _, duration := range durations {
		key := formatCacheKey(durationLocksCacheOp, snapshot.Version, address, poolID, duration)
		durationLock, err := getCachedOrCompute(s, durationLocksCacheOp, key, func() (sharesdomain.DurationLock, error) {
			locks, err := s.shareClient.AccountLockedDuration(ctx, address, duration)
			if err != nil {
				return sharesdomain.DurationLock{}, err
			}

			amount := osmomath.ZeroInt()
			lockIDs := []uint64{}
			for _, lock := range locks {
				lockedAmount := lock.Coins.AmountOf(shareDenom)
				if !lockedAmount.IsPositive() {
					continue
				}

				amount = amount.Add(lockedAmount)
				lockIDs = append(lockIDs, lock.ID)
			}

			return sharesdomain.DurationLock{
				Duration: duration,
				Amount:   sdk.NewCoin(shareDenom, amount),
				LockIDs:  lockIDs,
			}, nil
		})
		if err != nil {
			return nil, err
		}

		result = append(result, durationLock)
	}

	return result, nil
}

// shareRatio divides the given share amount by the pool's total share supply.
// Unknown pool yields the not-ready sentinel. A zero total share supply yields
// a ready zero ratio, short-circuiting the division before it can produce an
// indeterminate zero-over-zero form.
func (s *sharesUseCase) shareRatio(share sdk.Coin, poolID uint64) (sharesdomain.Ratio, error) {
	pool, err := s.poolsUseCase.GetPool(poolID)
	if err != nil {
		if isPoolNotFound(err) {
			return sharesdomain.UnreadyRatio(), nil
		}
		return sharesdomain.UnreadyRatio(), err
	}

	if pool.TotalShare.IsZero() {
		return sharesdomain.ZeroRatio(), nil
	}

	ratio := share.Amount.ToLegacyDec().Quo(pool.TotalShare.ToLegacyDec())
	return sharesdomain.NewRatio(ratio), nil
}

// shareAmountOf extracts the pool's share coin from the given coins,
// returning a zero coin when no matching record exists.
func shareAmountOf(coins sdk.Coins, poolID uint64) sdk.Coin {
	shareDenom := sharesdomain.FormatShareDenom(poolID)
	return sdk.NewCoin(shareDenom, coins.AmountOf(shareDenom))
}

func isPoolNotFound(err error) bool {
	var poolNotFoundError domain.PoolNotFoundError
	return errors.As(err, &poolNotFoundError)
}

func formatCacheKey(operation string, snapshotVersion uint64, args ...any) string {
	key := fmt.Sprintf("%s/v%d", operation, snapshotVersion)
	for _, arg := range args {
		key += fmt.Sprintf("/%v", arg)
	}
	return key
}

// getCachedOrCompute memoizes compute under the given key. Entries are keyed
// by snapshot version, so recomputation against the same snapshot always
// returns the cached equal result, and refreshed snapshots never see stale
// derivations.
func getCachedOrCompute[T any](s *sharesUseCase, operation, key string, compute func() (T, error)) (T, error) {
	if cached, found := s.cache.Get(key); found {
		if typed, ok := cached.(T); ok {
			domain.PSQShareCacheHitsCounter.WithLabelValues(operation).Inc()
			return typed, nil
		}
	}

	domain.PSQShareCacheMissesCounter.WithLabelValues(operation).Inc()

	computed, err := compute()
	if err != nil {
		return computed, err
	}

	s.cache.Set(key, computed)

	return computed, nil
}
