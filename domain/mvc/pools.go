package mvc

import (
	sharesdomain "github.com/osmosis-labs/psq/domain/shares"
)

// PoolsUsecase represent the pool registry's usecases.
type PoolsUsecase interface {
	// GetPool returns the pool with the given ID.
	// Returns domain.PoolNotFoundError if the pool is not present.
	GetPool(poolID uint64) (sharesdomain.Pool, error)

	// GetAllPools returns all pools in the registry.
	GetAllPools() []sharesdomain.Pool

	// StorePools upserts the given pools into the registry.
	StorePools(pools []sharesdomain.Pool)
}
