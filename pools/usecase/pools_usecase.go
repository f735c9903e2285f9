package usecase

import (
	"sync"

	"github.com/osmosis-labs/psq/domain"
	"github.com/osmosis-labs/psq/domain/mvc"
	sharesdomain "github.com/osmosis-labs/psq/domain/shares"
)

type poolsUseCase struct {
	pools sync.Map
}

var _ mvc.PoolsUsecase = &poolsUseCase{}

// NewPoolsUsecase will create a new pool registry use case object.
// The registry starts empty and is populated via StorePools.
func NewPoolsUsecase() mvc.PoolsUsecase {
	return &poolsUseCase{
		pools: sync.Map{},
	}
}

// GetPool implements mvc.PoolsUsecase.
func (p *poolsUseCase) GetPool(poolID uint64) (sharesdomain.Pool, error) {
	value, found := p.pools.Load(poolID)
	if !found {
		return sharesdomain.Pool{}, domain.PoolNotFoundError{PoolID: poolID}
	}

	pool, ok := value.(sharesdomain.Pool)
	if !ok {
		return sharesdomain.Pool{}, domain.ErrInternalServerError
	}

	return pool, nil
}

// GetAllPools implements mvc.PoolsUsecase.
func (p *poolsUseCase) GetAllPools() []sharesdomain.Pool {
	pools := []sharesdomain.Pool{}
	p.pools.Range(func(key, value any) bool {
		if pool, ok := value.(sharesdomain.Pool); ok {
			pools = append(pools, pool)
		}
		return true
	})

	return pools
}

// StorePools implements mvc.PoolsUsecase.
func (p *poolsUseCase) StorePools(pools []sharesdomain.Pool) {
	for _, pool := range pools {
		p.pools.Store(pool.ID, pool)
	}
}
