package mocks

import (
	"github.com/osmosis-labs/psq/domain/mvc"
	sharesdomain "github.com/osmosis-labs/psq/domain/shares"
)

type PoolsUsecaseMock struct {
	GetPoolFunc     func(poolID uint64) (sharesdomain.Pool, error)
	GetAllPoolsFunc func() []sharesdomain.Pool
	StorePoolsFunc  func(pools []sharesdomain.Pool)
}

// GetPool implements mvc.PoolsUsecase.
func (m *PoolsUsecaseMock) GetPool(poolID uint64) (sharesdomain.Pool, error) {
	if m.GetPoolFunc != nil {
		return m.GetPoolFunc(poolID)
	}

	panic("unimplemented")
}

// GetAllPools implements mvc.PoolsUsecase.
func (m *PoolsUsecaseMock) GetAllPools() []sharesdomain.Pool {
	if m.GetAllPoolsFunc != nil {
		return m.GetAllPoolsFunc()
	}

	panic("unimplemented")
}

// StorePools implements mvc.PoolsUsecase.
func (m *PoolsUsecaseMock) StorePools(pools []sharesdomain.Pool) {
	if m.StorePoolsFunc != nil {
		m.StorePoolsFunc(pools)
		return
	}

	panic("unimplemented")
}

var _ mvc.PoolsUsecase = &PoolsUsecaseMock{}
