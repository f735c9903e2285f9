package mocks

import (
	"context"

	sharesdomain "github.com/osmosis-labs/psq/domain/shares"
	"github.com/osmosis-labs/psq/shares/repository"
)

type AccountSnapshotRepositoryMock struct {
	GetAccountSnapshotFunc func(ctx context.Context, address string) (sharesdomain.AccountSnapshot, error)
}

// GetAccountSnapshot implements repository.AccountSnapshotRepository.
func (m *AccountSnapshotRepositoryMock) GetAccountSnapshot(ctx context.Context, address string) (sharesdomain.AccountSnapshot, error) {
	if m.GetAccountSnapshotFunc != nil {
		return m.GetAccountSnapshotFunc(ctx, address)
	}

	panic("unimplemented")
}

var _ repository.AccountSnapshotRepository = &AccountSnapshotRepositoryMock{}
