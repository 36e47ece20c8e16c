package usecase

import (
	"context"

	"contractor_pro/internal/usecase/interfaces"
)

// Dashboard holds the home screen counters.
type Dashboard struct {
	Estimates int
	Clients   int
	Photos    int
}

type IDashboardUseCase interface {
	Summary(ctx context.Context) (Dashboard, error)
}

type DashboardUseCase struct {
	store interfaces.IDataStore
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(store interfaces.IDataStore) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

func (u *DashboardUseCase) Summary(_ context.Context) (Dashboard, error) {
	if !u.store.Ready() {
		return Dashboard{}, ErrStoreNotReady
	}
	return Dashboard{
		Estimates: len(u.store.Estimates()),
		Clients:   len(u.store.Clients()),
		Photos:    len(u.store.Photos()),
	}, nil
}
