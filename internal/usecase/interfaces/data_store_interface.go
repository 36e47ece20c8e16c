package interfaces

import (
	"context"
	"contractor_pro/internal/domain/entities"
)

// IDataStore is the in-memory source of truth for clients, estimates and
// photos, backed by an IKeyValueStore.
//
// Reads return snapshots: clients and estimates in insertion order, photos
// newest first. Add* generate the identifier and timestamps; on a failed
// write they still return the created entity, together with an error
// wrapping entities.ErrPersistFailed.

type IDataStore interface {
	Initialize(ctx context.Context) error
	Ready() bool

	Clients() []entities.Client
	Estimates() []entities.Estimate
	Photos() []entities.Photo

	AddClient(ctx context.Context, c entities.Client) (entities.Client, error)
	AddEstimate(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	AddPhoto(ctx context.Context, p entities.Photo) (entities.Photo, error)
}
