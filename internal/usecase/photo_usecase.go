package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contractor_pro/internal/domain/entities"
	"contractor_pro/internal/usecase/interfaces"
)

type AddPhotoInput struct {
	URI        string
	ClientID   string
	EstimateID string
	Caption    string
	PhotoType  entities.PhotoType
}

// IPhotoUseCase exposes photo operations. ListPhotos returns newest first.

type IPhotoUseCase interface {
	AddPhoto(ctx context.Context, in AddPhotoInput) (entities.Photo, error)
	AddPhotos(ctx context.Context, in []AddPhotoInput) ([]entities.Photo, error)
	ListPhotos(ctx context.Context) ([]entities.Photo, error)
}

type PhotoUseCase struct {
	store interfaces.IDataStore
}

var _ IPhotoUseCase = (*PhotoUseCase)(nil)

func NewPhotoUseCase(store interfaces.IDataStore) *PhotoUseCase {
	return &PhotoUseCase{store: store}
}

func (u *PhotoUseCase) AddPhoto(ctx context.Context, in AddPhotoInput) (entities.Photo, error) {
	p, err := toPhoto(in)
	if err != nil {
		return entities.Photo{}, err
	}
	if !u.store.Ready() {
		return entities.Photo{}, ErrStoreNotReady
	}
	return u.store.AddPhoto(ctx, p)
}

// AddPhotos imports a library selection. Every item is validated before the
// first one is added. Items are added in order, so the last one ends up
// first in ListPhotos. A persist failure does not stop the import; the
// photos are returned together with the first such error.
func (u *PhotoUseCase) AddPhotos(ctx context.Context, in []AddPhotoInput) ([]entities.Photo, error) {
	if len(in) == 0 {
		return nil, ErrEmptyPhotoBatch
	}
	photos := make([]entities.Photo, 0, len(in))
	for i, item := range in {
		p, err := toPhoto(item)
		if err != nil {
			return nil, fmt.Errorf("photo %d: %w", i, err)
		}
		photos = append(photos, p)
	}
	if !u.store.Ready() {
		return nil, ErrStoreNotReady
	}

	added := make([]entities.Photo, 0, len(photos))
	var persistErr error
	for _, p := range photos {
		created, err := u.store.AddPhoto(ctx, p)
		if err != nil && !errors.Is(err, entities.ErrPersistFailed) {
			return added, err
		}
		if err != nil && persistErr == nil {
			persistErr = err
		}
		added = append(added, created)
	}
	return added, persistErr
}

func (u *PhotoUseCase) ListPhotos(_ context.Context) ([]entities.Photo, error) {
	if !u.store.Ready() {
		return nil, ErrStoreNotReady
	}
	return u.store.Photos(), nil
}

func toPhoto(in AddPhotoInput) (entities.Photo, error) {
	uri := strings.TrimSpace(in.URI)
	if uri == "" {
		return entities.Photo{}, entities.ErrInvalidPhotoURI
	}
	if !in.PhotoType.IsValid() {
		return entities.Photo{}, fmt.Errorf("%w: %q", entities.ErrInvalidPhotoType, in.PhotoType)
	}
	return entities.Photo{
		URI:        uri,
		ClientID:   strings.TrimSpace(in.ClientID),
		EstimateID: strings.TrimSpace(in.EstimateID),
		Caption:    strings.TrimSpace(in.Caption),
		PhotoType:  in.PhotoType,
	}, nil
}
