package usecase

import (
	"context"
	"strings"

	"contractor_pro/internal/domain/entities"
	"contractor_pro/internal/usecase/interfaces"
)

// CreateClientInput carries the client form fields.
type CreateClientInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

// IClientUseCase exposes client operations.
//
// ListClients filters by a case-insensitive substring of the name; an empty
// search returns every client.

type IClientUseCase interface {
	CreateClient(ctx context.Context, in CreateClientInput) (entities.Client, error)
	ListClients(ctx context.Context, search string) ([]entities.Client, error)
}

type ClientUseCase struct {
	store interfaces.IDataStore
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(store interfaces.IDataStore) *ClientUseCase {
	return &ClientUseCase{store: store}
}

func (u *ClientUseCase) CreateClient(ctx context.Context, in CreateClientInput) (entities.Client, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Client{}, entities.ErrInvalidClientName
	}
	if !u.store.Ready() {
		return entities.Client{}, ErrStoreNotReady
	}

	return u.store.AddClient(ctx, entities.Client{
		Name:    name,
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
		Notes:   strings.TrimSpace(in.Notes),
	})
}

func (u *ClientUseCase) ListClients(_ context.Context, search string) ([]entities.Client, error) {
	if !u.store.Ready() {
		return nil, ErrStoreNotReady
	}
	clients := u.store.Clients()

	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return clients, nil
	}
	out := make([]entities.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), search) {
			out = append(out, c)
		}
	}
	return out, nil
}
