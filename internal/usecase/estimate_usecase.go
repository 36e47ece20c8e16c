package usecase

import (
	"context"
	"fmt"
	"strings"

	"contractor_pro/internal/domain/entities"
	"contractor_pro/internal/domain/pricing"
	"contractor_pro/internal/usecase/interfaces"
)

// LineItemInput is a line item as typed into the estimate form. Quantity and
// unit price are raw text; see pricing.ParseLineItem for the fallbacks.
type LineItemInput struct {
	Description string
	Quantity    string
	UnitPrice   string
}

type CreateEstimateInput struct {
	ClientID    string
	Title       string
	Description string
	LineItems   []LineItemInput
}

// RejectedLineItem reports why the line item at Index was not accepted.
type RejectedLineItem struct {
	Index  int
	Reason error
}

// EstimatePreview is the live view of an unsaved estimate.
type EstimatePreview struct {
	LineItems []entities.EstimateLineItem
	Totals    pricing.Totals
	Rejected  []RejectedLineItem
}

// IEstimateUseCase exposes estimate operations.
//
//   - PreviewEstimate prices a draft without saving it
//   - CreateEstimate saves a draft estimate with server-side totals
//   - ListEstimates returns estimates in creation order

type IEstimateUseCase interface {
	PreviewEstimate(ctx context.Context, items []LineItemInput) (EstimatePreview, error)
	CreateEstimate(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error)
	ListEstimates(ctx context.Context) ([]entities.Estimate, error)
}

type EstimateUseCase struct {
	store interfaces.IDataStore
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(store interfaces.IDataStore) *EstimateUseCase {
	return &EstimateUseCase{store: store}
}

func (u *EstimateUseCase) PreviewEstimate(_ context.Context, items []LineItemInput) (EstimatePreview, error) {
	draft, rejected := buildDraft(items)
	return EstimatePreview{
		LineItems: draft.Items(),
		Totals:    draft.Totals(),
		Rejected:  rejected,
	}, nil
}

// CreateEstimate requires a title and at least one line item. Any rejected
// line item fails the whole request.
func (u *EstimateUseCase) CreateEstimate(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Estimate{}, entities.ErrInvalidEstimateTitle
	}

	draft, rejected := buildDraft(in.LineItems)
	if len(rejected) > 0 {
		r := rejected[0]
		return entities.Estimate{}, fmt.Errorf("%w: item %d: %w", ErrInvalidLineItem, r.Index, r.Reason)
	}
	if draft.Len() == 0 {
		return entities.Estimate{}, ErrEstimateWithoutItems
	}
	if !u.store.Ready() {
		return entities.Estimate{}, ErrStoreNotReady
	}

	totals := draft.Totals()
	return u.store.AddEstimate(ctx, entities.Estimate{
		ClientID:    strings.TrimSpace(in.ClientID),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		LineItems:   draft.Items(),
		Subtotal:    totals.Subtotal,
		Tax:         totals.Tax,
		Total:       totals.Total,
		Status:      entities.EstimateStatusDraft,
	})
}

func (u *EstimateUseCase) ListEstimates(_ context.Context) ([]entities.Estimate, error) {
	if !u.store.Ready() {
		return nil, ErrStoreNotReady
	}
	return u.store.Estimates(), nil
}

func buildDraft(items []LineItemInput) (*pricing.Draft, []RejectedLineItem) {
	draft := pricing.NewDraft()
	var rejected []RejectedLineItem
	for i, in := range items {
		if _, err := draft.AddText(in.Description, in.Quantity, in.UnitPrice); err != nil {
			rejected = append(rejected, RejectedLineItem{Index: i, Reason: err})
		}
	}
	return draft, rejected
}
