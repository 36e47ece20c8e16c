package response

import (
	"errors"
	"testing"
	"time"

	"contractor_pro/internal/domain/entities"
	"contractor_pro/internal/domain/pricing"
	"contractor_pro/internal/usecase"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:        "est-1",
		ClientID:  "c-1",
		Title:     "Deck",
		LineItems: []entities.EstimateLineItem{{ID: "li-1", Description: "Boards", Quantity: 2, UnitPrice: 10, Total: 20}},
		Subtotal:  20,
		Tax:       1.6,
		Total:     21.6,
		Status:    entities.EstimateStatusSent,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromEstimate(e)
	if res.ID != "est-1" || res.ClientID != "c-1" || res.Title != "Deck" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Total != 21.6 || res.Status != "sent" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.LineItems) != 1 || res.LineItems[0].UnitPrice != 10 {
		t.Fatalf("unexpected line items: %+v", res.LineItems)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromEstimates_Empty(t *testing.T) {
	res := FromEstimates(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res)
	}
}

func TestFromEstimatePreview(t *testing.T) {
	res := FromEstimatePreview(usecase.EstimatePreview{
		LineItems: []entities.EstimateLineItem{{ID: "li-1", Total: 5}},
		Totals:    pricing.Totals{Subtotal: 5, Tax: 0.4, Total: 5.4},
		Rejected:  []usecase.RejectedLineItem{{Index: 1, Reason: errors.New("invalid line item unit price")}},
	})
	if res.Subtotal != 5 || res.Tax != 0.4 || res.Total != 5.4 {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if len(res.Rejected) != 1 || res.Rejected[0].Index != 1 || res.Rejected[0].Reason != "invalid line item unit price" {
		t.Fatalf("unexpected rejections: %+v", res.Rejected)
	}
}

func TestFromClientAndPhoto(t *testing.T) {
	c := FromClient(entities.Client{ID: "c-1", Name: "Ann", Phone: "555"})
	if c.ID != "c-1" || c.Name != "Ann" || c.Phone != "555" {
		t.Fatalf("unexpected client: %+v", c)
	}

	ps := FromPhotos([]entities.Photo{{ID: "p-2", URI: "b", PhotoType: entities.PhotoTypeProgress}, {ID: "p-1", URI: "a"}})
	if len(ps) != 2 || ps[0].ID != "p-2" || ps[0].PhotoType != "progress" {
		t.Fatalf("unexpected photos: %+v", ps)
	}
}

func TestFromDashboard(t *testing.T) {
	d := FromDashboard(usecase.Dashboard{Estimates: 3, Clients: 2, Photos: 1})
	if d != (DashboardResponse{Estimates: 3, Clients: 2, Photos: 1}) {
		t.Fatalf("unexpected dashboard: %+v", d)
	}
}
