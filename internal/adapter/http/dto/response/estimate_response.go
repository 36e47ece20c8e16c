package response

import (
	"time"

	"contractor_pro/internal/domain/entities"
	"contractor_pro/internal/usecase"
)

type LineItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type EstimateResponse struct {
	ID          string             `json:"id"`
	ClientID    string             `json:"client_id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	LineItems   []LineItemResponse `json:"line_items"`
	Subtotal    float64            `json:"subtotal"`
	Tax         float64            `json:"tax"`
	Total       float64            `json:"total"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type RejectedLineItemResponse struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type EstimatePreviewResponse struct {
	LineItems []LineItemResponse         `json:"line_items"`
	Subtotal  float64                    `json:"subtotal"`
	Tax       float64                    `json:"tax"`
	Total     float64                    `json:"total"`
	Rejected  []RejectedLineItemResponse `json:"rejected"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:          e.ID,
		ClientID:    e.ClientID,
		Title:       e.Title,
		Description: e.Description,
		LineItems:   fromLineItems(e.LineItems),
		Subtotal:    e.Subtotal,
		Tax:         e.Tax,
		Total:       e.Total,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromEstimates(es []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEstimate(e))
	}
	return out
}

func FromEstimatePreview(p usecase.EstimatePreview) EstimatePreviewResponse {
	rejected := make([]RejectedLineItemResponse, 0, len(p.Rejected))
	for _, r := range p.Rejected {
		rejected = append(rejected, RejectedLineItemResponse{Index: r.Index, Reason: r.Reason.Error()})
	}
	return EstimatePreviewResponse{
		LineItems: fromLineItems(p.LineItems),
		Subtotal:  p.Totals.Subtotal,
		Tax:       p.Totals.Tax,
		Total:     p.Totals.Total,
		Rejected:  rejected,
	}
}

func fromLineItems(items []entities.EstimateLineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, li := range items {
		out = append(out, LineItemResponse{
			ID:          li.ID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Total:       li.Total,
		})
	}
	return out
}
