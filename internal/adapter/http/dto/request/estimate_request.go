package request

import "contractor_pro/internal/usecase"

type LineItemRequest struct {
	Description string     `json:"description"`
	Quantity    NumberText `json:"quantity"`
	UnitPrice   NumberText `json:"unit_price"`
}

// EstimateRequest creates an estimate. Totals are always derived from the
// line items, never taken from the payload.
type EstimateRequest struct {
	ClientID    string            `json:"client_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	LineItems   []LineItemRequest `json:"line_items"`
}

type EstimatePreviewRequest struct {
	LineItems []LineItemRequest `json:"line_items"`
}

func (r EstimateRequest) ToInput() usecase.CreateEstimateInput {
	return usecase.CreateEstimateInput{
		ClientID:    r.ClientID,
		Title:       r.Title,
		Description: r.Description,
		LineItems:   toLineItemInputs(r.LineItems),
	}
}

func (r EstimatePreviewRequest) ToInput() []usecase.LineItemInput {
	return toLineItemInputs(r.LineItems)
}

func toLineItemInputs(items []LineItemRequest) []usecase.LineItemInput {
	out := make([]usecase.LineItemInput, 0, len(items))
	for _, li := range items {
		out = append(out, usecase.LineItemInput{
			Description: li.Description,
			Quantity:    li.Quantity.String(),
			UnitPrice:   li.UnitPrice.String(),
		})
	}
	return out
}
