package entities

import "time"

// EstimateStatus represents the lifecycle of a price estimate.
//
// New estimates always start as draft. No transition rules exist yet; the
// remaining values are accepted so persisted estimates keep their status.

type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusAccepted EstimateStatus = "accepted"
	EstimateStatusRejected EstimateStatus = "rejected"
)

func (s EstimateStatus) IsValid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusSent, EstimateStatusAccepted, EstimateStatusRejected:
		return true
	}
	return false
}

// EstimateLineItem is one priced row of an estimate.
//
// Total is derived (Quantity x UnitPrice) by the pricing package.
type EstimateLineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// Estimate is a price estimate for a client.
//
// ClientID is a weak reference: the client is not required to exist.
// Subtotal, Tax and Total are supplied by the caller; the data store stores
// them as given.
type Estimate struct {
	ID          string             `json:"id"`
	ClientID    string             `json:"clientId"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	LineItems   []EstimateLineItem `json:"lineItems"`
	Subtotal    float64            `json:"subtotal"`
	Tax         float64            `json:"tax"`
	Total       float64            `json:"total"`
	Status      EstimateStatus     `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}
