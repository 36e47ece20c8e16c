package entities

import "time"

// PhotoType tags a job-site photo relative to the work.

type PhotoType string

const (
	PhotoTypeBefore   PhotoType = "before"
	PhotoTypeAfter    PhotoType = "after"
	PhotoTypeProgress PhotoType = "progress"
)

// IsValid reports whether t is one of the known types. The empty type is
// valid because the field is optional.
func (t PhotoType) IsValid() bool {
	switch t {
	case "", PhotoTypeBefore, PhotoTypeAfter, PhotoTypeProgress:
		return true
	}
	return false
}

// Photo references image content captured on a job site.
//
// URI is opaque: the image bytes live wherever the camera or library picker
// put them. Photos are immutable once created, so there is no UpdatedAt.
type Photo struct {
	ID         string    `json:"id"`
	URI        string    `json:"uri"`
	ClientID   string    `json:"clientId,omitempty"`
	EstimateID string    `json:"estimateId,omitempty"`
	Caption    string    `json:"caption,omitempty"`
	PhotoType  PhotoType `json:"photoType,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
