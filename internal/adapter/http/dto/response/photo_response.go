package response

import (
	"time"

	"contractor_pro/internal/domain/entities"
)

type PhotoResponse struct {
	ID         string    `json:"id"`
	URI        string    `json:"uri"`
	ClientID   string    `json:"client_id,omitempty"`
	EstimateID string    `json:"estimate_id,omitempty"`
	Caption    string    `json:"caption,omitempty"`
	PhotoType  string    `json:"photo_type,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type PhotoBatchResponse struct {
	Photos []PhotoResponse `json:"photos"`
}

func FromPhoto(p entities.Photo) PhotoResponse {
	return PhotoResponse{
		ID:         p.ID,
		URI:        p.URI,
		ClientID:   p.ClientID,
		EstimateID: p.EstimateID,
		Caption:    p.Caption,
		PhotoType:  string(p.PhotoType),
		CreatedAt:  p.CreatedAt,
	}
}

func FromPhotos(ps []entities.Photo) []PhotoResponse {
	out := make([]PhotoResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPhoto(p))
	}
	return out
}
