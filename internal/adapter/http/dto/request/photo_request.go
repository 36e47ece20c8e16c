package request

import (
	"contractor_pro/internal/domain/entities"
	"contractor_pro/internal/usecase"
)

type PhotoRequest struct {
	URI        string `json:"uri"`
	ClientID   string `json:"client_id"`
	EstimateID string `json:"estimate_id"`
	Caption    string `json:"caption"`
	PhotoType  string `json:"photo_type"`
}

// PhotoUploadRequest is either a single photo or a {"photos": [...]} batch
// from a library selection.
type PhotoUploadRequest struct {
	PhotoRequest
	Photos []PhotoRequest `json:"photos"`
}

func (r PhotoUploadRequest) IsBatch() bool {
	return r.Photos != nil
}

func (r PhotoRequest) ToInput() usecase.AddPhotoInput {
	return usecase.AddPhotoInput{
		URI:        r.URI,
		ClientID:   r.ClientID,
		EstimateID: r.EstimateID,
		Caption:    r.Caption,
		PhotoType:  entities.PhotoType(r.PhotoType),
	}
}

func (r PhotoUploadRequest) ToInputs() []usecase.AddPhotoInput {
	out := make([]usecase.AddPhotoInput, 0, len(r.Photos))
	for _, p := range r.Photos {
		out = append(out, p.ToInput())
	}
	return out
}
