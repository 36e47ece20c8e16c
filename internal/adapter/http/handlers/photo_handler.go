package handlers

import (
	"errors"
	"net/http"

	request "contractor_pro/internal/adapter/http/dto/request"
	response "contractor_pro/internal/adapter/http/dto/response"
	"contractor_pro/internal/domain/entities"
	"contractor_pro/internal/usecase"
	"contractor_pro/pkg"
	"contractor_pro/pkg/logger"

	"github.com/gin-gonic/gin"
)

var errInvalidPhotoPayload = pkg.NewDomainErrorSimple("INVALID_PHOTO_INPUT", "Invalid photo payload", http.StatusBadRequest)

// PhotoHandler handles HTTP requests for job-site photos.

type PhotoHandler struct {
	usecase usecase.IPhotoUseCase
	log     logger.Logger
}

func NewPhotoHandler(uc usecase.IPhotoUseCase, log logger.Logger) *PhotoHandler {
	return &PhotoHandler{usecase: uc, log: log.WithComponent("photo_handler")}
}

// ListPhotos returns photos newest first.
func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	photos, err := h.usecase.ListPhotos(c.Request.Context())
	if err != nil {
		writeError(c, h.log, mapPhotoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPhotos(photos))
}

// AddPhotos accepts a single photo or a {"photos": [...]} batch.
func (h *PhotoHandler) AddPhotos(c *gin.Context) {
	var payload request.PhotoUploadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPhotoPayload.HTTPStatus, errInvalidPhotoPayload.ToHTTPError())
		return
	}

	if !payload.IsBatch() {
		photo, err := h.usecase.AddPhoto(c.Request.Context(), payload.ToInput())
		if err != nil {
			appErr := mapPhotoError(err)
			if errors.Is(err, entities.ErrPersistFailed) {
				appErr = appErr.WithDetail("id", photo.ID)
			}
			writeError(c, h.log, appErr)
			return
		}
		c.JSON(http.StatusCreated, response.FromPhoto(photo))
		return
	}

	photos, err := h.usecase.AddPhotos(c.Request.Context(), payload.ToInputs())
	if err != nil {
		appErr := mapPhotoError(err)
		if len(photos) > 0 {
			appErr = appErr.WithDetail("added", len(photos))
		}
		writeError(c, h.log, appErr)
		return
	}
	c.JSON(http.StatusCreated, response.PhotoBatchResponse{Photos: response.FromPhotos(photos)})
}

func mapPhotoError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, entities.ErrInvalidPhotoURI):
		return pkg.NewDomainErrorSimple("INVALID_PHOTO_URI", "Photo uri is required", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidPhotoType):
		return pkg.NewDomainErrorSimple("INVALID_PHOTO_TYPE", "Photo type must be before, after or progress", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyPhotoBatch):
		return pkg.NewDomainErrorSimple("EMPTY_PHOTO_BATCH", "No photos selected", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
