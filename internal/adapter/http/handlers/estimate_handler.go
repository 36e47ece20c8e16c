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

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler handles HTTP requests for estimates.
//
// Amounts are always computed server side; the preview endpoint lets the
// form show live totals for a draft.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	log     logger.Logger
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, log logger.Logger) *EstimateHandler {
	return &EstimateHandler{usecase: uc, log: log.WithComponent("estimate_handler")}
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	estimates, err := h.usecase.ListEstimates(c.Request.Context())
	if err != nil {
		writeError(c, h.log, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

func (h *EstimateHandler) PreviewEstimate(c *gin.Context) {
	var payload request.EstimatePreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	preview, err := h.usecase.PreviewEstimate(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, h.log, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimatePreview(preview))
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.CreateEstimate(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapEstimateError(err)
		if errors.Is(err, entities.ErrPersistFailed) {
			appErr = appErr.WithDetail("id", estimate.ID)
		}
		writeError(c, h.log, appErr)
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func mapEstimateError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, entities.ErrInvalidEstimateTitle):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_TITLE", "Estimate title is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateWithoutItems):
		return pkg.NewDomainErrorSimple("ESTIMATE_WITHOUT_ITEMS", "Estimate needs at least one line item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_LINE_ITEM", "Line items need a description and a unit price above zero", http.StatusBadRequest).
			WithDetail("reason", err.Error())
	case errors.Is(err, entities.ErrInvalidEstimateStatus):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_STATUS", "Invalid estimate status", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
