package handlers

import (
	"net/http"

	response "contractor_pro/internal/adapter/http/dto/response"
	"contractor_pro/internal/usecase"
	"contractor_pro/pkg/logger"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
	log     logger.Logger
}

func NewDashboardHandler(uc usecase.IDashboardUseCase, log logger.Logger) *DashboardHandler {
	return &DashboardHandler{usecase: uc, log: log.WithComponent("dashboard_handler")}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	d, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr, ok := mapCommonError(err)
		if !ok {
			appErr = errInternal
		}
		writeError(c, h.log, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}
