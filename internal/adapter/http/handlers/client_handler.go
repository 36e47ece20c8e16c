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

var errInvalidClientPayload = pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)

// ClientHandler handles HTTP requests for clients.

type ClientHandler struct {
	usecase usecase.IClientUseCase
	log     logger.Logger
}

func NewClientHandler(uc usecase.IClientUseCase, log logger.Logger) *ClientHandler {
	return &ClientHandler{usecase: uc, log: log.WithComponent("client_handler")}
}

// ListClients returns clients, filtered by ?search= on the name.
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.ListClients(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeError(c, h.log, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.CreateClient(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapClientError(err)
		if errors.Is(err, entities.ErrPersistFailed) {
			appErr = appErr.WithDetail("id", client.ID)
		}
		writeError(c, h.log, appErr)
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(client))
}

func mapClientError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, entities.ErrInvalidClientName):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT_NAME", "Client name is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
