package handlers

import (
	"errors"
	"net/http"

	"contractor_pro/internal/domain/entities"
	"contractor_pro/internal/usecase"
	"contractor_pro/pkg"
	"contractor_pro/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	errStoreNotReady = pkg.NewDomainErrorSimple("STORE_NOT_READY", "Data is still loading", http.StatusServiceUnavailable)
	errInternal      = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

// mapCommonError handles the errors every use case can return. It reports
// false for errors the caller has to map itself.
func mapCommonError(err error) (*pkg.AppError, bool) {
	switch {
	case errors.Is(err, usecase.ErrStoreNotReady):
		return errStoreNotReady, true
	case errors.Is(err, entities.ErrPersistFailed):
		return pkg.NewDomainError("PERSIST_FAILED", "Saved in memory but not written to storage", err, http.StatusInternalServerError), true
	}
	return nil, false
}

func writeError(c *gin.Context, log logger.Logger, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.WithFields(map[string]interface{}{
			"code":   appErr.Code,
			"path":   c.FullPath(),
			"method": c.Request.Method,
		}).WithError(appErr).Errorf("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
