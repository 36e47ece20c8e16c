package routes

import (
	"contractor_pro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients   = "/clients"
	PathEstimates = "/estimates"
	PathPhotos    = "/photos"
	PathDashboard = "/dashboard"
)

func addPingRoutes(rg *gin.RouterGroup, h *handlers.HealthHandler) {
	rg.GET("/ping", h.Ping)
	rg.GET("/health", h.Health)
}

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", h.ListClients)
		clients.POST("", h.CreateClient)
	}
}

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", h.ListEstimates)
		estimates.POST("", h.CreateEstimate)
		estimates.POST("/preview", h.PreviewEstimate)
	}
}

func addPhotoRoutes(rg *gin.RouterGroup, h *handlers.PhotoHandler) {
	photos := rg.Group(PathPhotos)
	{
		photos.GET("", h.ListPhotos)
		photos.POST("", h.AddPhotos)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.GET(PathDashboard, h.GetDashboard)
}
