package routes

import (
	"creatoramp-backend/handlers/ping"

	"github.com/gin-gonic/gin"
)

func PingRoutes(r *gin.Engine, h *ping.Handler) {
	r.GET("/healthcheck", h.HandlePing)
}
