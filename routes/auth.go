package routes

import (
	"creatoramp-backend/handlers/auth"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine, h *auth.Handler) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
}
