package routes

import (
	"creatoramp-backend/handlers/payments"
	"creatoramp-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PaymentsRoutes(r *gin.Engine, h *payments.Handler) {
	paymentsRoutes := r.Group("/payments")
	paymentsRoutes.Use(middleware.AdminAuth())
	{
		paymentsRoutes.GET("", h.ListPayments)
	}
}
