package routes

import (
	"creatoramp-backend/handlers/campaigns"
	"creatoramp-backend/middleware"

	"github.com/gin-gonic/gin"
)

func CampaignsRoutes(r *gin.Engine, h *campaigns.Handler) {
	// Public routes
	r.GET("/campaigns", h.GetAllCampaigns)
	r.GET("/campaigns/:id", h.GetCampaignByID)

	// Protected routes
	campaignsRoutes := r.Group("/campaigns")
	campaignsRoutes.Use(middleware.JWTAuth())
	{
		campaignsRoutes.POST("", h.CreateCampaign)
		campaignsRoutes.POST("/:id/apply", h.ApplyToCampaign)
	}

	// Application decisions require a reviewer role
	decisionRoutes := r.Group("/campaigns")
	decisionRoutes.Use(middleware.ReviewerAuth())
	{
		decisionRoutes.POST("/:id/applications/:creatorId", h.DecideApplication)
	}
}
