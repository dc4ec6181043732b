package routes

import (
	"creatoramp-backend/handlers/submissions"
	"creatoramp-backend/middleware"

	"github.com/gin-gonic/gin"
)

func SubmissionsRoutes(r *gin.Engine, h *submissions.Handler) {
	submissionsRoutes := r.Group("/submissions")
	submissionsRoutes.Use(middleware.JWTAuth())
	{
		submissionsRoutes.POST("", h.CreateSubmission)
		submissionsRoutes.GET("", h.ListSubmissions)
		submissionsRoutes.GET("/:id", h.GetSubmissionByID)
		submissionsRoutes.GET("/:id/feedback", h.ListFeedback)
	}

	// Review and publish are reviewer actions (admin or artist)
	reviewRoutes := r.Group("/submissions")
	reviewRoutes.Use(middleware.ReviewerAuth())
	{
		reviewRoutes.POST("/:id/review", h.ReviewSubmission)
		reviewRoutes.POST("/:id/publish", h.PublishSubmission)
	}
}
