package routes

import (
	"time"

	"creatoramp-backend/handlers/auth"
	"creatoramp-backend/handlers/campaigns"
	"creatoramp-backend/handlers/payments"
	"creatoramp-backend/handlers/ping"
	"creatoramp-backend/handlers/submissions"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the constructed handlers the router wires up. Everything is
// built in main and passed down; no package holds shared state.
type Handlers struct {
	Auth        *auth.Handler
	Ping        *ping.Handler
	Campaigns   *campaigns.Handler
	Submissions *submissions.Handler
	Payments    *payments.Handler
}

func SetupRouter(h Handlers) *gin.Engine {

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	AuthRoutes(r, h.Auth)
	PingRoutes(r, h.Ping)
	CampaignsRoutes(r, h.Campaigns)
	SubmissionsRoutes(r, h.Submissions)
	PaymentsRoutes(r, h.Payments)

	return r
}
