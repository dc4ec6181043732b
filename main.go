package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creatoramp-backend/db"
	_ "creatoramp-backend/docs"
	"creatoramp-backend/events"
	"creatoramp-backend/handlers/auth"
	"creatoramp-backend/handlers/campaigns"
	"creatoramp-backend/handlers/payments"
	"creatoramp-backend/handlers/ping"
	"creatoramp-backend/handlers/submissions"
	"creatoramp-backend/repository"
	"creatoramp-backend/routes"
	"creatoramp-backend/utils"
	"creatoramp-backend/workflow"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title CreatorAmp API
// @version 1.0
// @description Marketplace API connecting music artists with TikTok creators
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = utils.LogWriter()

	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, using the system environment")
	}

	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		utils.LogError(nil, "The environment variable DB_URL must be defined")
		os.Exit(1)
	}

	database, err := db.Connect(dsn)
	if err != nil {
		utils.LogError(err, "Could not connect to the database")
		os.Exit(1)
	}

	submissionRepo := repository.NewSubmissionRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)
	feedbackRepo := repository.NewFeedbackRepository(database)

	bus := events.NewBus(64)
	issuer := events.NewPaymentIssuer(submissionRepo, paymentRepo)
	issuer.Start(bus)

	engine := workflow.NewEngine(submissionRepo, feedbackRepo, bus)

	r := routes.SetupRouter(routes.Handlers{
		Auth:        auth.New(database),
		Ping:        ping.New(),
		Campaigns:   campaigns.New(database),
		Submissions: submissions.New(engine, submissionRepo, feedbackRepo),
		Payments:    payments.New(paymentRepo),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		utils.LogInfo("Server listening on :" + port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.LogError(err, "Error starting the server")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.LogInfo("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		utils.LogError(err, "Error during server shutdown")
	}

	// drain pending approval events before closing the store
	bus.Close()
	issuer.Wait()

	if err := db.Close(database); err != nil {
		utils.LogError(err, "Error closing the database")
	}
}
