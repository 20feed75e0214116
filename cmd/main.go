package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"trackforce/internal/config"
	"trackforce/internal/db"
	"trackforce/internal/handlers"
	"trackforce/internal/logger"
	"trackforce/internal/middleware"
	"trackforce/internal/services"
	"trackforce/internal/storage"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment variables")
	}

	cfg := config.New()
	logger.Init(cfg.Env, cfg.LogLevel)

	// Connect to MongoDB; startup failures are fatal by design
	client, err := db.Connect(cfg.Mongo.URI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	database := client.Database(cfg.Mongo.Database)
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

	// Connect to MinIO for payslip storage
	objectStore, err := storage.Connect(cfg.Minio)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MinIO")
	}

	// Services
	peopleService := services.NewPeopleService(database)
	workService := services.NewWorkService(database)
	paymentService := services.NewPaymentService(database)
	reviewService := services.NewReviewService(database)
	authService := services.NewAuthService(database, cfg.Auth.JWTSecret, cfg.Auth.TokenTTLHour)
	billingService := services.NewBillingService(cfg.Stripe.SecretKey)
	payslipService := services.NewPayslipService(database, objectStore, cfg.Minio.Bucket)

	// Handlers
	peopleHandler := handlers.NewPeopleHandler(peopleService, paymentService)
	workHandler := handlers.NewWorkHandler(workService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, payslipService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	authHandler := handlers.NewAuthHandler(authService)
	billingHandler := handlers.NewBillingHandler(billingService)

	// Initialize Fiber
	app := fiber.New()
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	auth := middleware.RequireAuth(cfg.Auth.JWTSecret)
	hr := middleware.RequireHR()

	// Liveness
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("TrackForce server is running")
	})

	// Auth
	app.Post("/auth/login", authHandler.Login)

	// People
	app.Get("/peoples", auth, peopleHandler.ListEmployees)
	app.Get("/peoples/verified", auth, peopleHandler.ListVerified)
	app.Get("/peoples/role/:email", auth, peopleHandler.RoleByEmail)
	app.Get("/peoples/:id", peopleHandler.GetByID)
	app.Post("/peoples", peopleHandler.Register)
	app.Patch("/peoples/fire/:id", auth, hr, peopleHandler.Fire)
	app.Patch("/peoples/promote/:id", auth, hr, peopleHandler.Promote)
	app.Patch("/peoples/salary/:id", auth, hr, peopleHandler.SetSalary)
	app.Patch("/peoples/:id", auth, peopleHandler.ToggleVerified)

	// Works
	app.Get("/works", auth, workHandler.List)
	app.Get("/works/:id", auth, workHandler.Get)
	app.Post("/works", auth, workHandler.Create)
	app.Patch("/works/:id", auth, workHandler.Update)
	app.Delete("/works/:id", auth, workHandler.Delete)

	// Payments
	app.Get("/payment-requests", auth, hr, paymentHandler.List)
	app.Patch("/payment-requests/:id/pay", auth, hr, paymentHandler.MarkPaid)
	app.Get("/payment-history", auth, paymentHandler.History)
	app.Get("/payment/:id/payslip", auth, paymentHandler.Payslip)
	app.Get("/payment/:id", auth, paymentHandler.Get)
	app.Post("/payment", auth, paymentHandler.Create)
	app.Post("/payments", auth, paymentHandler.Create)

	// Reviews
	app.Post("/reviews", reviewHandler.Create)

	// Payment intents
	app.Post("/create-payment-intent", billingHandler.CreatePaymentIntent)

	// Start server
	go func() {
		if err := app.Listen(cfg.Server.Address()); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	// Graceful shutdown: close the listener, then the database connection
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := db.Disconnect(client); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect failed")
	}
}
