package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Omaralabdullah051/doctors-portal-server/internal/config"
	"github.com/Omaralabdullah051/doctors-portal-server/internal/handlers"
	"github.com/Omaralabdullah051/doctors-portal-server/internal/metrics"
	"github.com/Omaralabdullah051/doctors-portal-server/internal/middleware"
	"github.com/Omaralabdullah051/doctors-portal-server/internal/services"
	"github.com/Omaralabdullah051/doctors-portal-server/internal/store"
	"github.com/Omaralabdullah051/doctors-portal-server/pkg/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := logging.New(cfg.LogLevel)

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDatabase)
	if err := store.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	logger.Info("connected to MongoDB", "database", cfg.MongoDatabase)

	// --- Stores ---
	serviceStore := store.NewMongoServiceStore(db)
	bookingStore := store.NewMongoBookingStore(db)
	userStore := store.NewMongoUserStore(db)
	doctorStore := store.NewMongoDoctorStore(db)
	paymentStore := store.NewMongoPaymentStore(db)

	// --- Services ---
	var emailSender services.EmailSender
	if sg := services.NewSendGridSender(cfg.SendGridAPIKey, cfg.EmailSender, cfg.EmailFromName, logger); sg != nil {
		emailSender = sg
	} else {
		emailSender = services.NewStubEmailSender(logger)
	}
	notificationSvc := services.NewNotificationService(emailSender, logger)
	bookingSvc := services.NewBookingService(bookingStore, notificationSvc, logger)
	paymentSvc := services.NewPaymentService(bookingStore, paymentStore, notificationSvc, logger)
	stripeSvc := services.NewStripeService(cfg.StripeSecretKey, logger)

	h := handlers.NewHandler(handlers.Deps{
		Services:   serviceStore,
		Bookings:   bookingStore,
		Users:      userStore,
		Doctors:    doctorStore,
		BookingSvc: bookingSvc,
		PaymentSvc: paymentSvc,
		StripeSvc:  stripeSvc,
		JWTExpiry:  time.Duration(cfg.JWTExpiryHours) * time.Hour,
		Logger:     logger,
	})

	// --- Gin Router ---
	r := gin.Default()

	// --- Middleware ---
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	collector := metrics.NewCollector()
	r.Use(collector.Middleware())

	// --- Routes ---
	r.GET("/", h.Greet)
	r.GET("/metrics", gin.WrapH(collector.Handler()))

	// Public
	r.GET("/service", h.GetServices)
	r.GET("/available", h.GetAvailable)
	r.POST("/booking", h.CreateBooking)
	r.PUT("/user/:email", h.UpsertUser)
	r.GET("/admin/:email", h.CheckAdmin)

	// Authenticated
	authed := r.Group("/")
	authed.Use(middleware.Authenticate())
	{
		authed.GET("/booking", h.GetBookings)
		authed.GET("/booking/:id", h.GetBooking)
		authed.PATCH("/booking/:id", h.PayBooking)
		authed.POST("/create-payment-intent", h.CreatePaymentIntent)
		authed.GET("/user", h.GetUsers)

		// Administrative
		admin := authed.Group("/")
		admin.Use(middleware.RequireAdmin(userStore))
		{
			admin.PUT("/user/admin/:email", h.PromoteAdmin)
			admin.POST("/doctor", h.CreateDoctor)
			admin.GET("/doctor", h.GetDoctors)
			admin.DELETE("/doctor/:email", h.DeleteDoctor)
		}
	}

	logger.Info("starting server", "port", cfg.APIPort)
	if err := r.Run(":" + cfg.APIPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
