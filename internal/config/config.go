package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// HTTP
	APIPort     string   `envconfig:"API_PORT" default:"8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
	// Storage
	MongoURI      string `envconfig:"MONGO_URI" required:"true"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"doctors_portal"`
	// JWT
	JWTSecret      string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiryHours int    `envconfig:"JWT_EXPIRY_HOURS" default:"24"`
	// Payments
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`
	// Email
	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY"`
	EmailSender    string `envconfig:"EMAIL_SENDER"`
	EmailFromName  string `envconfig:"EMAIL_FROM_NAME" default:"Doctors Portal"`
	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
