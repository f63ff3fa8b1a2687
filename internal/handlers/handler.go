package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Omaralabdullah051/doctors-portal-server/internal/services"
	"github.com/Omaralabdullah051/doctors-portal-server/internal/store"
	"github.com/Omaralabdullah051/doctors-portal-server/pkg/logging"
)

// Handler carries the stores and services the route handlers need.
type Handler struct {
	Services store.ServiceStore
	Bookings store.BookingStore
	Users    store.UserStore
	Doctors  store.DoctorStore

	BookingSvc *services.BookingService
	PaymentSvc *services.PaymentService
	StripeSvc  *services.StripeService

	JWTExpiry time.Duration
	Logger    *logging.Logger
}

// Deps lists everything a Handler needs; NewHandler wires it together.
type Deps struct {
	Services store.ServiceStore
	Bookings store.BookingStore
	Users    store.UserStore
	Doctors  store.DoctorStore

	BookingSvc *services.BookingService
	PaymentSvc *services.PaymentService
	StripeSvc  *services.StripeService

	JWTExpiry time.Duration
	Logger    *logging.Logger
}

func NewHandler(d Deps) *Handler {
	if d.Logger == nil {
		d.Logger = logging.Default()
	}
	return &Handler{
		Services:   d.Services,
		Bookings:   d.Bookings,
		Users:      d.Users,
		Doctors:    d.Doctors,
		BookingSvc: d.BookingSvc,
		PaymentSvc: d.PaymentSvc,
		StripeSvc:  d.StripeSvc,
		JWTExpiry:  d.JWTExpiry,
		Logger:     d.Logger,
	}
}

// Greet answers the root route.
func (h *Handler) Greet(c *gin.Context) {
	c.String(http.StatusOK, "Hello! How are you?")
}

// serverError logs the fault server-side and returns an opaque 500.
func (h *Handler) serverError(c *gin.Context, op string, err error) {
	h.Logger.Error("request failed", "op", op, "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "There was a server side error"})
}
