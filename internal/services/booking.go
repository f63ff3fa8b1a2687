package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Omaralabdullah051/doctors-portal-server/internal/models"
	"github.com/Omaralabdullah051/doctors-portal-server/internal/store"
	"github.com/Omaralabdullah051/doctors-portal-server/pkg/logging"
)

// CreateResult reports the outcome of a booking request. Created is false
// when a booking for the same (treatment, date, patient) already existed;
// Booking then carries the existing record. This is a normal outcome, not
// an error.
type CreateResult struct {
	Created bool
	Booking *models.Booking
}

// BookingService is the registrar for appointment bookings. It enforces
// at most one booking per (treatment, date, patient): the read-first check
// handles the common repeat request, and the collection's unique index
// settles the concurrent race, with the losing insert translated back into
// the same already-exists outcome.
type BookingService struct {
	bookings store.BookingStore
	notifier *NotificationService
	logger   *logging.Logger
}

func NewBookingService(bookings store.BookingStore, notifier *NotificationService, logger *logging.Logger) *BookingService {
	if logger == nil {
		logger = logging.Default()
	}
	return &BookingService{bookings: bookings, notifier: notifier, logger: logger}
}

// Create registers a new booking. A confirmation email is dispatched
// fire-and-forget on success only.
func (s *BookingService) Create(ctx context.Context, booking *models.Booking) (*CreateResult, error) {
	existing, err := s.bookings.FindByKey(ctx, booking.Treatment, booking.Date, booking.Patient)
	if err == nil {
		return &CreateResult{Created: false, Booking: existing}, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check existing booking: %w", err)
	}

	booking.Paid = false
	booking.TransactionID = ""
	err = s.bookings.Insert(ctx, booking)
	if errors.Is(err, store.ErrDuplicate) {
		// Lost the race to a concurrent request; return the winner's record.
		winner, ferr := s.bookings.FindByKey(ctx, booking.Treatment, booking.Date, booking.Patient)
		if ferr != nil {
			return nil, fmt.Errorf("load winning booking after duplicate insert: %w", ferr)
		}
		return &CreateResult{Created: false, Booking: winner}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	s.notifier.SendBookingConfirmation(booking)
	return &CreateResult{Created: true, Booking: booking}, nil
}

// ListByPatient returns all bookings belonging to one patient.
func (s *BookingService) ListByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	return s.bookings.FindByPatient(ctx, patient)
}

// Get returns one booking by id.
func (s *BookingService) Get(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	return s.bookings.FindByID(ctx, id)
}
