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

// ErrBookingNotFound is returned when a payment references a booking that
// does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// PaymentService records completed payments and flips the referenced
// booking to paid. The payment insert and the booking update are two
// sequential writes, not one transaction: a crash between them leaves a
// payment record without the booking flagged paid, which is logged when
// detectable but otherwise accepted.
type PaymentService struct {
	bookings store.BookingStore
	payments store.PaymentStore
	notifier *NotificationService
	logger   *logging.Logger
}

func NewPaymentService(bookings store.BookingStore, payments store.PaymentStore, notifier *NotificationService, logger *logging.Logger) *PaymentService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PaymentService{bookings: bookings, payments: payments, notifier: notifier, logger: logger}
}

// Finalize appends the payment record and marks the booking paid. The
// booking is loaded first so a payment against a missing booking fails with
// ErrBookingNotFound before anything is written.
func (s *PaymentService) Finalize(ctx context.Context, bookingID primitive.ObjectID, payment *models.Payment) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load booking: %w", err)
	}

	payment.BookingID = bookingID
	if payment.Patient == "" {
		payment.Patient = booking.Patient
	}
	if err := s.payments.Insert(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	matched, err := s.bookings.MarkPaid(ctx, bookingID, payment.TransactionID)
	if err != nil {
		s.logger.Error("payment recorded but booking update failed",
			"bookingId", bookingID.Hex(), "transactionId", payment.TransactionID, "error", err)
		return nil, fmt.Errorf("mark booking paid: %w", err)
	}
	if matched == 0 {
		s.logger.Error("payment recorded but booking vanished before update",
			"bookingId", bookingID.Hex(), "transactionId", payment.TransactionID)
		return nil, ErrBookingNotFound
	}

	booking.Paid = true
	booking.TransactionID = payment.TransactionID
	s.notifier.SendPaymentConfirmation(booking)
	return booking, nil
}
