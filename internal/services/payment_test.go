package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Omaralabdullah051/doctors-portal-server/internal/models"
	"github.com/Omaralabdullah051/doctors-portal-server/pkg/logging"
)

func newPaymentFixture() (*PaymentService, *fakeBookingStore, *fakePaymentStore, *recordingSender) {
	bookings := &fakeBookingStore{}
	payments := &fakePaymentStore{}
	sender := &recordingSender{}
	notifier := NewNotificationService(sender, logging.New("error"))
	svc := NewPaymentService(bookings, payments, notifier, logging.New("error"))
	return svc, bookings, payments, sender
}

func TestFinalizePayment(t *testing.T) {
	svc, bookings, payments, sender := newPaymentFixture()
	ctx := context.Background()

	booking := testBooking()
	require.NoError(t, bookings.Insert(ctx, booking))

	updated, err := svc.Finalize(ctx, booking.ID, &models.Payment{
		TransactionID: "txn_123",
		Amount:        7500,
	})
	require.NoError(t, err)
	assert.True(t, updated.Paid)
	assert.Equal(t, "txn_123", updated.TransactionID)

	stored, err := bookings.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.True(t, stored.Paid)
	assert.Equal(t, "txn_123", stored.TransactionID)

	require.Len(t, payments.payments, 1)
	assert.Equal(t, booking.ID, payments.payments[0].BookingID)
	assert.Equal(t, "a@x.com", payments.payments[0].Patient, "patient backfilled from booking")

	assert.Eventually(t, func() bool { return sender.count() == 1 }, waitFor, tick)
}

func TestFinalizePaymentMissingBooking(t *testing.T) {
	svc, _, payments, _ := newPaymentFixture()

	_, err := svc.Finalize(context.Background(), primitive.NewObjectID(), &models.Payment{
		TransactionID: "txn_123",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, payments.payments, "no payment record for a missing booking")
}

func TestFinalizePaymentIdempotentTerminalState(t *testing.T) {
	svc, bookings, payments, _ := newPaymentFixture()
	ctx := context.Background()

	booking := testBooking()
	require.NoError(t, bookings.Insert(ctx, booking))

	_, err := svc.Finalize(ctx, booking.ID, &models.Payment{TransactionID: "txn_123", Amount: 7500})
	require.NoError(t, err)
	_, err = svc.Finalize(ctx, booking.ID, &models.Payment{TransactionID: "txn_123", Amount: 7500})
	require.NoError(t, err)

	stored, err := bookings.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.True(t, stored.Paid)
	assert.Equal(t, "txn_123", stored.TransactionID)
	// The append-only payment log keeps both records; that is accepted.
	assert.Len(t, payments.payments, 2)
}
