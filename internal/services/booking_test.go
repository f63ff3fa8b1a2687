package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Omaralabdullah051/doctors-portal-server/internal/models"
	"github.com/Omaralabdullah051/doctors-portal-server/pkg/logging"
)

func newBookingService(bookings *fakeBookingStore) *BookingService {
	notifier := NewNotificationService(NewStubEmailSender(nil), logging.New("error"))
	return NewBookingService(bookings, notifier, logging.New("error"))
}

func testBooking() *models.Booking {
	return &models.Booking{
		Patient:     "a@x.com",
		PatientName: "Alice",
		Treatment:   "Cleaning",
		Date:        "2024-01-01",
		Slot:        "9AM",
	}
}

func TestBookingCreateThenRepeat(t *testing.T) {
	bookings := &fakeBookingStore{}
	svc := newBookingService(bookings)
	ctx := context.Background()

	first, err := svc.Create(ctx, testBooking())
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.False(t, first.Booking.Paid)
	assert.Empty(t, first.Booking.TransactionID)
	require.False(t, first.Booking.ID.IsZero())

	second, err := svc.Create(ctx, testBooking())
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Booking.ID, second.Booking.ID)

	assert.Equal(t, 1, bookings.countByKey("Cleaning", "2024-01-01", "a@x.com"))
}

func TestBookingCreateRaceLoserGetsExistingRecord(t *testing.T) {
	bookings := &fakeBookingStore{}
	svc := newBookingService(bookings)
	ctx := context.Background()

	winner, err := svc.Create(ctx, testBooking())
	require.NoError(t, err)
	require.True(t, winner.Created)

	// Simulate the loser of a concurrent race: its existence check ran
	// before the winner's insert landed, so its own insert hits the
	// unique index.
	bookings.missOnce = true
	loser, err := svc.Create(ctx, testBooking())
	require.NoError(t, err)
	assert.False(t, loser.Created)
	assert.Equal(t, winner.Booking.ID, loser.Booking.ID)
	assert.Equal(t, 1, bookings.countByKey("Cleaning", "2024-01-01", "a@x.com"))
}

func TestBookingCreateSendsConfirmationOnlyOnCreation(t *testing.T) {
	bookings := &fakeBookingStore{}
	sender := &recordingSender{}
	notifier := NewNotificationService(sender, logging.New("error"))
	svc := NewBookingService(bookings, notifier, logging.New("error"))
	ctx := context.Background()

	result, err := svc.Create(ctx, testBooking())
	require.NoError(t, err)
	require.True(t, result.Created)

	repeat, err := svc.Create(ctx, testBooking())
	require.NoError(t, err)
	require.False(t, repeat.Created)

	assert.Eventually(t, func() bool { return sender.count() == 1 },
		waitFor, tick, "exactly one confirmation email expected")
	sender.mu.Lock()
	defer sender.mu.Unlock()
	assert.Equal(t, "a@x.com", sender.sent[0].To)
	assert.Contains(t, sender.sent[0].Subject, "Cleaning")
}

func TestBookingCreateStorageFault(t *testing.T) {
	bookings := &fakeBookingStore{findErr: errors.New("boom")}
	svc := newBookingService(bookings)

	_, err := svc.Create(context.Background(), testBooking())
	assert.Error(t, err)
}

func TestBookingListByPatient(t *testing.T) {
	bookings := &fakeBookingStore{}
	svc := newBookingService(bookings)
	ctx := context.Background()

	_, err := svc.Create(ctx, testBooking())
	require.NoError(t, err)
	other := testBooking()
	other.Patient = "b@x.com"
	_, err = svc.Create(ctx, other)
	require.NoError(t, err)

	mine, err := svc.ListByPatient(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, "a@x.com", mine[0].Patient)
}
