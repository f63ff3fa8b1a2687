package services

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Omaralabdullah051/doctors-portal-server/internal/models"
	"github.com/Omaralabdullah051/doctors-portal-server/internal/store"
)

// Polling bounds for asserting on fire-and-forget goroutines.
const (
	waitFor = 2 * time.Second
	tick    = 10 * time.Millisecond
)

// fakeBookingStore mimics the bookings collection including its unique
// (treatment, date, patient) index.
type fakeBookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking

	// missOnce makes the next FindByKey report not-found even when the
	// record exists, reproducing the check-then-insert race window.
	missOnce bool
	findErr  error
}

func (f *fakeBookingStore) FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.missOnce {
		f.missOnce = false
		return nil, store.ErrNotFound
	}
	for i := range f.bookings {
		b := f.bookings[i]
		if b.Treatment == treatment && b.Date == date && b.Patient == patient {
			return &b, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeBookingStore) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Booking, 0)
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Booking, 0)
	for _, b := range f.bookings {
		if b.Patient == patient {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeBookingStore) Insert(ctx context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.bookings {
		if existing.Treatment == b.Treatment && existing.Date == b.Date && existing.Patient == b.Patient {
			return store.ErrDuplicate
		}
	}
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingStore) MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Paid = true
			f.bookings[i].TransactionID = transactionID
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeBookingStore) countByKey(treatment, date, patient string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, b := range f.bookings {
		if b.Treatment == treatment && b.Date == date && b.Patient == patient {
			n++
		}
	}
	return n
}

type fakePaymentStore struct {
	mu       sync.Mutex
	payments []models.Payment
	err      error
}

func (f *fakePaymentStore) Insert(ctx context.Context, p *models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.payments = append(f.payments, *p)
	return nil
}

// recordingSender captures outgoing mail for assertions.
type recordingSender struct {
	mu   sync.Mutex
	sent []EmailMessage
	err  error
}

func (r *recordingSender) Send(ctx context.Context, msg EmailMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

func (r *recordingSender) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}
