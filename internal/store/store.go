// Package store owns all MongoDB collection access. Handlers and services
// depend on the interfaces here, never on the driver directly.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Omaralabdullah051/doctors-portal-server/internal/models"
)

// ErrNotFound is returned when a looked-up document does not exist.
var ErrNotFound = errors.New("store: not found")

// ErrDuplicate is returned when an insert violates a unique index.
var ErrDuplicate = errors.New("store: duplicate key")

// ServiceStore reads the treatment catalog.
type ServiceStore interface {
	// List returns the full catalog including slot lists.
	List(ctx context.Context) ([]models.Service, error)
	// ListNames returns the catalog projected to names only.
	ListNames(ctx context.Context) ([]models.Service, error)
	// Seed inserts catalog entries. Used by administrative seeding.
	Seed(ctx context.Context, services []models.Service) error
}

// BookingStore reads and writes bookings.
type BookingStore interface {
	FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error)
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	FindByPatient(ctx context.Context, patient string) ([]models.Booking, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	// Insert stores a new booking, assigning its ID. Returns ErrDuplicate if
	// a booking with the same (treatment, date, patient) already exists.
	Insert(ctx context.Context, b *models.Booking) error
	// MarkPaid sets paid=true and the transaction id on one booking. The
	// returned count is the number of matched documents, so a missing
	// booking is zero rather than a silent success.
	MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (int64, error)
}

// UserStore reads and writes user accounts keyed by email.
type UserStore interface {
	// Upsert creates or updates the user with the given email.
	Upsert(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// PromoteAdmin sets role="admin" on the user. Returns matched count.
	PromoteAdmin(ctx context.Context, email string) (int64, error)
}

// DoctorStore manages the doctor roster.
type DoctorStore interface {
	Insert(ctx context.Context, d *models.Doctor) error
	List(ctx context.Context) ([]models.Doctor, error)
	// DeleteByEmail removes one doctor. Returns deleted count.
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

// PaymentStore appends completed payment records.
type PaymentStore interface {
	Insert(ctx context.Context, p *models.Payment) error
}
