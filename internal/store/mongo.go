package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Omaralabdullah051/doctors-portal-server/internal/models"
)

const (
	servicesCollection = "services"
	bookingsCollection = "bookings"
	usersCollection    = "users"
	doctorsCollection  = "doctors"
	paymentsCollection = "payments"
)

// EnsureIndexes creates the indexes the invariants depend on. The unique
// compound index on bookings is what makes concurrent duplicate creation
// fail fast instead of producing two records.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(bookingsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "treatment", Value: 1},
			{Key: "date", Value: 1},
			{Key: "patient", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create booking index: %w", err)
	}

	for _, coll := range []string{usersCollection, doctorsCollection} {
		_, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("create %s email index: %w", coll, err)
		}
	}
	return nil
}

// --- Services ---

type MongoServiceStore struct {
	coll *mongo.Collection
}

func NewMongoServiceStore(db *mongo.Database) *MongoServiceStore {
	return &MongoServiceStore{coll: db.Collection(servicesCollection)}
}

func (s *MongoServiceStore) List(ctx context.Context) ([]models.Service, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find services: %w", err)
	}
	defer cursor.Close(ctx)

	services := make([]models.Service, 0)
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	return services, nil
}

func (s *MongoServiceStore) ListNames(ctx context.Context) ([]models.Service, error) {
	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find service names: %w", err)
	}
	defer cursor.Close(ctx)

	services := make([]models.Service, 0)
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("decode service names: %w", err)
	}
	return services, nil
}

func (s *MongoServiceStore) Seed(ctx context.Context, services []models.Service) error {
	docs := make([]interface{}, 0, len(services))
	for i := range services {
		if services[i].ID.IsZero() {
			services[i].ID = primitive.NewObjectID()
		}
		docs = append(docs, services[i])
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed services: %w", err)
	}
	return nil
}

// --- Bookings ---

type MongoBookingStore struct {
	coll *mongo.Collection
}

func NewMongoBookingStore(db *mongo.Database) *MongoBookingStore {
	return &MongoBookingStore{coll: db.Collection(bookingsCollection)}
}

func (s *MongoBookingStore) FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	filter := bson.M{"treatment": treatment, "date": date, "patient": patient}
	var b models.Booking
	err := s.coll.FindOne(ctx, filter).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find booking by key: %w", err)
	}
	return &b, nil
}

func (s *MongoBookingStore) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("find bookings by date: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := make([]models.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}

func (s *MongoBookingStore) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"patient": patient})
	if err != nil {
		return nil, fmt.Errorf("find bookings by patient: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := make([]models.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}

func (s *MongoBookingStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var b models.Booking
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find booking by id: %w", err)
	}
	return &b, nil
}

func (s *MongoBookingStore) Insert(ctx context.Context, b *models.Booking) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, b)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (s *MongoBookingStore) MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (int64, error) {
	update := bson.M{"$set": bson.M{"paid": true, "transactionId": transactionID}}
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, fmt.Errorf("mark booking paid: %w", err)
	}
	return result.MatchedCount, nil
}

// --- Users ---

type MongoUserStore struct {
	coll *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{coll: db.Collection(usersCollection)}
}

func (s *MongoUserStore) Upsert(ctx context.Context, u *models.User) error {
	set := bson.M{"email": u.Email}
	if u.Name != "" {
		set["name"] = u.Name
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.coll.UpdateOne(ctx, bson.M{"email": u.Email}, bson.M{"$set": set}, opts)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (s *MongoUserStore) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (s *MongoUserStore) PromoteAdmin(ctx context.Context, email string) (int64, error) {
	update := bson.M{"$set": bson.M{"role": models.RoleAdmin}}
	result, err := s.coll.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return 0, fmt.Errorf("promote admin: %w", err)
	}
	return result.MatchedCount, nil
}

// --- Doctors ---

type MongoDoctorStore struct {
	coll *mongo.Collection
}

func NewMongoDoctorStore(db *mongo.Database) *MongoDoctorStore {
	return &MongoDoctorStore{coll: db.Collection(doctorsCollection)}
}

func (s *MongoDoctorStore) Insert(ctx context.Context, d *models.Doctor) error {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, d)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert doctor: %w", err)
	}
	return nil
}

func (s *MongoDoctorStore) List(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find doctors: %w", err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}
	return doctors, nil
}

func (s *MongoDoctorStore) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result, err := s.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, fmt.Errorf("delete doctor: %w", err)
	}
	return result.DeletedCount, nil
}

// --- Payments ---

type MongoPaymentStore struct {
	coll *mongo.Collection
}

func NewMongoPaymentStore(db *mongo.Database) *MongoPaymentStore {
	return &MongoPaymentStore{coll: db.Collection(paymentsCollection)}
}

func (s *MongoPaymentStore) Insert(ctx context.Context, p *models.Payment) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}
