package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a reserved treatment slot. At most one booking may exist per
// (treatment, date, patient); the bookings collection carries a unique
// compound index on those three fields.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Patient       string             `bson:"patient" json:"patient"`
	PatientName   string             `bson:"patientName" json:"patientName"`
	Treatment     string             `bson:"treatment" json:"treatment"`
	Date          string             `bson:"date" json:"date"` // YYYY-MM-DD
	Slot          string             `bson:"slot" json:"slot"`
	Paid          bool               `bson:"paid" json:"paid"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
