package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment is an append-only record of one completed transaction. Never
// mutated after insert.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookingID     primitive.ObjectID `bson:"bookingId" json:"bookingId"`
	Patient       string             `bson:"patient" json:"patient"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Amount        int64              `bson:"amount" json:"amount"` // minor units
}
