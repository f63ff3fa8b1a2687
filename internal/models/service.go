package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is one treatment in the catalog. Slots are the fixed daily
// schedule for the treatment, not per-date state.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
}
