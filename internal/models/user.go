package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin unlocks roster management and role promotion.
const RoleAdmin = "admin"

// User is an account keyed by email. Role is empty for regular patients and
// "admin" for administrators; it is the only authorization signal.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
