package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User accounts are created out-of-band; this system only reads them
// during login and session binding.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"` // bcrypt hash
}
