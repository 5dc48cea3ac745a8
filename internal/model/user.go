// Package model defines the persisted record types stored in MongoDB.
//
// Records carry bson tags for the driver and json tags for the rare case a
// record is serialized directly. Anything secret is tagged `json:"-"` so it
// can never leak through a response, regardless of the handler path.
package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the persisted registration record.
//
// Password holds the bcrypt hash, never the plaintext. It is excluded from
// JSON entirely; login responses are shaped through a dedicated DTO anyway.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address  string             `bson:"address,omitempty" json:"address,omitempty"`
	Pincode  string             `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Password string             `bson:"password" json:"-"`
	Role     string             `bson:"role" json:"role"`
}
