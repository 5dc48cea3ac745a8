// Package repository handles all interactions with the database.
//
// It wraps the MongoDB collections behind small interfaces so the service
// layer never touches driver types beyond bson filters, and translates
// driver errors (mongo.ErrNoDocuments) into domain sentinels.
package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a lookup matches no record. Callers decide
// whether that is a 404 or something else; the repository does not.
var ErrNotFound = errors.New("record not found")

// ParseObjectID validates and parses an external string identifier into the
// store's native id type. An invalid identifier must be rejected here,
// before any query is issued.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id)
}
