package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is the persisted catalog record.
//
// Description, Stock, and ImageURL default to their zero values when omitted
// at creation time, so they are written without omitempty: a listed product
// always exposes every field.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Stock       int                `bson:"stock" json:"stock"`
	Category    string             `bson:"category" json:"category"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
}
