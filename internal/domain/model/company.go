package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company represents a pallet manufacturer owned by exactly one user.
// Deleting a company cascades to every pallet that references it.
type Company struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID      primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	Name         string             `bson:"name" json:"name"`
	ContactEmail string             `bson:"contact_email" json:"contact_email"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
