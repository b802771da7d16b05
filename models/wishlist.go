package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistItem saves a service or doctor a user wants to come back to
type WishlistItem struct {
	ID        primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID  `json:"userId" bson:"userId"`
	ServiceID *primitive.ObjectID `json:"serviceId,omitempty" bson:"serviceId,omitempty"`
	DoctorID  *primitive.ObjectID `json:"doctorId,omitempty" bson:"doctorId,omitempty"`
	CreatedAt primitive.DateTime  `json:"createdAt" bson:"createdAt"`
}
