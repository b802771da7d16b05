package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is one in-app notification for a user
type Notification struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Type      string             `json:"type" bson:"type"`
	Title     string             `json:"title" bson:"title"`
	Body      string             `json:"body" bson:"body"`
	Read      bool               `json:"read" bson:"read"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
}
