package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Medicine is one entry of the medicines catalog
type Medicine struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category" bson:"category"`
	Unit        string             `json:"unit" bson:"unit"`
	ImageURL    string             `json:"imageUrl" bson:"imageUrl,omitempty"`
	Active      bool               `json:"active" bson:"active"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt   primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}
