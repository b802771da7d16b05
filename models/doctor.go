package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor holds the structure for the doctors collection. The linked user
// account carries credentials and the doctor role, this document carries
// the public directory profile.
type Doctor struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId"`
	FullName    string             `json:"fullName" bson:"fullName"`
	Specialty   string             `json:"specialty" bson:"specialty"`
	Bio         string             `json:"bio" bson:"bio"`
	PhotoURL    string             `json:"photoUrl" bson:"photoUrl"`
	Rating      float64            `json:"rating" bson:"rating"`
	RatingCount int64              `json:"ratingCount" bson:"ratingCount"`
	Active      bool               `json:"active" bson:"active"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt   primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}
