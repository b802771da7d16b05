package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Promotion is a discount code with a validity window
type Promotion struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Code            string             `json:"code" bson:"code"`
	Description     string             `json:"description" bson:"description"`
	DiscountPercent int                `json:"discountPercent" bson:"discountPercent"`
	ValidFrom       primitive.DateTime `json:"validFrom" bson:"validFrom"`
	ValidUntil      primitive.DateTime `json:"validUntil" bson:"validUntil"`
	Active          bool               `json:"active" bson:"active"`
	CreatedAt       primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt       primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// IsValid reports whether the promotion can be applied at the given time
func (p *Promotion) IsValid(now time.Time) bool {
	return p.Active &&
		!now.Before(p.ValidFrom.Time()) &&
		now.Before(p.ValidUntil.Time())
}
