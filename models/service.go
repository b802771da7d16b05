package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service types offered by the clinic
const (
	ServiceTypeConsultation = "consultation"
	ServiceTypeTesting      = "testing"
	ServiceTypeTherapy      = "therapy"
)

// Service holds the structure for the services collection
type Service struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Description     string             `json:"description" bson:"description"`
	ServiceType     string             `json:"serviceType" bson:"serviceType"`
	Price           int64              `json:"price" bson:"price"` // smallest currency unit
	DurationMinutes int                `json:"durationMinutes" bson:"durationMinutes"`
	Active          bool               `json:"active" bson:"active"`
	CreatedAt       primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt       primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// ServicePackage is a prepaid bundle of service redemptions
type ServicePackage struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Description      string             `json:"description" bson:"description"`
	ServiceType      string             `json:"serviceType" bson:"serviceType"`
	Price            int64              `json:"price" bson:"price"`
	TotalAllowedUses int                `json:"totalAllowedUses" bson:"totalAllowedUses"`
	ValidityDays     int                `json:"validityDays" bson:"validityDays"`
	Active           bool               `json:"active" bson:"active"`
	CreatedAt        primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt        primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}
