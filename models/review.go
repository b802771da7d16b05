package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a customer rating of a doctor, optionally tied to an appointment
type Review struct {
	ID            primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	CustomerID    primitive.ObjectID  `json:"customerId" bson:"customerId"`
	DoctorID      primitive.ObjectID  `json:"doctorId" bson:"doctorId"`
	AppointmentID *primitive.ObjectID `json:"appointmentId,omitempty" bson:"appointmentId,omitempty"`
	Rating        int                 `json:"rating" bson:"rating"` // 1..5
	Comment       string              `json:"comment" bson:"comment"`
	Active        bool                `json:"active" bson:"active"`
	CreatedAt     primitive.DateTime  `json:"createdAt" bson:"createdAt"`
	UpdatedAt     primitive.DateTime  `json:"updatedAt" bson:"updatedAt"`
}
