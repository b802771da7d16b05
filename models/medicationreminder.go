package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dose statuses for a notification day row
const (
	DoseStatusPending = "pending"
	DoseStatusSent    = "sent"
	DoseStatusTaken   = "taken"
	DoseStatusSkipped = "skipped"
	DoseStatusSnoozed = "snoozed"
	DoseStatusMissed  = "missed"
)

// ReminderMedicine is one prescribed medicine inside a reminder group
type ReminderMedicine struct {
	MedicineID   *primitive.ObjectID `json:"medicineId,omitempty" bson:"medicineId,omitempty"`
	Name         string              `json:"name" bson:"name"`
	Dosage       string              `json:"dosage" bson:"dosage"`
	Instructions string              `json:"instructions" bson:"instructions"`
}

// MedicationReminder groups prescribed medicines with schedule times over a
// date range
type MedicationReminder struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	OwnerID   primitive.ObjectID `json:"ownerId" bson:"ownerId"`
	Medicines []ReminderMedicine `json:"medicines" bson:"medicines"`
	Times     []string           `json:"times" bson:"times"`         // HH:MM
	StartDate string             `json:"startDate" bson:"startDate"` // YYYY-MM-DD
	EndDate   string             `json:"endDate" bson:"endDate"`
	Active    bool               `json:"active" bson:"active"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// NotificationDay is the fan out of one row per scheduled dose per day
type NotificationDay struct {
	ID           primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	ReminderID   primitive.ObjectID  `json:"reminderId" bson:"reminderId"`
	OwnerID      primitive.ObjectID  `json:"ownerId" bson:"ownerId"`
	Date         string              `json:"date" bson:"date"` // YYYY-MM-DD
	Time         string              `json:"time" bson:"time"` // HH:MM
	MedicineName string              `json:"medicineName" bson:"medicineName"`
	Dosage       string              `json:"dosage" bson:"dosage"`
	Status       string              `json:"status" bson:"status"`
	SnoozedUntil *primitive.DateTime `json:"snoozedUntil,omitempty" bson:"snoozedUntil,omitempty"`
	CreatedAt    primitive.DateTime  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    primitive.DateTime  `json:"updatedAt" bson:"updatedAt"`
}
