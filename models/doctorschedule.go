package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Slot statuses. A slot moves Free -> Booked on booking, back to Free on
// cancellation, and to Absent when the doctor calls off the slot.
const (
	SlotStatusFree   = "Free"
	SlotStatusBooked = "Booked"
	SlotStatusAbsent = "Absent"
)

// TimeSlot is one bookable unit inside a schedule day
type TimeSlot struct {
	ID            primitive.ObjectID  `json:"_id" bson:"_id"`
	StartTime     string              `json:"startTime" bson:"startTime"` // HH:MM
	EndTime       string              `json:"endTime" bson:"endTime"`
	Status        string              `json:"status" bson:"status"`
	AppointmentID *primitive.ObjectID `json:"appointmentId,omitempty" bson:"appointmentId,omitempty"`
	PatientID     *primitive.ObjectID `json:"patientId,omitempty" bson:"patientId,omitempty"`
}

// ScheduleDay is one calendar day inside a doctor week
type ScheduleDay struct {
	Date  string     `json:"date" bson:"date"` // YYYY-MM-DD
	Slots []TimeSlot `json:"slots" bson:"slots"`
}

// DoctorSchedule holds one week of slots for a doctor
type DoctorSchedule struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	DoctorID  primitive.ObjectID `json:"doctorId" bson:"doctorId"`
	WeekStart string             `json:"weekStart" bson:"weekStart"` // YYYY-MM-DD, Monday
	WeekDays  []ScheduleDay      `json:"weekDays" bson:"weekDays"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}
