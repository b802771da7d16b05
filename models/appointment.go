package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment statuses. Cancelled, payment_cancelled, completed and expired
// are absorbing.
const (
	AppointmentStatusPendingPayment   = "pending_payment"
	AppointmentStatusConfirmed        = "confirmed"
	AppointmentStatusScheduled        = "scheduled"
	AppointmentStatusConsulting       = "consulting"
	AppointmentStatusCompleted        = "completed"
	AppointmentStatusCancelled        = "cancelled"
	AppointmentStatusPaymentCancelled = "payment_cancelled"
	AppointmentStatusExpired          = "expired"
)

var appointmentTransitions = map[string][]string{
	AppointmentStatusPendingPayment: {
		AppointmentStatusConfirmed,
		AppointmentStatusCancelled,
		AppointmentStatusPaymentCancelled,
		AppointmentStatusExpired,
	},
	AppointmentStatusConfirmed: {
		AppointmentStatusScheduled,
		AppointmentStatusCancelled,
		AppointmentStatusExpired,
	},
	AppointmentStatusScheduled: {
		AppointmentStatusConsulting,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusExpired,
	},
	AppointmentStatusConsulting: {
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	},
}

// IsTerminalAppointmentStatus reports whether status is absorbing
func IsTerminalAppointmentStatus(status string) bool {
	switch status {
	case AppointmentStatusCancelled,
		AppointmentStatusPaymentCancelled,
		AppointmentStatusCompleted,
		AppointmentStatusExpired:
		return true
	}
	return false
}

// CanTransitionAppointment reports whether the status state machine allows
// moving from one status to another. A no-op transition is always allowed.
func CanTransitionAppointment(from, to string) bool {
	if from == to {
		return true
	}
	if IsTerminalAppointmentStatus(from) {
		return false
	}
	for _, next := range appointmentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AppointmentNote is one free text note on an appointment
type AppointmentNote struct {
	Author    string             `json:"author" bson:"author"`
	Text      string             `json:"text" bson:"text"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

// Appointment holds the structure for the appointments collection.
// Appointments are never hard deleted, cancellation is a status change.
type Appointment struct {
	ID                primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	CustomerID        primitive.ObjectID  `json:"customerId" bson:"customerId"`
	PatientID         primitive.ObjectID  `json:"patientId" bson:"patientId"`
	DoctorID          primitive.ObjectID  `json:"doctorId" bson:"doctorId"`
	ServiceID         *primitive.ObjectID `json:"serviceId,omitempty" bson:"serviceId,omitempty"`
	PackagePurchaseID *primitive.ObjectID `json:"packagePurchaseId,omitempty" bson:"packagePurchaseId,omitempty"`
	AppointmentType   string              `json:"appointmentType" bson:"appointmentType"`
	ScheduleDate      string              `json:"scheduleDate" bson:"scheduleDate"` // YYYY-MM-DD
	SlotID            primitive.ObjectID  `json:"slotId" bson:"slotId"`
	Status            string              `json:"status" bson:"status"`
	PaymentTrackingID *primitive.ObjectID `json:"paymentTrackingId,omitempty" bson:"paymentTrackingId,omitempty"`
	CheckoutURL       string              `json:"checkoutUrl,omitempty" bson:"checkoutUrl,omitempty"`
	Notes             []AppointmentNote   `json:"notes" bson:"notes"`
	CreatedAt         primitive.DateTime  `json:"createdAt" bson:"createdAt"`
	UpdatedAt         primitive.DateTime  `json:"updatedAt" bson:"updatedAt"`
}
