package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
	PaymentStatusCancelled = "cancelled"
)

// Refund processing statuses
const (
	RefundStatusRequested  = "requested"
	RefundStatusProcessing = "processing"
	RefundStatusCompleted  = "completed"
	RefundStatusRejected   = "rejected"
)

// RefundRequest is embedded in a payment tracking record when the customer
// asks for their money back
type RefundRequest struct {
	BankName      string              `json:"bankName" bson:"bankName"`
	AccountNumber string              `json:"accountNumber" bson:"accountNumber"`
	AccountHolder string              `json:"accountHolder" bson:"accountHolder"`
	Reason        string              `json:"reason" bson:"reason"`
	Status        string              `json:"status" bson:"status"`
	ProcessedBy   *primitive.ObjectID `json:"processedBy,omitempty" bson:"processedBy,omitempty"`
	ProcessedAt   *primitive.DateTime `json:"processedAt,omitempty" bson:"processedAt,omitempty"`
	RequestedAt   primitive.DateTime  `json:"requestedAt" bson:"requestedAt"`
}

// PaymentTracking is the local record of an external payment gateway
// transaction, linked 1:1 to an appointment or a package purchase
type PaymentTracking struct {
	ID                primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	CustomerID        primitive.ObjectID  `json:"customerId" bson:"customerId"`
	AppointmentID     *primitive.ObjectID `json:"appointmentId,omitempty" bson:"appointmentId,omitempty"`
	PackagePurchaseID *primitive.ObjectID `json:"packagePurchaseId,omitempty" bson:"packagePurchaseId,omitempty"`
	Amount            int64               `json:"amount" bson:"amount"`
	Currency          string              `json:"currency" bson:"currency"`
	Reference         string              `json:"reference" bson:"reference"`
	StripeSessionID   string              `json:"stripeSessionId,omitempty" bson:"stripeSessionId,omitempty"`
	Status            string              `json:"status" bson:"status"`
	Refund            *RefundRequest      `json:"refund,omitempty" bson:"refund,omitempty"`
	CreatedAt         primitive.DateTime  `json:"createdAt" bson:"createdAt"`
	UpdatedAt         primitive.DateTime  `json:"updatedAt" bson:"updatedAt"`
}
