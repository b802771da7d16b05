package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Package purchase statuses
const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusActive    = "active"
	PurchaseStatusCancelled = "cancelled"
)

// PackagePurchase tracks a customer's remaining usage count against a
// purchased service package. Invariant: 0 <= remainingUsages <= totalAllowedUses.
type PackagePurchase struct {
	ID                primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	CustomerID        primitive.ObjectID  `json:"customerId" bson:"customerId"`
	PackageID         primitive.ObjectID  `json:"packageId" bson:"packageId"`
	PaymentTrackingID *primitive.ObjectID `json:"paymentTrackingId,omitempty" bson:"paymentTrackingId,omitempty"`
	TotalAllowedUses  int                 `json:"totalAllowedUses" bson:"totalAllowedUses"`
	RemainingUsages   int                 `json:"remainingUsages" bson:"remainingUsages"`
	Status            string              `json:"status" bson:"status"`
	PurchasedAt       primitive.DateTime  `json:"purchasedAt" bson:"purchasedAt"`
	ExpiresAt         primitive.DateTime  `json:"expiresAt" bson:"expiresAt"`
}

// IsActive reports whether the purchase can still be redeemed at the given time
func (p *PackagePurchase) IsActive(now time.Time) bool {
	return p.Status == PurchaseStatusActive &&
		p.RemainingUsages > 0 &&
		now.Before(p.ExpiresAt.Time())
}
