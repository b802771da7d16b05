package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cycle statuses
const (
	CycleStatusTracking  = "tracking"
	CycleStatusCompleted = "completed"
	CycleStatusArchived  = "archived"
)

// MenstrualCycle holds one tracked cycle for a user
type MenstrualCycle struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	OwnerID     primitive.ObjectID `json:"ownerId" bson:"ownerId"`
	StartDate   string             `json:"startDate" bson:"startDate"` // YYYY-MM-DD
	CycleNumber int                `json:"cycleNumber" bson:"cycleNumber"`
	Status      string             `json:"status" bson:"status"`
	PeakDate    string             `json:"peakDate,omitempty" bson:"peakDate,omitempty"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt   primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// CycleDay is one calendar day observation inside a cycle. The day matching
// the cycle start date may not be deleted, and cycleDayNumber is recomputed
// whenever the cycle start date changes.
type CycleDay struct {
	ID                   primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CycleID              primitive.ObjectID `json:"cycleId" bson:"cycleId"`
	OwnerID              primitive.ObjectID `json:"ownerId" bson:"ownerId"`
	Date                 string             `json:"date" bson:"date"` // YYYY-MM-DD
	CycleDayNumber       int                `json:"cycleDayNumber" bson:"cycleDayNumber"`
	Observation          string             `json:"observation" bson:"observation"`
	Feeling              string             `json:"feeling" bson:"feeling"`
	IsPeakDay            bool               `json:"isPeakDay" bson:"isPeakDay"`
	FertilityProbability float64            `json:"fertilityProbability" bson:"fertilityProbability"`
	AutoGenerated        bool               `json:"autoGenerated" bson:"autoGenerated"`
	Notes                string             `json:"notes" bson:"notes"`
	CreatedAt            primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt            primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}
