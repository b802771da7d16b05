package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/models"
)

func TestPackagePurchase_IsActive(t *testing.T) {
	now := time.Now()
	future := primitive.NewDateTimeFromTime(now.Add(24 * time.Hour))
	past := primitive.NewDateTimeFromTime(now.Add(-24 * time.Hour))

	tests := []struct {
		name     string
		purchase models.PackagePurchase
		want     bool
	}{
		{
			name:     "active with usages left",
			purchase: models.PackagePurchase{Status: models.PurchaseStatusActive, RemainingUsages: 3, ExpiresAt: future},
			want:     true,
		},
		{
			name:     "pending purchase is not redeemable",
			purchase: models.PackagePurchase{Status: models.PurchaseStatusPending, RemainingUsages: 3, ExpiresAt: future},
			want:     false,
		},
		{
			name:     "exhausted usages",
			purchase: models.PackagePurchase{Status: models.PurchaseStatusActive, RemainingUsages: 0, ExpiresAt: future},
			want:     false,
		},
		{
			name:     "expired purchase",
			purchase: models.PackagePurchase{Status: models.PurchaseStatusActive, RemainingUsages: 3, ExpiresAt: past},
			want:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.purchase.IsActive(now))
		})
	}
}
