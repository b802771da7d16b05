package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/models"
)

func TestPromotion_IsValid(t *testing.T) {
	now := time.Now()
	promo := models.Promotion{
		Code:            "SUMMER20",
		DiscountPercent: 20,
		ValidFrom:       primitive.NewDateTimeFromTime(now.Add(-24 * time.Hour)),
		ValidUntil:      primitive.NewDateTimeFromTime(now.Add(24 * time.Hour)),
		Active:          true,
	}

	assert.True(t, promo.IsValid(now))

	inactive := promo
	inactive.Active = false
	assert.False(t, inactive.IsValid(now))

	notStarted := promo
	notStarted.ValidFrom = primitive.NewDateTimeFromTime(now.Add(time.Hour))
	assert.False(t, notStarted.IsValid(now))

	expired := promo
	expired.ValidUntil = primitive.NewDateTimeFromTime(now.Add(-time.Hour))
	assert.False(t, expired.IsValid(now))
}
