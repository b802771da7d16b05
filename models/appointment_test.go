package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gencareclinic/gencare-api/models"
)

func TestCanTransitionAppointment(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to confirmed", models.AppointmentStatusPendingPayment, models.AppointmentStatusConfirmed, true},
		{"pending to payment cancelled", models.AppointmentStatusPendingPayment, models.AppointmentStatusPaymentCancelled, true},
		{"pending to expired", models.AppointmentStatusPendingPayment, models.AppointmentStatusExpired, true},
		{"pending skips to scheduled", models.AppointmentStatusPendingPayment, models.AppointmentStatusScheduled, false},
		{"confirmed to scheduled", models.AppointmentStatusConfirmed, models.AppointmentStatusScheduled, true},
		{"confirmed to consulting", models.AppointmentStatusConfirmed, models.AppointmentStatusConsulting, false},
		{"scheduled to consulting", models.AppointmentStatusScheduled, models.AppointmentStatusConsulting, true},
		{"scheduled to completed", models.AppointmentStatusScheduled, models.AppointmentStatusCompleted, true},
		{"consulting to completed", models.AppointmentStatusConsulting, models.AppointmentStatusCompleted, true},
		{"consulting to expired", models.AppointmentStatusConsulting, models.AppointmentStatusExpired, false},
		{"no-op is allowed", models.AppointmentStatusScheduled, models.AppointmentStatusScheduled, true},
		{"terminal no-op is allowed", models.AppointmentStatusCancelled, models.AppointmentStatusCancelled, true},
		{"cancelled is absorbing", models.AppointmentStatusCancelled, models.AppointmentStatusConfirmed, false},
		{"completed is absorbing", models.AppointmentStatusCompleted, models.AppointmentStatusCancelled, false},
		{"expired is absorbing", models.AppointmentStatusExpired, models.AppointmentStatusScheduled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.CanTransitionAppointment(tt.from, tt.to))
		})
	}
}

func TestIsTerminalAppointmentStatus(t *testing.T) {
	assert.True(t, models.IsTerminalAppointmentStatus(models.AppointmentStatusCancelled))
	assert.True(t, models.IsTerminalAppointmentStatus(models.AppointmentStatusPaymentCancelled))
	assert.True(t, models.IsTerminalAppointmentStatus(models.AppointmentStatusCompleted))
	assert.True(t, models.IsTerminalAppointmentStatus(models.AppointmentStatusExpired))
	assert.False(t, models.IsTerminalAppointmentStatus(models.AppointmentStatusPendingPayment))
	assert.False(t, models.IsTerminalAppointmentStatus(models.AppointmentStatusConsulting))
}
