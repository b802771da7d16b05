package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gencareclinic/gencare-api/models"
)

func TestRoleSatisfies(t *testing.T) {
	tests := []struct {
		name string
		have string
		need string
		want bool
	}{
		{"admin covers manager", models.RoleAdmin, models.RoleManager, true},
		{"admin covers staff", models.RoleAdmin, models.RoleStaff, true},
		{"admin covers doctor", models.RoleAdmin, models.RoleDoctor, true},
		{"manager covers staff", models.RoleManager, models.RoleStaff, true},
		{"manager covers doctor", models.RoleManager, models.RoleDoctor, true},
		{"staff covers customer", models.RoleStaff, models.RoleCustomer, true},
		{"staff does not cover doctor", models.RoleStaff, models.RoleDoctor, false},
		{"doctor does not cover staff", models.RoleDoctor, models.RoleStaff, false},
		{"customer does not cover staff", models.RoleCustomer, models.RoleStaff, false},
		{"same role satisfies itself", models.RoleStaff, models.RoleStaff, true},
		{"unknown role never satisfies", "superuser", models.RoleCustomer, false},
		{"unknown requirement never satisfied", models.RoleAdmin, "superuser", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.RoleSatisfies(tt.have, tt.need))
		})
	}
}
