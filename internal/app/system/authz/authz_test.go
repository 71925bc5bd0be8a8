package authz

import (
	"testing"

	"github.com/postdeck/postdeck/internal/domain/models"
)

func TestPolicy_Allows(t *testing.T) {
	approvedAdmin := &models.User{Status: models.StatusApproved, Role: models.RoleAdmin}
	approvedCreator := &models.User{Status: models.StatusApproved, Role: models.RoleCreator}
	approvedPublisher := &models.User{Status: models.StatusApproved, Role: models.RolePublisher}
	pendingAdmin := &models.User{Status: models.StatusPending, RequestedRole: models.RoleAdmin}

	tests := []struct {
		name   string
		policy Policy
		record *models.User
		want   bool
	}{
		{"nil record fails closed", AdminOnly, nil, false},
		{"pending fails regardless of requested role", AdminOnly, pendingAdmin, false},
		{"pending fails any-role policy", Approved, pendingAdmin, false},
		{"approved passes any-role policy", Approved, approvedPublisher, true},
		{"admin passes admin-only", AdminOnly, approvedAdmin, true},
		{"creator fails admin-only", AdminOnly, approvedCreator, false},
		{"creator passes admin-or-creator", AdminOrCreator, approvedCreator, true},
		{"publisher fails admin-or-creator", AdminOrCreator, approvedPublisher, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Allows(tt.record); got != tt.want {
				t.Errorf("Allows() = %v, want %v", got, tt.want)
			}
		})
	}
}
