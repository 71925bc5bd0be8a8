// Package authz evaluates approval policies against directory records.
//
// A policy is a required status plus an allowed set of roles. Policies are
// pure functions of the record; loading the record and rendering failures
// belongs to the gates package.
package authz

import (
	"github.com/postdeck/postdeck/internal/domain/models"
)

// Policy is the rule gating an operation: the caller's directory record
// must be approved and, when Roles is non-empty, hold one of those roles.
type Policy struct {
	Roles []string
}

// Approved is the policy requiring an approved record with any role.
var Approved = Policy{}

// AdminOnly is the policy for administrative operations.
var AdminOnly = Policy{Roles: []string{models.RoleAdmin}}

// AdminOrCreator is the policy for content edits.
var AdminOrCreator = Policy{Roles: []string{models.RoleAdmin, models.RoleCreator}}

// Allows reports whether the record satisfies the policy. A nil record
// never satisfies any policy: callers without a directory record are
// outside the approval workflow and fail closed.
func (p Policy) Allows(u *models.User) bool {
	if u == nil {
		return false
	}
	if u.Status != models.StatusApproved {
		return false
	}
	if len(p.Roles) == 0 {
		return true
	}
	for _, role := range p.Roles {
		if u.Role == role {
			return true
		}
	}
	return false
}
