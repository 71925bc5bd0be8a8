// internal/domain/models/roles.go
package models

// Roles a subject may request and hold once approved.
const (
	RoleCreator   = "creator"
	RolePublisher = "publisher"
	RoleAdmin     = "admin"
)

// Directory record statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// IsValidRole reports whether role is one of the assignable roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleCreator, RolePublisher, RoleAdmin:
		return true
	}
	return false
}
