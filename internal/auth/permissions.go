package auth

import "placement_backend/internal/models"

// Role permissions for coarse checks outside the route guards.
var Permissions = map[models.UserRole][]string{
	models.UserRoleAdmin: {
		"jobs:write",
		"applications:manage",
		"placements:manage",
		"kyc:verify",
		"analytics:read",
	},
	models.UserRoleRecruiter: {
		"jobs:read",
		"applications:read",
	},
	models.UserRoleStudent: {
		"profile:write:self",
		"applications:write:self",
		"jobs:read",
	},
}

// HasPermission reports whether the role carries the permission.
func HasPermission(role models.UserRole, permission string) bool {
	permissions, exists := Permissions[role]
	if !exists {
		return false
	}
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
