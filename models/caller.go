package models

// Caller is the authenticated principal of a request.
type Caller struct {
	ID    string
	Email string
	Roles []Role
}

// Has reports whether the caller carries role.
func (c Caller) Has(role Role) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin is shorthand for Has(RoleAdmin).
func (c Caller) IsAdmin() bool {
	return c.Has(RoleAdmin)
}
