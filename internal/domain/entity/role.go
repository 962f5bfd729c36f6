package entity

import "slices"

// Role is an authorization role carried in access tokens.
type Role string

// RoleUser is issued to every registered app user.
const RoleUser Role = "user"

func (r Role) String() string {
	return string(r)
}

// Roles is the role set of one user.
type Roles []Role

// ParseRoles converts token claims back to Roles, dropping blanks.
func ParseRoles(raw []string) Roles {
	roles := make(Roles, 0, len(raw))
	for _, r := range raw {
		if r != "" {
			roles = append(roles, Role(r))
		}
	}

	return roles
}

// Has reports whether role is in the set.
func (rs Roles) Has(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to the []string form stored in JWT claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
