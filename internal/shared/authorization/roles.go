// Package authorization defines the role model and the access-control gate
// consulted by every mutating endpoint.
package authorization

type UserRole string

const (
	RoleAdmin            UserRole = "admin"
	RoleBaseCommander    UserRole = "base_commander"
	RoleLogisticsOfficer UserRole = "logistics_officer"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleBaseCommander, RoleLogisticsOfficer:
		return true
	}
	return false
}

// ParseUserRole maps a string onto a known role, defaulting to the least
// privileged role for unknown input.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleLogisticsOfficer
}

// Identity is the decoded token payload carried through a request. The token
// is the source of truth for the request's lifetime; role or base changes on
// the user record only take effect on re-login.
type Identity struct {
	UserID uint
	Email  string
	Role   UserRole
	BaseID *uint
}

// SameBase reports whether the identity is scoped to the given base.
func (i Identity) SameBase(baseID *uint) bool {
	if i.BaseID == nil || baseID == nil {
		return false
	}
	return *i.BaseID == *baseID
}
