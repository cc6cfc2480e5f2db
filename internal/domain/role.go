package domain

// Role represents a League of Legends position
type Role string

const (
	RoleTop     Role = "top"
	RoleJungle  Role = "jungle"
	RoleMid     Role = "mid"
	RoleADC     Role = "adc"
	RoleSupport Role = "support"
)

// AllRoles contains all valid roles in order
var AllRoles = []Role{RoleTop, RoleJungle, RoleMid, RoleADC, RoleSupport}

// IsValid checks if a role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleTop, RoleJungle, RoleMid, RoleADC, RoleSupport:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a user-friendly display name for the role
func (r Role) DisplayName() string {
	switch r {
	case RoleTop:
		return "Top"
	case RoleJungle:
		return "Jungle"
	case RoleMid:
		return "Mid"
	case RoleADC:
		return "ADC"
	case RoleSupport:
		return "Support"
	default:
		return string(r)
	}
}
