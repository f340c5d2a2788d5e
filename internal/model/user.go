package model

import (
	"strings"
	"time"
)

// Role is the account kind. Volunteer and NGO carry extra details.
type Role string

// Roles.
const (
	RolePerson    Role = "Person"
	RoleVolunteer Role = "Volunteer"
	RoleNGO       Role = "NGO"
	RoleAdmin     Role = "Admin"
)

// ParseRole maps s case-insensitively onto a known role.
func ParseRole(s string) (Role, error) {
	for _, r := range []Role{RolePerson, RoleVolunteer, RoleNGO, RoleAdmin} {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, nil
		}
	}
	return "", Invalid("unknown role %q", s)
}

// VolunteerDetails are present exactly when the role is Volunteer.
type VolunteerDetails struct {
	Availability string `json:"availability"`
}

// NGODetails are present exactly when the role is NGO.
type NGODetails struct {
	OrgName string `json:"org_name"`
}

// User is an account. Volunteer and NGO are pointers so a role without
// its details is detectable and rejected by Validate.
type User struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Contact   string            `json:"contact,omitempty"`
	Role      Role              `json:"role"`
	Volunteer *VolunteerDetails `json:"volunteer,omitempty"`
	NGO       *NGODetails       `json:"ngo,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Validate normalises the role and checks that the role details match it.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return Invalid("name required")
	}
	if !strings.Contains(u.Email, "@") {
		return Invalid("valid email required")
	}
	role, err := ParseRole(string(u.Role))
	if err != nil {
		return err
	}
	u.Role = role

	switch role {
	case RoleVolunteer:
		if u.Volunteer == nil {
			return Invalid("volunteer details required for role %s", role)
		}
		if u.NGO != nil {
			return Invalid("ngo details not allowed for role %s", role)
		}
	case RoleNGO:
		if u.NGO == nil || strings.TrimSpace(u.NGO.OrgName) == "" {
			return Invalid("organisation name required for role %s", role)
		}
		if u.Volunteer != nil {
			return Invalid("volunteer details not allowed for role %s", role)
		}
	default:
		if u.Volunteer != nil || u.NGO != nil {
			return Invalid("role %s takes no details", role)
		}
	}
	return nil
}
