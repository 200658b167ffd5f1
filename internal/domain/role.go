package domain

import (
	"fmt"
	"strings"
)

// Role enumerates the positions a player can fill in a group.
type Role int

const (
	RoleTank Role = iota + 1
	RoleHealer
	RoleDPS
)

// Roles lists every role in allocation order.
var Roles = [...]Role{RoleTank, RoleHealer, RoleDPS}

// ParseRole resolves a role name, ignoring case and surrounding whitespace.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tank":
		return RoleTank, nil
	case "healer":
		return RoleHealer, nil
	case "dps":
		return RoleDPS, nil
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleTank, RoleHealer, RoleDPS:
		return true
	}
	return false
}

func (r Role) String() string {
	switch r {
	case RoleTank:
		return "Tank"
	case RoleHealer:
		return "Healer"
	case RoleDPS:
		return "DPS"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// MarshalText encodes the role by name.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid role %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes a role name.
func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
