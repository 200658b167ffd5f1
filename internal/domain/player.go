package domain

// Player is a roster member. Players are never modified once created.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// RoleCounts tallies players per role.
type RoleCounts struct {
	Tank   int `json:"tank"`
	Healer int `json:"healer"`
	DPS    int `json:"dps"`
}

// Of returns the count for the given role.
func (c RoleCounts) Of(role Role) int {
	switch role {
	case RoleTank:
		return c.Tank
	case RoleHealer:
		return c.Healer
	case RoleDPS:
		return c.DPS
	}
	return 0
}

// Total returns the sum over all roles.
func (c RoleCounts) Total() int {
	return c.Tank + c.Healer + c.DPS
}
