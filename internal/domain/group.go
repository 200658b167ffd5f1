package domain

// Composition is the number of players of each role a complete group needs.
type Composition struct {
	Tank   int `json:"tank"`
	Healer int `json:"healer"`
	DPS    int `json:"dps"`
}

// GroupComposition is the fixed shape of every allocated group.
var GroupComposition = Composition{Tank: 1, Healer: 1, DPS: 3}

// Size returns the number of players in a full group.
func (c Composition) Size() int {
	return c.Tank + c.Healer + c.DPS
}

// Group is a staffed unit. ID is the 1-based sequence in allocation order.
type Group struct {
	ID     int      `json:"id"`
	Tank   *Player  `json:"tank"`
	Healer *Player  `json:"healer"`
	DPS    []Player `json:"dps"`
}

// Members returns the group's players in slot order: tank, healer, then DPS.
func (g Group) Members() []Player {
	members := make([]Player, 0, 2+len(g.DPS))
	if g.Tank != nil {
		members = append(members, *g.Tank)
	}
	if g.Healer != nil {
		members = append(members, *g.Healer)
	}
	return append(members, g.DPS...)
}

// RoleCount returns how many slots of the given role are filled.
func (g Group) RoleCount(role Role) int {
	switch role {
	case RoleTank:
		if g.Tank != nil {
			return 1
		}
	case RoleHealer:
		if g.Healer != nil {
			return 1
		}
	case RoleDPS:
		return len(g.DPS)
	}
	return 0
}

// Complete reports whether the group matches GroupComposition.
func (g Group) Complete() bool {
	return g.RoleCount(RoleTank) == GroupComposition.Tank &&
		g.RoleCount(RoleHealer) == GroupComposition.Healer &&
		g.RoleCount(RoleDPS) == GroupComposition.DPS
}

// Clone returns a deep copy that shares no players or slices with g.
func (g Group) Clone() Group {
	clone := Group{ID: g.ID}
	if g.Tank != nil {
		tank := *g.Tank
		clone.Tank = &tank
	}
	if g.Healer != nil {
		healer := *g.Healer
		clone.Healer = &healer
	}
	if g.DPS != nil {
		clone.DPS = append(make([]Player, 0, len(g.DPS)), g.DPS...)
	}
	return clone
}

// CloneGroups deep-copies every group.
func CloneGroups(groups []Group) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = g.Clone()
	}
	return out
}
