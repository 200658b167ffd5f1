package allocation

import "github.com/spec-kit/group-allocator/internal/domain"

// Result is the outcome of one allocation pass.
type Result struct {
	Groups     []domain.Group  `json:"groups"`
	Unassigned []domain.Player `json:"unassigned"`
}

// Allocate greedily forms complete groups from the roster. Each group takes the
// earliest remaining tank, the earliest remaining healer and the next three
// DPS in roster order. Players that could not be placed are returned grouped
// by role (tanks, healers, then DPS), each in roster order.
func Allocate(roster []domain.Player) Result {
	var tanks, healers, dps, unknown []domain.Player
	for _, p := range roster {
		switch p.Role {
		case domain.RoleTank:
			tanks = append(tanks, p)
		case domain.RoleHealer:
			healers = append(healers, p)
		case domain.RoleDPS:
			dps = append(dps, p)
		default:
			unknown = append(unknown, p)
		}
	}

	comp := domain.GroupComposition
	groups := make([]domain.Group, 0, ExpectedGroups(domain.RoleCounts{
		Tank:   len(tanks),
		Healer: len(healers),
		DPS:    len(dps),
	}))
	for len(tanks) >= comp.Tank && len(healers) >= comp.Healer && len(dps) >= comp.DPS {
		tank := tanks[0]
		healer := healers[0]
		members := make([]domain.Player, comp.DPS)
		copy(members, dps[:comp.DPS])

		groups = append(groups, domain.Group{
			ID:     len(groups) + 1,
			Tank:   &tank,
			Healer: &healer,
			DPS:    members,
		})

		tanks = tanks[comp.Tank:]
		healers = healers[comp.Healer:]
		dps = dps[comp.DPS:]
	}

	unassigned := make([]domain.Player, 0, len(tanks)+len(healers)+len(dps)+len(unknown))
	unassigned = append(unassigned, tanks...)
	unassigned = append(unassigned, healers...)
	unassigned = append(unassigned, dps...)
	unassigned = append(unassigned, unknown...)

	return Result{Groups: groups, Unassigned: unassigned}
}

// CountByRole tallies players per role.
func CountByRole(players []domain.Player) domain.RoleCounts {
	var counts domain.RoleCounts
	for _, p := range players {
		switch p.Role {
		case domain.RoleTank:
			counts.Tank++
		case domain.RoleHealer:
			counts.Healer++
		case domain.RoleDPS:
			counts.DPS++
		}
	}
	return counts
}

// ExpectedGroups returns how many complete groups the given counts can fill.
func ExpectedGroups(counts domain.RoleCounts) int {
	comp := domain.GroupComposition
	return min(counts.Tank/comp.Tank, counts.Healer/comp.Healer, counts.DPS/comp.DPS)
}
