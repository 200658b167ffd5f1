package allocation

import "github.com/spec-kit/group-allocator/internal/domain"

// Redistribute randomly reassigns members across groups while keeping every
// group's shape. Tanks, healers and DPS are shuffled independently, so a player
// only ever moves into a slot of their own role. Group IDs and the number of
// filled slots per role at each position are preserved. The input is not
// modified.
//
// With fewer than two groups there is nothing to exchange and a copy of the
// input is returned. A nil shuffler uses a time-seeded one.
func Redistribute(groups []domain.Group, shuffler Shuffler) []domain.Group {
	out := make([]domain.Group, len(groups))
	if len(groups) < 2 {
		for i, g := range groups {
			out[i] = g.Clone()
		}
		return out
	}
	if shuffler == nil {
		shuffler = NewShuffler()
	}

	var tanks, healers, dps []domain.Player
	for _, g := range groups {
		if g.Tank != nil {
			tanks = append(tanks, *g.Tank)
		}
		if g.Healer != nil {
			healers = append(healers, *g.Healer)
		}
		dps = append(dps, g.DPS...)
	}

	shufflePlayers(shuffler, tanks)
	shufflePlayers(shuffler, healers)
	shufflePlayers(shuffler, dps)

	var ti, hi, di int
	for i, g := range groups {
		next := domain.Group{ID: g.ID, DPS: make([]domain.Player, len(g.DPS))}
		if g.Tank != nil {
			tank := tanks[ti]
			next.Tank = &tank
			ti++
		}
		if g.Healer != nil {
			healer := healers[hi]
			next.Healer = &healer
			hi++
		}
		di += copy(next.DPS, dps[di:di+len(g.DPS)])
		out[i] = next
	}
	return out
}

func shufflePlayers(shuffler Shuffler, players []domain.Player) {
	shuffler.Shuffle(len(players), func(i, j int) {
		players[i], players[j] = players[j], players[i]
	})
}
