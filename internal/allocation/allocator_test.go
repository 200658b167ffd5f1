package allocation

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/group-allocator/internal/domain"
)

func player(id string, role domain.Role) domain.Player {
	return domain.Player{ID: id, Name: id, Role: role}
}

func ids(players []domain.Player) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.ID)
	}
	return out
}

func randomRoster(rng *rand.Rand, size int) []domain.Player {
	roster := make([]domain.Player, size)
	for i := range roster {
		roster[i] = player(fmt.Sprintf("p%d", i), domain.Roles[rng.IntN(len(domain.Roles))])
	}
	return roster
}

func TestAllocate_SingleFullGroup(t *testing.T) {
	roster := []domain.Player{
		player("A1", domain.RoleTank),
		player("H1", domain.RoleHealer),
		player("D1", domain.RoleDPS),
		player("D2", domain.RoleDPS),
		player("D3", domain.RoleDPS),
	}

	res := Allocate(roster)

	require.Len(t, res.Groups, 1)
	g := res.Groups[0]
	assert.Equal(t, 1, g.ID)
	assert.Equal(t, "A1", g.Tank.ID)
	assert.Equal(t, "H1", g.Healer.ID)
	assert.Equal(t, []string{"D1", "D2", "D3"}, ids(g.DPS))
	assert.Empty(t, res.Unassigned)
}

func TestAllocate_NotEnoughForAGroup(t *testing.T) {
	roster := []domain.Player{
		player("D1", domain.RoleDPS),
		player("A1", domain.RoleTank),
		player("D2", domain.RoleDPS),
	}

	res := Allocate(roster)

	assert.Empty(t, res.Groups)
	assert.Equal(t, []string{"A1", "D1", "D2"}, ids(res.Unassigned))
}

func TestAllocate_TwoGroups(t *testing.T) {
	var roster []domain.Player
	for i := 1; i <= 2; i++ {
		roster = append(roster, player(fmt.Sprintf("A%d", i), domain.RoleTank))
		roster = append(roster, player(fmt.Sprintf("H%d", i), domain.RoleHealer))
	}
	for i := 1; i <= 6; i++ {
		roster = append(roster, player(fmt.Sprintf("D%d", i), domain.RoleDPS))
	}

	res := Allocate(roster)

	require.Len(t, res.Groups, 2)
	assert.Empty(t, res.Unassigned)
	assert.Equal(t, "A1", res.Groups[0].Tank.ID)
	assert.Equal(t, "A2", res.Groups[1].Tank.ID)
	assert.Equal(t, []string{"D4", "D5", "D6"}, ids(res.Groups[1].DPS))
	assert.Equal(t, 2, res.Groups[1].ID)
}

func TestAllocate_Empty(t *testing.T) {
	res := Allocate(nil)
	assert.NotNil(t, res.Groups)
	assert.NotNil(t, res.Unassigned)
	assert.Empty(t, res.Groups)
	assert.Empty(t, res.Unassigned)
}

func TestAllocate_LeftoverOrdering(t *testing.T) {
	roster := []domain.Player{
		player("D1", domain.RoleDPS),
		player("H1", domain.RoleHealer),
		player("A1", domain.RoleTank),
		player("D2", domain.RoleDPS),
		player("A2", domain.RoleTank),
		player("H2", domain.RoleHealer),
		player("D3", domain.RoleDPS),
		player("D4", domain.RoleDPS),
		player("A3", domain.RoleTank),
	}

	res := Allocate(roster)

	require.Len(t, res.Groups, 1)
	assert.Equal(t, []string{"A2", "A3", "H2", "D4"}, ids(res.Unassigned))
}

func TestAllocate_DoesNotMutateRoster(t *testing.T) {
	roster := []domain.Player{
		player("D1", domain.RoleDPS),
		player("A1", domain.RoleTank),
		player("D2", domain.RoleDPS),
		player("H1", domain.RoleHealer),
		player("D3", domain.RoleDPS),
	}
	before := append([]domain.Player(nil), roster...)

	res := Allocate(roster)
	res.Groups[0].DPS[0].Name = "changed"
	res.Groups[0].Tank.Name = "changed"

	assert.Equal(t, before, roster)
}

func TestAllocate_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	roster := randomRoster(rng, 40)

	assert.Equal(t, Allocate(roster), Allocate(roster))
}

func TestAllocate_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for n := 0; n < 200; n++ {
		roster := randomRoster(rng, rng.IntN(60))
		counts := CountByRole(roster)
		res := Allocate(roster)

		require.Len(t, res.Groups, ExpectedGroups(counts))
		require.Equal(t,
			min(counts.Tank, counts.Healer, counts.DPS/3),
			len(res.Groups))

		seen := make(map[string]int, len(roster))
		for i, g := range res.Groups {
			require.Equal(t, i+1, g.ID)
			require.True(t, g.Complete(), "group %d incomplete", g.ID)
			require.Equal(t, domain.RoleTank, g.Tank.Role)
			require.Equal(t, domain.RoleHealer, g.Healer.Role)
			for _, d := range g.DPS {
				require.Equal(t, domain.RoleDPS, d.Role)
			}
			for _, m := range g.Members() {
				seen[m.ID]++
			}
		}
		for _, p := range res.Unassigned {
			seen[p.ID]++
		}
		require.Len(t, seen, len(roster))
		for _, p := range roster {
			require.Equal(t, 1, seen[p.ID], "player %s", p.ID)
		}
	}
}

func TestAllocate_OrderStability(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	roster := randomRoster(rng, 80)
	res := Allocate(roster)

	groupOf := make(map[string]int)
	for _, g := range res.Groups {
		for _, m := range g.Members() {
			groupOf[m.ID] = g.ID
		}
	}

	for _, role := range domain.Roles {
		last := 0
		for _, p := range roster {
			if p.Role != role {
				continue
			}
			id, ok := groupOf[p.ID]
			if !ok {
				continue
			}
			assert.GreaterOrEqual(t, id, last, "%s %s assigned out of order", role, p.ID)
			last = id
		}
	}
}

func TestCountByRole(t *testing.T) {
	roster := []domain.Player{
		player("A1", domain.RoleTank),
		player("D1", domain.RoleDPS),
		player("D2", domain.RoleDPS),
		player("H1", domain.RoleHealer),
	}
	assert.Equal(t, domain.RoleCounts{Tank: 1, Healer: 1, DPS: 2}, CountByRole(roster))
	assert.Equal(t, domain.RoleCounts{}, CountByRole(nil))
}

func TestExpectedGroups(t *testing.T) {
	assert.Equal(t, 0, ExpectedGroups(domain.RoleCounts{}))
	assert.Equal(t, 2, ExpectedGroups(domain.RoleCounts{Tank: 3, Healer: 2, DPS: 9}))
	assert.Equal(t, 1, ExpectedGroups(domain.RoleCounts{Tank: 5, Healer: 5, DPS: 5}))
}
