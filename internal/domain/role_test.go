package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"tank":   RoleTank,
		"Healer": RoleHealer,
		" DPS ":  RoleDPS,
		"dps":    RoleDPS,
		"TANK":   RoleTank,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRole("support")
	assert.Error(t, err)
	_, err = ParseRole("")
	assert.Error(t, err)
}

func TestRoleValid(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.Valid())
	}
	assert.False(t, Role(0).Valid())
	assert.False(t, Role(4).Valid())
	assert.Equal(t, "Role(0)", Role(0).String())
}

func TestRoleJSON(t *testing.T) {
	p := Player{ID: "p1", Name: "Ana", Role: RoleHealer}
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"p1","name":"Ana","role":"Healer"}`, string(data))

	var decoded Player
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p2","name":"Bo","role":"dps"}`), &decoded))
	assert.Equal(t, RoleDPS, decoded.Role)

	assert.Error(t, json.Unmarshal([]byte(`{"role":"bard"}`), &decoded))

	_, err = json.Marshal(Player{Role: Role(9)})
	assert.Error(t, err)
}

func TestGroupRoleCount(t *testing.T) {
	tank := Player{ID: "t", Role: RoleTank}
	healer := Player{ID: "h", Role: RoleHealer}
	g := Group{ID: 1, Tank: &tank, Healer: &healer, DPS: []Player{{ID: "d1"}, {ID: "d2"}, {ID: "d3"}}}

	assert.Equal(t, 1, g.RoleCount(RoleTank))
	assert.Equal(t, 1, g.RoleCount(RoleHealer))
	assert.Equal(t, 3, g.RoleCount(RoleDPS))
	assert.True(t, g.Complete())
	assert.Len(t, g.Members(), GroupComposition.Size())

	partial := Group{ID: 2, DPS: []Player{{ID: "d4"}}}
	assert.Equal(t, 0, partial.RoleCount(RoleTank))
	assert.False(t, partial.Complete())
	assert.Equal(t, []Player{{ID: "d4"}}, partial.Members())
}

func TestRoleCounts(t *testing.T) {
	c := RoleCounts{Tank: 2, Healer: 1, DPS: 7}
	assert.Equal(t, 2, c.Of(RoleTank))
	assert.Equal(t, 1, c.Of(RoleHealer))
	assert.Equal(t, 7, c.Of(RoleDPS))
	assert.Equal(t, 0, c.Of(Role(0)))
	assert.Equal(t, 10, c.Total())
}

func TestGroupClone(t *testing.T) {
	tank := Player{ID: "t", Name: "Tanky", Role: RoleTank}
	g := Group{ID: 1, Tank: &tank, DPS: []Player{{ID: "d1", Name: "Dee"}}}

	clones := CloneGroups([]Group{g})
	require.Len(t, clones, 1)
	assert.Equal(t, g, clones[0])

	clones[0].Tank.Name = "changed"
	clones[0].DPS[0].Name = "changed"
	assert.Equal(t, "Tanky", g.Tank.Name)
	assert.Equal(t, "Dee", g.DPS[0].Name)
	assert.Nil(t, clones[0].Healer)
}
