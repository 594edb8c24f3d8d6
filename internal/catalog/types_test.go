package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pokecatch/internal/catalog"
	"github.com/rshade/pokecatch/internal/catalog/catalogtest"
)

func TestPokemonAccessors(t *testing.T) {
	p := catalogtest.Record(25, "pikachu")

	attack, ok := p.Attack()
	require.True(t, ok)
	assert.Equal(t, 85, attack)

	hp, ok := p.Stat("hp")
	require.True(t, ok)
	assert.Equal(t, 65, hp)

	_, ok = p.Stat("speed")
	assert.False(t, ok)

	ability, ok := p.PrimaryAbility()
	require.True(t, ok)
	assert.Equal(t, "blaze", ability)

	art, ok := p.Artwork()
	require.True(t, ok)
	assert.Equal(t, "https://img.example/25.png", art)

	assert.Equal(t, []string{"fire"}, p.TypeNames())
	require.NoError(t, p.Validate())
}

func TestPokemonValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *catalog.Pokemon)
		missing string
	}{
		{name: "no attack", mutate: func(p *catalog.Pokemon) { p.Stats = p.Stats[:1] }, missing: "stats.attack"},
		{name: "no abilities", mutate: func(p *catalog.Pokemon) { p.Abilities = nil }, missing: "abilities[0]"},
		{name: "no artwork", mutate: func(p *catalog.Pokemon) { p.Sprites.Other = nil }, missing: "official-artwork"},
		{name: "no name", mutate: func(p *catalog.Pokemon) { p.Name = "" }, missing: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := catalogtest.Record(1, "bulbasaur")
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, catalog.ErrMalformed)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestTypeNames_EmptyNameFallsBack(t *testing.T) {
	p := catalog.Pokemon{Types: []catalog.TypeSlot{{Slot: 1}, {Slot: 2, Type: catalog.NamedResource{Name: "poison"}}}}
	assert.Equal(t, []string{"unknown", "poison"}, p.TypeNames())
}
