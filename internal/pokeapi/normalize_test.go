package pokeapi

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/internal/evolution"
	"pokedex/internal/evolution/models"
)

func intPtr(v int) *int { return &v }

func TestNormalizeChain_Fixture(t *testing.T) {
	data, err := os.ReadFile("testdata/evolution_chain_wurmple.json")
	require.NoError(t, err)

	var raw EvolutionChain
	require.NoError(t, json.Unmarshal(data, &raw))

	root := NormalizeChain(raw)

	assert.Equal(t, "wurmple", root.SpeciesName)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "silcoon", root.Children[0].Target.SpeciesName)
	assert.Equal(t, "cascoon", root.Children[1].Target.SpeciesName)
	assert.Equal(t, []models.RequirementSet{{Trigger: models.TriggerLevelUp, MinLevel: 7}},
		root.Children[0].RequirementSets)
	assert.Equal(t, models.TimeNight, root.Children[1].RequirementSets[0].TimeOfDay)
	assert.Equal(t, "dustox", root.Children[1].Target.Children[0].Target.SpeciesName)

	sim := evolution.Simulate(&root, models.DefaultWorldState())
	assert.Len(t, sim.Results, 4)
}

func TestNormalizeDetail(t *testing.T) {
	tests := []struct {
		name     string
		raw      EvolutionDetail
		expected models.RequirementSet
	}{
		{
			name:     "missing trigger becomes other",
			raw:      EvolutionDetail{},
			expected: models.RequirementSet{Trigger: models.TriggerOther},
		},
		{
			name:     "unknown trigger becomes other",
			raw:      EvolutionDetail{Trigger: &NamedResource{Name: "spin"}},
			expected: models.RequirementSet{Trigger: models.TriggerOther},
		},
		{
			name: "trade holding an item",
			raw: EvolutionDetail{
				Trigger:  &NamedResource{Name: "trade"},
				HeldItem: &NamedResource{Name: "metal-coat"},
			},
			expected: models.RequirementSet{Trigger: models.TriggerTrade, HeldItem: "metal-coat"},
		},
		{
			name: "stone evolution",
			raw: EvolutionDetail{
				Trigger: &NamedResource{Name: "use-item"},
				Item:    &NamedResource{Name: "thunder-stone"},
			},
			expected: models.RequirementSet{Trigger: models.TriggerUseItem, UsedItem: "thunder-stone"},
		},
		{
			name: "female only with level",
			raw: EvolutionDetail{
				Trigger:  &NamedResource{Name: "level-up"},
				MinLevel: intPtr(20),
				Gender:   intPtr(1),
			},
			expected: models.RequirementSet{Trigger: models.TriggerLevelUp, MinLevel: 20, Gender: models.GenderFemale},
		},
		{
			name:     "male only",
			raw:      EvolutionDetail{Trigger: &NamedResource{Name: "use-item"}, Gender: intPtr(2)},
			expected: models.RequirementSet{Trigger: models.TriggerUseItem, Gender: models.GenderMale},
		},
		{
			name: "relative stats",
			raw: EvolutionDetail{
				Trigger:               &NamedResource{Name: "level-up"},
				MinLevel:              intPtr(20),
				RelativePhysicalStats: intPtr(-1),
			},
			expected: models.RequirementSet{
				Trigger:               models.TriggerLevelUp,
				MinLevel:              20,
				RelativePhysicalStats: models.RelativeStatsDefenseGreater,
			},
		},
		{
			name:     "equal stats",
			raw:      EvolutionDetail{Trigger: &NamedResource{Name: "level-up"}, RelativePhysicalStats: intPtr(0)},
			expected: models.RequirementSet{Trigger: models.TriggerLevelUp, RelativePhysicalStats: models.RelativeStatsEqual},
		},
		{
			name: "upside down with friendship and move",
			raw: EvolutionDetail{
				Trigger:        &NamedResource{Name: "level-up"},
				MinHappiness:   intPtr(160),
				KnownMove:      &NamedResource{Name: "double-hit"},
				PartySpecies:   &NamedResource{Name: "remoraid"},
				Location:       &NamedResource{Name: "mt-coronet"},
				TurnUpsideDown: true,
			},
			expected: models.RequirementSet{
				Trigger:        models.TriggerLevelUp,
				MinHappiness:   160,
				KnownMove:      "double-hit",
				PartySpecies:   "remoraid",
				Location:       "mt-coronet",
				TurnUpsideDown: true,
			},
		},
		{
			name:     "zero level is no constraint",
			raw:      EvolutionDetail{Trigger: &NamedResource{Name: "shed"}, MinLevel: intPtr(0)},
			expected: models.RequirementSet{Trigger: models.TriggerShed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDetail(tt.raw))
		})
	}
}

func TestNormalizeChain_DepthBounded(t *testing.T) {
	link := ChainLink{Species: NamedResource{Name: "deep"}}
	for i := 0; i < evolution.MaxDepth+5; i++ {
		link = ChainLink{
			Species:          NamedResource{Name: "deep"},
			EvolutionDetails: []EvolutionDetail{{Trigger: &NamedResource{Name: "level-up"}}},
			EvolvesTo:        []ChainLink{link},
		}
	}

	root := NormalizeChain(EvolutionChain{Chain: link})

	assert.Equal(t, evolution.MaxDepth, evolution.CountTransitions(&root))
}

func TestIDFromURL(t *testing.T) {
	tests := []struct {
		url string
		id  int
		ok  bool
	}{
		{"https://pokeapi.co/api/v2/evolution-chain/67/", 67, true},
		{"https://pokeapi.co/api/v2/evolution-chain/1", 1, true},
		{"https://pokeapi.co/api/v2/evolution-chain/", 0, false},
		{"", 0, false},
		{"https://pokeapi.co/api/v2/evolution-chain/abc/", 0, false},
	}
	for _, tt := range tests {
		id, ok := IDFromURL(tt.url)
		assert.Equal(t, tt.ok, ok, tt.url)
		assert.Equal(t, tt.id, id, tt.url)
	}
}
