package pokeapi

import (
	"strconv"
	"strings"

	"pokedex/internal/evolution"
	"pokedex/internal/evolution/models"
)

// NormalizeChain converts the raw tree into the strict model. Absent fields
// become "no constraint", a missing trigger becomes TriggerOther, and links
// deeper than evolution.MaxDepth are dropped.
func NormalizeChain(raw EvolutionChain) models.ChainNode {
	return normalizeLink(raw.Chain, 0)
}

func normalizeLink(link ChainLink, depth int) models.ChainNode {
	node := models.ChainNode{SpeciesName: link.Species.Name}
	if depth >= evolution.MaxDepth || len(link.EvolvesTo) == 0 {
		return node
	}
	node.Children = make([]models.Transition, 0, len(link.EvolvesTo))
	for _, next := range link.EvolvesTo {
		sets := make([]models.RequirementSet, 0, len(next.EvolutionDetails))
		for _, d := range next.EvolutionDetails {
			sets = append(sets, NormalizeDetail(d))
		}
		node.Children = append(node.Children, models.Transition{
			Target:          normalizeLink(next, depth+1),
			RequirementSets: sets,
		})
	}
	return node
}

// NormalizeDetail converts one raw requirement record.
func NormalizeDetail(d EvolutionDetail) models.RequirementSet {
	req := models.RequirementSet{Trigger: models.TriggerOther}
	if d.Trigger != nil {
		req.Trigger = models.ParseTrigger(d.Trigger.Name)
	}
	if d.MinLevel != nil && *d.MinLevel > 0 {
		req.MinLevel = *d.MinLevel
	}
	if d.MinHappiness != nil && *d.MinHappiness > 0 {
		req.MinHappiness = *d.MinHappiness
	}
	// time_of_day is "" when unconstrained
	req.TimeOfDay = models.TimeOfDay(strings.TrimSpace(d.TimeOfDay))
	if req.TimeOfDay == models.TimeAny {
		req.TimeOfDay = models.TimeUnset
	}
	req.Location = resourceName(d.Location)
	req.HeldItem = resourceName(d.HeldItem)
	req.UsedItem = resourceName(d.Item)
	req.KnownMove = resourceName(d.KnownMove)
	req.PartySpecies = resourceName(d.PartySpecies)
	if d.RelativePhysicalStats != nil {
		switch *d.RelativePhysicalStats {
		case 1:
			req.RelativePhysicalStats = models.RelativeStatsAttackGreater
		case -1:
			req.RelativePhysicalStats = models.RelativeStatsDefenseGreater
		case 0:
			req.RelativePhysicalStats = models.RelativeStatsEqual
		}
	}
	if d.Gender != nil {
		switch *d.Gender {
		case 1:
			req.Gender = models.GenderFemale
		case 2:
			req.Gender = models.GenderMale
		}
	}
	req.TurnUpsideDown = d.TurnUpsideDown
	return req
}

func resourceName(r *NamedResource) string {
	if r == nil {
		return ""
	}
	return r.Name
}

// IDFromURL extracts the trailing numeric id from a resource URL such as
// https://pokeapi.co/api/v2/evolution-chain/67/.
func IDFromURL(url string) (int, bool) {
	trimmed := strings.TrimRight(url, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return 0, false
	}
	id, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
