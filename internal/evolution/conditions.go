package evolution

import (
	"fmt"
	"strings"

	"pokedex/internal/evolution/models"
)

// condition is one row of the predicate table. Every operation in this package
// walks the same rows in the same order, so the requirement list, the missing
// list and the reachability verdict cannot disagree.
type condition struct {
	field     string
	applies   func(req models.RequirementSet) bool
	satisfied func(req models.RequirementSet, state models.WorldState) bool
	label     func(req models.RequirementSet) string
	missing   func(req models.RequirementSet, state models.WorldState) string
}

var conditions = []condition{
	{
		field:   "min_level",
		applies: func(req models.RequirementSet) bool { return req.MinLevel > 0 },
		satisfied: func(req models.RequirementSet, state models.WorldState) bool {
			return state.Level >= req.MinLevel
		},
		label: func(req models.RequirementSet) string { return fmt.Sprintf("Level %d", req.MinLevel) },
		missing: func(req models.RequirementSet, state models.WorldState) string {
			return fmt.Sprintf("Need level %d (currently %d)", req.MinLevel, state.Level)
		},
	},
	{
		field:   "min_happiness",
		applies: func(req models.RequirementSet) bool { return req.MinHappiness > 0 },
		satisfied: func(req models.RequirementSet, state models.WorldState) bool {
			return state.Happiness >= req.MinHappiness
		},
		label: func(req models.RequirementSet) string { return fmt.Sprintf("Happiness %d", req.MinHappiness) },
		missing: func(req models.RequirementSet, state models.WorldState) string {
			return fmt.Sprintf("Need happiness %d (currently %d)", req.MinHappiness, state.Happiness)
		},
	},
	{
		field:   "time_of_day",
		applies: func(req models.RequirementSet) bool { return req.TimeOfDay != models.TimeUnset },
		satisfied: func(req models.RequirementSet, state models.WorldState) bool {
			return state.TimeOfDay == models.TimeAny || state.TimeOfDay == req.TimeOfDay
		},
		label: func(req models.RequirementSet) string { return fmt.Sprintf("%s time", req.TimeOfDay) },
		missing: func(req models.RequirementSet, _ models.WorldState) string {
			return fmt.Sprintf("Must be %s time", req.TimeOfDay)
		},
	},
	containment("location",
		func(req models.RequirementSet) string { return req.Location },
		func(state models.WorldState) string { return state.Location },
		"At %s", "Must be at %s"),
	containment("held_item",
		func(req models.RequirementSet) string { return req.HeldItem },
		func(state models.WorldState) string { return state.HeldItem },
		"Hold %s", "Must hold %s"),
	containment("used_item",
		func(req models.RequirementSet) string { return req.UsedItem },
		func(state models.WorldState) string { return state.UsedItem },
		"Use %s", "Must use %s"),
	containment("known_move",
		func(req models.RequirementSet) string { return req.KnownMove },
		func(state models.WorldState) string { return state.KnownMove },
		"Know %s", "Must know %s"),
	containment("party_species",
		func(req models.RequirementSet) string { return req.PartySpecies },
		func(state models.WorldState) string { return state.PartySpecies },
		"%s in party", "Need %s in party"),
	{
		field:   "trade",
		applies: func(req models.RequirementSet) bool { return req.Trigger == models.TriggerTrade },
		satisfied: func(_ models.RequirementSet, state models.WorldState) bool {
			return state.TradePartner != ""
		},
		label:   func(models.RequirementSet) string { return "Trade" },
		missing: func(models.RequirementSet, models.WorldState) string { return "Need trading partner" },
	},
	{
		field: "gender",
		applies: func(req models.RequirementSet) bool {
			return req.Gender == models.GenderMale || req.Gender == models.GenderFemale
		},
		satisfied: func(req models.RequirementSet, state models.WorldState) bool {
			return state.Gender == req.Gender
		},
		label: func(req models.RequirementSet) string {
			if req.Gender == models.GenderFemale {
				return "Female only"
			}
			return "Male only"
		},
		missing: func(req models.RequirementSet, _ models.WorldState) string {
			return fmt.Sprintf("Must be %s", req.Gender)
		},
	},
	{
		field:   "relative_physical_stats",
		applies: func(req models.RequirementSet) bool { return req.RelativePhysicalStats != models.RelativeStatsUnset },
		satisfied: func(req models.RequirementSet, state models.WorldState) bool {
			return physicalStatsFor(req.RelativePhysicalStats) == state.PhysicalStats
		},
		label: func(req models.RequirementSet) string { return statsLabel(req.RelativePhysicalStats) },
		missing: func(req models.RequirementSet, state models.WorldState) string {
			return fmt.Sprintf("Need %s (currently %s)", statsLabel(req.RelativePhysicalStats), state.PhysicalStats)
		},
	},
	{
		field:   "turn_upside_down",
		applies: func(req models.RequirementSet) bool { return req.TurnUpsideDown },
		satisfied: func(_ models.RequirementSet, state models.WorldState) bool {
			return state.IsUpsideDown
		},
		label:   func(models.RequirementSet) string { return "Turn device upside down" },
		missing: func(models.RequirementSet, models.WorldState) string { return "Must turn device upside down" },
	},
}

// containment builds a row whose predicate holds when the world-state value
// contains the required identifier as a substring.
func containment(
	field string,
	required func(models.RequirementSet) string,
	actual func(models.WorldState) string,
	labelFormat, missingFormat string,
) condition {
	return condition{
		field:   field,
		applies: func(req models.RequirementSet) bool { return required(req) != "" },
		satisfied: func(req models.RequirementSet, state models.WorldState) bool {
			return strings.Contains(actual(state), required(req))
		},
		label: func(req models.RequirementSet) string {
			return fmt.Sprintf(labelFormat, humanize(required(req)))
		},
		missing: func(req models.RequirementSet, _ models.WorldState) string {
			return fmt.Sprintf(missingFormat, humanize(required(req)))
		},
	}
}

func physicalStatsFor(rel models.RelativeStats) models.PhysicalStats {
	switch rel {
	case models.RelativeStatsAttackGreater:
		return models.PhysicalStatsAttack
	case models.RelativeStatsDefenseGreater:
		return models.PhysicalStatsDefense
	case models.RelativeStatsEqual:
		return models.PhysicalStatsEqual
	default:
		// unknown comparison never matches a real state
		return ""
	}
}

func statsLabel(rel models.RelativeStats) string {
	switch rel {
	case models.RelativeStatsAttackGreater:
		return "Attack > Defense"
	case models.RelativeStatsDefenseGreater:
		return "Defense > Attack"
	case models.RelativeStatsEqual:
		return "Attack = Defense"
	default:
		return string(rel)
	}
}

// humanize renders an upstream identifier such as "thunder-stone" for display.
func humanize(identifier string) string {
	return strings.ReplaceAll(identifier, "-", " ")
}
