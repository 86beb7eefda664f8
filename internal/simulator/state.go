package simulator

import (
	"fmt"

	"pokedex/internal/evolution/models"
	dErrors "pokedex/pkg/domain-errors"
)

const (
	maxLevel     = 100
	maxHappiness = 255
	maxTextLen   = 64
)

// StatePatch edits individual world-state fields. Nil fields are left as they
// are.
type StatePatch struct {
	Level         *int                  `json:"level,omitempty"`
	Happiness     *int                  `json:"happiness,omitempty"`
	TimeOfDay     *models.TimeOfDay     `json:"time_of_day,omitempty"`
	Location      *string               `json:"location,omitempty"`
	HeldItem      *string               `json:"held_item,omitempty"`
	UsedItem      *string               `json:"used_item,omitempty"`
	KnownMove     *string               `json:"known_move,omitempty"`
	PartySpecies  *string               `json:"party_species,omitempty"`
	TradePartner  *string               `json:"trade_partner,omitempty"`
	Gender        *models.Gender        `json:"gender,omitempty"`
	PhysicalStats *models.PhysicalStats `json:"physical_stats,omitempty"`
	IsUpsideDown  *bool                 `json:"is_upside_down,omitempty"`
}

// Apply returns a new state with the patch applied to base.
func (p StatePatch) Apply(base models.WorldState) models.WorldState {
	next := base
	setInt(&next.Level, p.Level)
	setInt(&next.Happiness, p.Happiness)
	if p.TimeOfDay != nil {
		next.TimeOfDay = *p.TimeOfDay
	}
	setString(&next.Location, p.Location)
	setString(&next.HeldItem, p.HeldItem)
	setString(&next.UsedItem, p.UsedItem)
	setString(&next.KnownMove, p.KnownMove)
	setString(&next.PartySpecies, p.PartySpecies)
	setString(&next.TradePartner, p.TradePartner)
	if p.Gender != nil {
		next.Gender = *p.Gender
	}
	if p.PhysicalStats != nil {
		next.PhysicalStats = *p.PhysicalStats
	}
	if p.IsUpsideDown != nil {
		next.IsUpsideDown = *p.IsUpsideDown
	}
	return next
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// ValidateState checks that every field of state holds an allowed value.
func ValidateState(state models.WorldState) error {
	if state.Level < 1 || state.Level > maxLevel {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("level must be between 1 and %d", maxLevel))
	}
	if state.Happiness < 0 || state.Happiness > maxHappiness {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("happiness must be between 0 and %d", maxHappiness))
	}
	switch state.TimeOfDay {
	case models.TimeAny, models.TimeDay, models.TimeNight:
	default:
		return dErrors.New(dErrors.CodeValidation, "time_of_day must be one of any, day, night")
	}
	switch state.Gender {
	case models.GenderAny, models.GenderMale, models.GenderFemale:
	default:
		return dErrors.New(dErrors.CodeValidation, "gender must be one of any, male, female")
	}
	switch state.PhysicalStats {
	case models.PhysicalStatsAttack, models.PhysicalStatsDefense, models.PhysicalStatsEqual:
	default:
		return dErrors.New(dErrors.CodeValidation, "physical_stats must be one of attack, defense, equal")
	}
	for field, v := range map[string]string{
		"location":      state.Location,
		"held_item":     state.HeldItem,
		"used_item":     state.UsedItem,
		"known_move":    state.KnownMove,
		"party_species": state.PartySpecies,
		"trade_partner": state.TradePartner,
	} {
		if len(v) > maxTextLen {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s must be at most %d characters", field, maxTextLen))
		}
	}
	return nil
}
