package models

// Trigger is the category of event that causes an evolution.
type Trigger string

const (
	TriggerLevelUp Trigger = "level-up"
	TriggerTrade   Trigger = "trade"
	TriggerUseItem Trigger = "use-item"
	TriggerShed    Trigger = "shed"
	TriggerOther   Trigger = "other"
)

// ParseTrigger maps an upstream trigger name onto a Trigger. Unknown or empty
// names become TriggerOther so that a malformed record never adds a constraint.
func ParseTrigger(name string) Trigger {
	switch Trigger(name) {
	case TriggerLevelUp, TriggerTrade, TriggerUseItem, TriggerShed:
		return Trigger(name)
	default:
		return TriggerOther
	}
}

// TimeOfDay is used both as a requirement (day/night) and as world state,
// where TimeAny matches every requirement.
type TimeOfDay string

const (
	TimeUnset TimeOfDay = ""
	TimeAny   TimeOfDay = "any"
	TimeDay   TimeOfDay = "day"
	TimeNight TimeOfDay = "night"
)

// Gender is used both as a requirement (male/female) and as world state.
type Gender string

const (
	GenderUnset  Gender = ""
	GenderAny    Gender = "any"
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// RelativeStats is the attack/defense comparison a requirement may demand.
type RelativeStats string

const (
	RelativeStatsUnset          RelativeStats = ""
	RelativeStatsAttackGreater  RelativeStats = "attack-greater"
	RelativeStatsDefenseGreater RelativeStats = "defense-greater"
	RelativeStatsEqual          RelativeStats = "equal"
)

// PhysicalStats is the world-state side of the attack/defense comparison.
type PhysicalStats string

const (
	PhysicalStatsAttack  PhysicalStats = "attack"
	PhysicalStatsDefense PhysicalStats = "defense"
	PhysicalStatsEqual   PhysicalStats = "equal"
)

// RequirementSet is one alternate bundle of conditions sufficient to trigger an
// evolution. Zero values mean "no constraint" for every field except Trigger.
type RequirementSet struct {
	Trigger               Trigger       `json:"trigger"`
	MinLevel              int           `json:"min_level,omitempty"`
	MinHappiness          int           `json:"min_happiness,omitempty"`
	TimeOfDay             TimeOfDay     `json:"time_of_day,omitempty"`
	Location              string        `json:"location,omitempty"`
	HeldItem              string        `json:"held_item,omitempty"`
	UsedItem              string        `json:"used_item,omitempty"`
	KnownMove             string        `json:"known_move,omitempty"`
	PartySpecies          string        `json:"party_species,omitempty"`
	RelativePhysicalStats RelativeStats `json:"relative_physical_stats,omitempty"`
	Gender                Gender        `json:"gender,omitempty"`
	TurnUpsideDown        bool          `json:"turn_upside_down,omitempty"`
}

// ChainNode is one species in an evolution chain.
type ChainNode struct {
	SpeciesName string       `json:"species_name"`
	Children    []Transition `json:"children,omitempty"`
}

// Transition is the edge from a node to one of the species it evolves into.
type Transition struct {
	Target          ChainNode        `json:"target"`
	RequirementSets []RequirementSet `json:"requirement_sets"`
}

// WorldState is the hypothetical snapshot of in-game conditions a chain is
// evaluated against. It is a value type; edits produce a new value.
type WorldState struct {
	Level         int           `json:"level" yaml:"level"`
	Happiness     int           `json:"happiness" yaml:"happiness"`
	TimeOfDay     TimeOfDay     `json:"time_of_day" yaml:"time_of_day"`
	Location      string        `json:"location" yaml:"location"`
	HeldItem      string        `json:"held_item" yaml:"held_item"`
	UsedItem      string        `json:"used_item" yaml:"used_item"`
	KnownMove     string        `json:"known_move" yaml:"known_move"`
	PartySpecies  string        `json:"party_species" yaml:"party_species"`
	TradePartner  string        `json:"trade_partner" yaml:"trade_partner"`
	Gender        Gender        `json:"gender" yaml:"gender"`
	PhysicalStats PhysicalStats `json:"physical_stats" yaml:"physical_stats"`
	IsUpsideDown  bool          `json:"is_upside_down" yaml:"is_upside_down"`
}

// DefaultWorldState returns the baseline state every scenario starts from.
func DefaultWorldState() WorldState {
	return WorldState{
		Level:         1,
		Happiness:     0,
		TimeOfDay:     TimeAny,
		Gender:        GenderAny,
		PhysicalStats: PhysicalStatsEqual,
	}
}

// EvaluationResult is the outcome for one (parent, child, requirement set).
type EvaluationResult struct {
	From                  string   `json:"from"`
	To                    string   `json:"to"`
	Reachable             bool     `json:"reachable"`
	SatisfiedRequirements []string `json:"requirements"`
	MissingRequirements   []string `json:"missing_requirements"`
}
