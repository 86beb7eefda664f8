package pokeapi

// NamedResource is PokéAPI's {name, url} reference.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// EvolutionDetail is one raw requirement record as served by
// /evolution-chain/{id}. Every field except Trigger may be null or absent.
type EvolutionDetail struct {
	MinLevel              *int           `json:"min_level"`
	MinHappiness          *int           `json:"min_happiness"`
	MinBeauty             *int           `json:"min_beauty"`
	MinAffection          *int           `json:"min_affection"`
	TimeOfDay             string         `json:"time_of_day"`
	Location              *NamedResource `json:"location"`
	HeldItem              *NamedResource `json:"held_item"`
	Item                  *NamedResource `json:"item"`
	KnownMove             *NamedResource `json:"known_move"`
	KnownMoveType         *NamedResource `json:"known_move_type"`
	PartySpecies          *NamedResource `json:"party_species"`
	PartyType             *NamedResource `json:"party_type"`
	RelativePhysicalStats *int           `json:"relative_physical_stats"`
	TradeSpecies          *NamedResource `json:"trade_species"`
	Trigger               *NamedResource `json:"trigger"`
	TurnUpsideDown        bool           `json:"turn_upside_down"`
	Gender                *int           `json:"gender"`
}

// ChainLink is one node of the raw evolution tree.
type ChainLink struct {
	IsBaby           bool              `json:"is_baby"`
	Species          NamedResource     `json:"species"`
	EvolutionDetails []EvolutionDetail `json:"evolution_details"`
	EvolvesTo        []ChainLink       `json:"evolves_to"`
}

// EvolutionChain is the /evolution-chain/{id} payload.
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// Species is the subset of /pokemon-species/{id} the service reads.
type Species struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

// Pokemon is the subset of /pokemon/{name} the service reads.
type Pokemon struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Species NamedResource `json:"species"`
	Types   []struct {
		Slot int           `json:"slot"`
		Type NamedResource `json:"type"`
	} `json:"types"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     NamedResource `json:"stat"`
	} `json:"stats"`
	Moves []PokemonMove `json:"moves"`
}

// PokemonMove is one learnable move with the games and methods it is
// learned by.
type PokemonMove struct {
	Move                NamedResource     `json:"move"`
	VersionGroupDetails []MoveLearnDetail `json:"version_group_details"`
}

// MoveLearnDetail is how a move is learned in one version group.
type MoveLearnDetail struct {
	LevelLearnedAt  int           `json:"level_learned_at"`
	MoveLearnMethod NamedResource `json:"move_learn_method"`
	VersionGroup    NamedResource `json:"version_group"`
}

// Encounter is one entry of /pokemon/{id}/encounters.
type Encounter struct {
	LocationArea   NamedResource `json:"location_area"`
	VersionDetails []struct {
		MaxChance int           `json:"max_chance"`
		Version   NamedResource `json:"version"`
	} `json:"version_details"`
}

// Move is the subset of /move/{name} the service reads. Power and Accuracy
// are null for status moves.
type Move struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Type     NamedResource `json:"type"`
	Power    *int          `json:"power"`
	Accuracy *int          `json:"accuracy"`
	PP       *int          `json:"pp"`
	Machines []struct {
		Machine      NamedResource `json:"machine"`
		VersionGroup NamedResource `json:"version_group"`
	} `json:"machines"`
}

// ArtworkURL prefers the official artwork over the default sprite.
func (p Pokemon) ArtworkURL() string {
	if p.Sprites.Other.OfficialArtwork.FrontDefault != "" {
		return p.Sprites.Other.OfficialArtwork.FrontDefault
	}
	return p.Sprites.FrontDefault
}

// ResourceList is a paginated list response such as /pokemon?limit=N.
type ResourceList struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

// Generation is the subset of /generation/{id} the service reads.
type Generation struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	VersionGroups  []NamedResource `json:"version_groups"`
	PokemonSpecies []NamedResource `json:"pokemon_species"`
}
