package handler

import "pokedex/internal/pokemon"

// StatResponse is one base stat.
type StatResponse struct {
	Name string `json:"name"`
	Base int    `json:"base_stat"`
}

// CardResponse is the HTTP response for GET /pokemon/{name}.
type CardResponse struct {
	ID      int            `json:"id"`
	Name    string         `json:"name"`
	Species string         `json:"species"`
	Types   []string       `json:"types"`
	Artwork string         `json:"artwork_url,omitempty"`
	Stats   []StatResponse `json:"stats"`
}

// FromCard converts a lookup card to an HTTP response.
func FromCard(c *pokemon.Card) *CardResponse {
	resp := &CardResponse{
		ID:      c.ID,
		Name:    c.Name,
		Species: c.Species,
		Types:   append([]string{}, c.Types...),
		Artwork: c.Artwork,
		Stats:   make([]StatResponse, 0, len(c.Stats)),
	}
	for _, st := range c.Stats {
		resp.Stats = append(resp.Stats, StatResponse{Name: st.Name, Base: st.Base})
	}
	return resp
}

// VersionChanceResponse is the encounter rate in one version.
type VersionChanceResponse struct {
	Version   string `json:"version"`
	MaxChance int    `json:"max_chance"`
}

// LocationResponse is one encounter area.
type LocationResponse struct {
	Area     string                  `json:"area"`
	Versions []VersionChanceResponse `json:"versions"`
}

// EncountersResponse is the HTTP response for GET /pokemon/{name}/encounters.
type EncountersResponse struct {
	Pokemon   string             `json:"pokemon"`
	Game      string             `json:"game"`
	Locations []LocationResponse `json:"locations"`
}

// FromLocations converts encounter areas to an HTTP response.
func FromLocations(name, game string, locations []pokemon.Location) *EncountersResponse {
	resp := &EncountersResponse{
		Pokemon:   name,
		Game:      game,
		Locations: make([]LocationResponse, 0, len(locations)),
	}
	for _, loc := range locations {
		lr := LocationResponse{Area: loc.Area, Versions: make([]VersionChanceResponse, 0, len(loc.Versions))}
		for _, v := range loc.Versions {
			lr.Versions = append(lr.Versions, VersionChanceResponse{Version: v.Version, MaxChance: v.MaxChance})
		}
		resp.Locations = append(resp.Locations, lr)
	}
	return resp
}

// MoveResponse describes one move. Power and accuracy are null for status
// moves.
type MoveResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Power    *int   `json:"power"`
	Accuracy *int   `json:"accuracy"`
}

// FromMove converts a move to an HTTP response.
func FromMove(m pokemon.Move) *MoveResponse {
	return &MoveResponse{Name: m.Name, Type: m.Type, Power: m.Power, Accuracy: m.Accuracy}
}

// MovesResponse is the HTTP response for GET /pokemon/{name}/moves.
type MovesResponse struct {
	Pokemon string         `json:"pokemon"`
	Game    string         `json:"game"`
	Moves   []MoveResponse `json:"moves"`
}

// FromMoves converts TM moves to an HTTP response.
func FromMoves(name, game string, moves []pokemon.Move) *MovesResponse {
	resp := &MovesResponse{Pokemon: name, Game: game, Moves: make([]MoveResponse, 0, len(moves))}
	for _, m := range moves {
		resp.Moves = append(resp.Moves, *FromMove(m))
	}
	return resp
}
