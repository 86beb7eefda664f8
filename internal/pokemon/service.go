// Package pokemon serves the lookup card of a single pokémon: its types,
// artwork and base stats, where it can be encountered in a game, and the TM
// moves it can learn there.
package pokemon

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"pokedex/internal/pokeapi"
	pstrings "pokedex/pkg/platform/strings"
)

const (
	// MaxTMMoves caps how many TM moves are resolved for one card.
	MaxTMMoves = 10

	moveFetchConcurrency = 4
	machineMethod        = "machine"
)

// API is the upstream surface the service reads from.
type API interface {
	Pokemon(ctx context.Context, name string) (*pokeapi.Pokemon, error)
	Encounters(ctx context.Context, id int) ([]pokeapi.Encounter, error)
	Move(ctx context.Context, name string) (*pokeapi.Move, error)
}

// Stat is one base stat.
type Stat struct {
	Name string
	Base int
}

// Card is the summary of one pokémon.
type Card struct {
	ID      int
	Name    string
	Species string
	Types   []string
	Artwork string
	Stats   []Stat
}

// VersionChance is the best encounter rate in one game version.
type VersionChance struct {
	Version   string
	MaxChance int
}

// Location is an area where the pokémon can be encountered.
type Location struct {
	Area     string
	Versions []VersionChance
}

// Move is a move's type and battle numbers.
type Move struct {
	Name     string
	Type     string
	Power    *int
	Accuracy *int
}

// Service reads pokémon data through the cached API client.
type Service struct {
	api    API
	logger *slog.Logger
}

// New constructs a Service.
func New(api API, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{api: api, logger: logger}
}

// Card looks up a pokémon by name.
func (s *Service) Card(ctx context.Context, name string) (*Card, error) {
	p, err := s.pokemon(ctx, name)
	if err != nil {
		return nil, err
	}
	return cardFrom(p), nil
}

// Encounters lists where a pokémon can be found in game. Only the versions
// belonging to game are reported.
func (s *Service) Encounters(ctx context.Context, name, game string) ([]Location, error) {
	_, g, err := ResolveGame(game)
	if err != nil {
		return nil, err
	}
	p, err := s.pokemon(ctx, name)
	if err != nil {
		return nil, err
	}
	raw, err := s.api.Encounters(ctx, p.ID)
	if err != nil {
		return nil, pokeapi.DomainError(err, fmt.Sprintf("encounters of %q", p.Name))
	}
	return filterEncounters(raw, g), nil
}

// TMMoves resolves up to MaxTMMoves moves the pokémon learns by machine in
// game. Moves that fail to load are left out.
func (s *Service) TMMoves(ctx context.Context, name, game string) ([]Move, error) {
	gameID, g, err := ResolveGame(game)
	if err != nil {
		return nil, err
	}
	p, err := s.pokemon(ctx, name)
	if err != nil {
		return nil, err
	}

	names := machineMoves(p.Moves, g)
	loaded := make([]*Move, len(names))

	var (
		grp      errgroup.Group
		mu       sync.Mutex
		failures int
	)
	grp.SetLimit(moveFetchConcurrency)
	for i, moveName := range names {
		grp.Go(func() error {
			m, err := s.api.Move(ctx, moveName)
			if err != nil {
				mu.Lock()
				failures++
				mu.Unlock()
				s.logger.WarnContext(ctx, "move lookup failed",
					"move", moveName,
					"error", err,
				)
				return nil
			}
			loaded[i] = moveFrom(m)
			return nil
		})
	}
	_ = grp.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]Move, 0, len(loaded))
	for _, m := range loaded {
		if m != nil {
			out = append(out, *m)
		}
	}
	if failures > 0 {
		s.logger.InfoContext(ctx, "tm moves partially resolved",
			"pokemon", p.Name,
			"game", gameID,
			"resolved", len(out),
			"failed", failures,
		)
	}
	return out, nil
}

// Move looks up a single move by name.
func (s *Service) Move(ctx context.Context, name string) (*Move, error) {
	m, err := s.api.Move(ctx, name)
	if err != nil {
		return nil, pokeapi.DomainError(err, fmt.Sprintf("move %q", pstrings.Slug(name)))
	}
	return moveFrom(m), nil
}

func (s *Service) pokemon(ctx context.Context, name string) (*pokeapi.Pokemon, error) {
	p, err := s.api.Pokemon(ctx, name)
	if err != nil {
		return nil, pokeapi.DomainError(err, fmt.Sprintf("pokemon %q", pstrings.Slug(name)))
	}
	return p, nil
}

func cardFrom(p *pokeapi.Pokemon) *Card {
	types := append(p.Types[:0:0], p.Types...)
	sort.SliceStable(types, func(i, j int) bool { return types[i].Slot < types[j].Slot })

	card := &Card{
		ID:      p.ID,
		Name:    p.Name,
		Species: p.Species.Name,
		Types:   make([]string, 0, len(types)),
		Artwork: p.ArtworkURL(),
		Stats:   make([]Stat, 0, len(p.Stats)),
	}
	if card.Species == "" {
		card.Species = p.Name
	}
	for _, t := range types {
		card.Types = append(card.Types, t.Type.Name)
	}
	for _, st := range p.Stats {
		card.Stats = append(card.Stats, Stat{Name: st.Stat.Name, Base: st.BaseStat})
	}
	return card
}

func filterEncounters(raw []pokeapi.Encounter, g Game) []Location {
	out := []Location{}
	for _, e := range raw {
		loc := Location{Area: e.LocationArea.Name}
		for _, d := range e.VersionDetails {
			if g.hasVersion(d.Version.Name) {
				loc.Versions = append(loc.Versions, VersionChance{Version: d.Version.Name, MaxChance: d.MaxChance})
			}
		}
		if len(loc.Versions) > 0 {
			out = append(out, loc)
		}
	}
	return out
}

// machineMoves returns, in learnset order, the moves learned by machine in
// one of g's version groups.
func machineMoves(moves []pokeapi.PokemonMove, g Game) []string {
	var out []string
	for _, m := range moves {
		for _, d := range m.VersionGroupDetails {
			if d.MoveLearnMethod.Name == machineMethod && g.hasVersionGroup(d.VersionGroup.Name) {
				out = append(out, m.Move.Name)
				break
			}
		}
		if len(out) == MaxTMMoves {
			break
		}
	}
	return out
}

func moveFrom(m *pokeapi.Move) *Move {
	return &Move{
		Name:     m.Name,
		Type:     m.Type.Name,
		Power:    m.Power,
		Accuracy: m.Accuracy,
	}
}
