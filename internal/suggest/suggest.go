// Package suggest proposes species names for a partially typed or misspelled
// query.
package suggest

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	dErrors "pokedex/pkg/domain-errors"
	pstrings "pokedex/pkg/platform/strings"
)

const (
	DefaultLimit = 5

	maxPrefix   = 3
	maxContains = 2
	maxFuzzy    = 2
)

// GameGenerations maps a game version filter onto its generation number.
var GameGenerations = map[string]int{
	"red-blue":                        1,
	"yellow":                          1,
	"gold-silver":                     2,
	"crystal":                         2,
	"ruby-sapphire":                   3,
	"emerald":                         3,
	"firered-leafgreen":               3,
	"diamond-pearl":                   4,
	"platinum":                        4,
	"heartgold-soulsilver":            4,
	"black-white":                     5,
	"black-2-white-2":                 5,
	"x-y":                             6,
	"omega-ruby-alpha-sapphire":       6,
	"sun-moon":                        7,
	"ultra-sun-ultra-moon":            7,
	"sword-shield":                    8,
	"brilliant-diamond-shining-pearl": 8,
	"legends-arceus":                  8,
	"scarlet-violet":                  9,
}

// Names supplies the candidate species lists.
type Names interface {
	SpeciesNames(ctx context.Context) ([]string, error)
	GenerationSpecies(ctx context.Context, generation int) ([]string, error)
}

// Suggester ranks candidate names against a query.
type Suggester struct {
	names Names
}

// New constructs a Suggester.
func New(names Names) *Suggester {
	return &Suggester{names: names}
}

// Suggest returns up to limit names for query. An empty or "all" game searches
// every species; an unknown game yields no suggestions.
func (s *Suggester) Suggest(ctx context.Context, query, game string, limit int) ([]string, error) {
	query = pstrings.Slug(query)
	if query == "" {
		return []string{}, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var (
		candidates []string
		err        error
	)
	switch game = strings.ToLower(strings.TrimSpace(game)); game {
	case "", "all":
		candidates, err = s.names.SpeciesNames(ctx)
	default:
		gen, ok := GameGenerations[game]
		if !ok {
			return []string{}, nil
		}
		candidates, err = s.names.GenerationSpecies(ctx, gen)
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, fmt.Sprintf("species list for %q unavailable", game))
	}

	return Rank(query, candidates, limit), nil
}

type scored struct {
	name string
	dist int
}

// Rank orders candidates for query: an exact match, then prefix matches, then
// substring matches, then names within a length-scaled edit distance.
func Rank(query string, candidates []string, limit int) []string {
	query = pstrings.Slug(query)
	if query == "" {
		return []string{}
	}

	var (
		exact    []string
		prefix   []string
		contains []string
		fuzzy    []scored
	)
	for _, name := range pstrings.DedupeSlugs(candidates) {
		switch {
		case name == query:
			exact = append(exact, name)
		case strings.HasPrefix(name, query):
			prefix = append(prefix, name)
		case strings.Contains(name, query):
			contains = append(contains, name)
		default:
			dist := levenshtein.ComputeDistance(query, name)
			if dist <= distanceLimit(len(query)) {
				fuzzy = append(fuzzy, scored{name: name, dist: dist})
			}
		}
	}
	sort.SliceStable(fuzzy, func(i, j int) bool {
		return fuzzy[i].dist < fuzzy[j].dist
	})

	out := make([]string, 0, limit)
	out = append(out, exact...)
	out = append(out, head(prefix, maxPrefix)...)
	out = append(out, head(contains, maxContains)...)
	for i := 0; i < len(fuzzy) && i < maxFuzzy; i++ {
		out = append(out, fuzzy[i].name)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func head(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

// distanceLimit keeps short queries from matching everything.
func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
