package scenario

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"pokedex/internal/evolution/models"
)

//go:embed scenarios.yaml
var builtinCatalog []byte

// Scenario is a named, pre-authored world state used as a quick start.
type Scenario struct {
	ID          string            `json:"id"`
	DisplayName string            `json:"name"`
	Description string            `json:"description"`
	Icon        string            `json:"icon"`
	State       models.WorldState `json:"state"`
}

type scenarioDoc struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Icon        string    `yaml:"icon"`
	State       yaml.Node `yaml:"state"`
}

// ParseCatalog decodes a YAML list of scenarios. Each state block is applied
// on top of models.DefaultWorldState, so a scenario only owns the fields it
// names.
func ParseCatalog(data []byte) ([]Scenario, error) {
	var docs []scenarioDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decode scenario catalog: %w", err)
	}
	if len(docs) == 0 {
		return nil, errors.New("scenario catalog is empty")
	}

	seen := make(map[string]struct{}, len(docs))
	out := make([]Scenario, 0, len(docs))
	for i, doc := range docs {
		if doc.ID == "" {
			return nil, fmt.Errorf("scenario %d: id is required", i)
		}
		if _, dup := seen[doc.ID]; dup {
			return nil, fmt.Errorf("scenario %q: duplicate id", doc.ID)
		}
		seen[doc.ID] = struct{}{}

		state := models.DefaultWorldState()
		if !doc.State.IsZero() {
			if err := doc.State.Decode(&state); err != nil {
				return nil, fmt.Errorf("scenario %q: decode state: %w", doc.ID, err)
			}
		}
		out = append(out, Scenario{
			ID:          doc.ID,
			DisplayName: doc.Name,
			Description: doc.Description,
			Icon:        doc.Icon,
			State:       state,
		})
	}
	return out, nil
}

// Builtin returns the embedded preset catalogue.
func Builtin() []Scenario {
	scenarios, err := ParseCatalog(builtinCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded scenario catalog: %v", err))
	}
	return scenarios
}
