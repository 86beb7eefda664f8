// Package evolution decides which evolutions in a chain are reachable under a
// hypothetical world state.
//
// Everything here is pure: no I/O, no shared state. Callers pass the chain and
// the state explicitly and receive fresh slices.
package evolution

import "pokedex/internal/evolution/models"

// Verdict is the combined outcome of evaluating one requirement set.
type Verdict struct {
	Satisfied    bool
	Requirements []string
	Missing      []string
	// FailedFields names the requirement fields behind each Missing entry.
	FailedFields []string
}

// Evaluate walks the predicate table once and produces the reachability
// verdict together with both display lists.
func Evaluate(req models.RequirementSet, state models.WorldState) Verdict {
	v := Verdict{
		Requirements: []string{},
		Missing:      []string{},
	}
	for _, c := range conditions {
		if !c.applies(req) {
			continue
		}
		v.Requirements = append(v.Requirements, c.label(req))
		if !c.satisfied(req, state) {
			v.Missing = append(v.Missing, c.missing(req, state))
			v.FailedFields = append(v.FailedFields, c.field)
		}
	}
	v.Satisfied = len(v.Missing) == 0
	return v
}

// IsSatisfied reports whether every populated predicate of req holds in state.
// An unpopulated field imposes no constraint.
func IsSatisfied(req models.RequirementSet, state models.WorldState) bool {
	for _, c := range conditions {
		if c.applies(req) && !c.satisfied(req, state) {
			return false
		}
	}
	return true
}

// Describe returns one human-readable clause per populated field of req.
func Describe(req models.RequirementSet) []string {
	out := []string{}
	for _, c := range conditions {
		if c.applies(req) {
			out = append(out, c.label(req))
		}
	}
	return out
}

// DescribeMissing returns an instruction for each predicate of req that fails
// in state. The result is empty exactly when IsSatisfied is true.
func DescribeMissing(req models.RequirementSet, state models.WorldState) []string {
	out := []string{}
	for _, c := range conditions {
		if c.applies(req) && !c.satisfied(req, state) {
			out = append(out, c.missing(req, state))
		}
	}
	return out
}
