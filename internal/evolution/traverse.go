package evolution

import "pokedex/internal/evolution/models"

// MaxDepth bounds how many transitions deep Simulate will follow a chain.
// Official chains are at most three stages deep.
const MaxDepth = 16

// Simulation is the flattened evaluation of a whole chain.
type Simulation struct {
	Results []models.EvaluationResult
	// Truncated is set when part of the chain lay beyond MaxDepth.
	Truncated bool
	// Failures counts missing requirements by field across all results.
	Failures map[string]int
}

type frame struct {
	from       string
	transition *models.Transition
	depth      int
}

// Simulate evaluates every (parent, child, requirement set) triple of the chain
// rooted at root, in document order: a transition's entries come before the
// entries of its target's subtree, and siblings keep their declared order.
// A nil root yields an empty result.
func Simulate(root *models.ChainNode, state models.WorldState) Simulation {
	sim := Simulation{
		Results:  []models.EvaluationResult{},
		Failures: map[string]int{},
	}
	if root == nil {
		return sim
	}

	var stack []frame
	push := func(from string, children []models.Transition, depth int) {
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{from: from, transition: &children[i], depth: depth})
		}
	}
	push(root.SpeciesName, root.Children, 1)

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth > MaxDepth {
			sim.Truncated = true
			continue
		}

		target := f.transition.Target.SpeciesName
		for _, req := range f.transition.RequirementSets {
			v := Evaluate(req, state)
			sim.Results = append(sim.Results, models.EvaluationResult{
				From:                  f.from,
				To:                    target,
				Reachable:             v.Satisfied,
				SatisfiedRequirements: v.Requirements,
				MissingRequirements:   v.Missing,
			})
			for _, field := range v.FailedFields {
				sim.Failures[field]++
			}
		}

		push(target, f.transition.Target.Children, f.depth+1)
	}

	return sim
}

// CountTransitions returns the number of edges in the chain, bounded by MaxDepth.
func CountTransitions(root *models.ChainNode) int {
	if root == nil {
		return 0
	}
	type item struct {
		node  *models.ChainNode
		depth int
	}
	count := 0
	stack := []item{{node: root, depth: 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.depth >= MaxDepth {
			continue
		}
		for i := range it.node.Children {
			count++
			stack = append(stack, item{node: &it.node.Children[i].Target, depth: it.depth + 1})
		}
	}
	return count
}
