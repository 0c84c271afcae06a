// Package optimizer minimizes total weighted module count subject to
// per-category coverage constraints, with a deterministic greedy fallback
// for when no integer solver is wired in.
package optimizer

import (
	"math"
	"sort"

	"firepanel/internal/catalog"
)

// Status mirrors the solver's outcome. GREEDY marks the deterministic
// fallback path; OPTIMAL/FEASIBLE/INFEASIBLE are reserved for a real
// backing solver.
type Status string

const (
	StatusOptimal    Status = "OPTIMAL"
	StatusFeasible   Status = "FEASIBLE"
	StatusInfeasible Status = "INFEASIBLE"
	StatusGreedy     Status = "GREEDY"
)

// maxUnitsPerModule is the safety ceiling on any one decision variable.
const maxUnitsPerModule = 20

// Problem is the input to a Solver: one non-negative integer decision
// variable per catalog module, bounded by maxUnitsPerModule, subject to a
// minimum-sum constraint per category.
type Problem struct {
	Modules        []catalog.Module
	CategoryDemand map[string]int
	ModulesByCategory map[string][]catalog.Module
	MaxUnitsPerModule int
}

// Solution is a Solver's raw result, before merge with the specific-module
// plan.
type Solution struct {
	ModuleSelection map[string]int
	Status          Status
}

// Solver is an injected capability — this package never imports a
// third-party ILP/CP-SAT library. A caller wires a real solver in; absent
// one, Optimize always uses the greedy fallback.
type Solver interface {
	Solve(problem Problem) (Solution, error)
}

// Optimize runs solver (if not nil) and falls back to the deterministic
// greedy selection on a nil solver or any error — matching the spec's
// "transparently switch to greedy" policy for an unavailable backing
// solver.
func Optimize(solver Solver, problem Problem) Solution {
	if problem.MaxUnitsPerModule <= 0 {
		problem.MaxUnitsPerModule = maxUnitsPerModule
	}
	if solver != nil {
		if solution, err := solver.Solve(problem); err == nil {
			return solution
		}
	}
	return greedySelection(problem)
}

// Weight computes the integer objective coefficient for a module, in cents:
// its own price when known, else its block count scaled into a cents-like
// unit (or a 100-cent nominal cost when even that is zero). Prices here are
// already integer cents, unlike the reference engine's dollar-then-x100
// scaling, so only the unpriced branch needs the x100 normalization to stay
// comparable.
//
// greedySelection doesn't call this — it compares candidates directly on
// price, since the greedy fallback assigns whole-category demand to a
// single winning module rather than solving an objective over all of them.
// Weight is exported for a real backing Solver to use as its per-variable
// objective coefficient, the same role MaxUnitsPerModule plays as the
// per-variable upper bound.
func Weight(m catalog.Module) int {
	if m.Price > 0 {
		return int(m.Price)
	}
	weight := int(math.Round(m.BlockCount() * 100))
	if weight < 1 {
		weight = 100
	}
	return weight
}

// greedySelection picks, per category, the cheapest-then-smallest-then-
// lexicographically-first module and assigns it the full category demand.
// It is a strict upper bound on any optimal solver's cost and is fully
// deterministic.
func greedySelection(problem Problem) Solution {
	selection := make(map[string]int)

	categories := make([]string, 0, len(problem.CategoryDemand))
	for category := range problem.CategoryDemand {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		quantity := problem.CategoryDemand[category]
		if quantity <= 0 {
			continue
		}
		candidates := append([]catalog.Module(nil), problem.ModulesByCategory[category]...)
		if len(candidates) == 0 {
			continue
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			ci, cj := candidates[i], candidates[j]
			pi, pj := priceOrInf(ci), priceOrInf(cj)
			if pi != pj {
				return pi < pj
			}
			bi, bj := ci.BlockCount(), cj.BlockCount()
			if bi != bj {
				return bi < bj
			}
			return ci.ModelNumber < cj.ModelNumber
		})
		chosen := candidates[0]
		selection[chosen.ModelNumber] += quantity
	}

	return Solution{ModuleSelection: selection, Status: StatusGreedy}
}

func priceOrInf(m catalog.Module) float64 {
	if m.Price > 0 {
		return float64(m.Price)
	}
	return math.Inf(1)
}
