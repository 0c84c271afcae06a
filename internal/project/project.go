// Package project is the orchestrator: it glues Requirements Builder ->
// Category Demand Derivation -> Module Optimizer -> merge with the
// Specific-Module Plan -> Enclosure Planner -> cost estimation into a
// single per-panel operation, then fans that operation out across a
// multi-panel project.
package project

import (
	"context"

	"golang.org/x/sync/errgroup"

	"firepanel/internal/annunciator"
	"firepanel/internal/boq"
	"firepanel/internal/catalog"
	"firepanel/internal/demand"
	"firepanel/internal/enclosure"
	"firepanel/internal/optimizer"
	"firepanel/internal/panelcfg"
	"firepanel/internal/plan"
	"firepanel/internal/requirements"
	"firepanel/platform/apperr"
	"firepanel/platform/config"
	"firepanel/platform/logger"
	"firepanel/platform/validator"
)

// EngineConfig is the subset of platform/config's Config the orchestrator
// consumes: bay sizing for the enclosure planner and the per-module unit
// ceiling for the optimizer's decision variables.
type EngineConfig interface {
	config.EnclosureConfig
	config.SolverConfig
}

// Engine bundles the immutable collaborators every panel optimization
// needs: the loaded catalog, an optional backing solver, structured
// logging, and the deployment-tunable knobs from platform/config. Construct
// once per process; Engine carries no mutable state of its own, so a
// single instance is safe to share across goroutines.
type Engine struct {
	Repository *catalog.Repository
	Solver     optimizer.Solver
	Logger     *logger.Logger
	Validator  *validator.Validator
	Config     EngineConfig
}

// NewEngine wires an Engine from its already-constructed collaborators. cfg
// may be nil, in which case enclosure bay sizing and the optimizer unit
// ceiling fall back to the engine's fixed defaults.
func NewEngine(repo *catalog.Repository, solver optimizer.Solver, log *logger.Logger, v *validator.Validator, cfg EngineConfig) *Engine {
	return &Engine{Repository: repo, Solver: solver, Logger: log, Validator: v, Config: cfg}
}

// OptimizePanel runs the full pipeline for one (answers, boq) pair. It
// returns apperr.Validation if the inputs fail struct validation; every
// other failure mode surfaces as a non-fatal status inside the returned
// OptimizationResult, per the engine's error-handling policy.
func (e *Engine) OptimizePanel(answers requirements.ProjectAnswers, deviceBOQ requirements.DeviceBOQ) (panelcfg.OptimizationResult, error) {
	if e.Validator != nil {
		if err := e.Validator.Struct(answers); err != nil {
			return panelcfg.OptimizationResult{}, apperr.Validation("invalid project answers").WithOp("project.OptimizePanel")
		}
		if err := e.Validator.Struct(deviceBOQ); err != nil {
			return panelcfg.OptimizationResult{}, apperr.Validation("invalid device BOQ").WithOp("project.OptimizePanel")
		}
	}

	req := requirements.Build(answers, deviceBOQ)
	categoryDemand := demand.Derive(req)

	problem := optimizer.Problem{
		Modules:           e.Repository.Modules(),
		CategoryDemand:    categoryDemand,
		ModulesByCategory: categoryByModules(e.Repository, categoryDemand),
		MaxUnitsPerModule: e.maxUnitsPerModule(),
	}
	solution := optimizer.Optimize(e.Solver, problem)
	if solution.Status == optimizer.StatusGreedy && e.Logger != nil {
		e.Logger.SolverFallback("no backing solver wired in")
	}

	specificPlan := plan.DeriveSpecificModules(req)
	merged := plan.Merge(solution.ModuleSelection, specificPlan)

	enclosurePlan := enclosure.DeriveEnclosureModules(e.Repository, merged)
	for model, qty := range enclosurePlan {
		merged[model] += qty
	}

	var estimatedCost int64
	for model, qty := range merged {
		estimatedCost += int64(e.Repository.EstimateCost(model, qty))
	}

	usage := enclosure.SummarizeSpaceUsage(e.Repository, merged)
	bays := enclosure.AllocateBaysWithCapacity(usage, e.blocksPerBay(), e.slotsPerBay())

	status := planStatus(solution.Status)

	if e.Logger != nil {
		e.Logger.OptimizationComplete("", string(status), len(merged), estimatedCost)
	}

	return panelcfg.OptimizationResult{
		CategoryDemand:  categoryDemand,
		ModuleSelection: merged,
		EstimatedCost:   estimatedCost,
		SolverStatus:    string(status),
		SpaceUsage:      panelcfg.SpaceUsage{InternalBlocks: usage.InternalBlocks, DoorSlots: usage.DoorSlots},
		BayAllocation: panelcfg.BayAllocation{
			InternalBays:    bays.InternalBays,
			DoorBays:        bays.DoorBays,
			RecommendedBays: bays.RecommendedBays,
		},
	}, nil
}

// planStatus maps a bare solver status onto the panelcfg "+PLAN" suffixed
// status it becomes after the specific-module plan merge.
func planStatus(status optimizer.Status) panelcfg.SolverStatus {
	switch status {
	case optimizer.StatusOptimal:
		return panelcfg.StatusOptimalPlan
	case optimizer.StatusFeasible:
		return panelcfg.StatusFeasiblePlan
	case optimizer.StatusInfeasible:
		return panelcfg.StatusInfeasiblePlan
	default:
		return panelcfg.StatusGreedyPlan
	}
}

func (e *Engine) blocksPerBay() int {
	if e.Config == nil {
		return enclosure.InternalBlocksPerBay
	}
	return e.Config.GetBlocksPerBay()
}

func (e *Engine) slotsPerBay() int {
	if e.Config == nil {
		return enclosure.DoorSlotsPerBay
	}
	return e.Config.GetSlotsPerBay()
}

func (e *Engine) maxUnitsPerModule() int {
	if e.Config == nil {
		return 0
	}
	return e.Config.GetOptimizerMaxUnitsPerModule()
}

// categoryByModules narrows the repository's full category index down to
// just the categories with nonzero demand, since that's all the optimizer
// problem needs.
func categoryByModules(repo *catalog.Repository, categoryDemand map[string]int) map[string][]catalog.Module {
	out := make(map[string][]catalog.Module, len(categoryDemand))
	for category := range categoryDemand {
		out[category] = repo.ByCategory(category)
	}
	return out
}

// ProjectResult pairs every panel configuration with its optimization
// result, in the same order panels were requested.
type ProjectResult struct {
	Panels  []panelcfg.Configuration
	Results []panelcfg.OptimizationResult
}

// OptimizeProjectSequential is the reference orchestration: partition the
// project BOQ across panelCount panels and optimize each in turn. The main
// (first) panel's derived remote-annunciator panels follow it directly,
// before the next partitioned panel. Panels are independent and
// embarrassingly parallel (see OptimizeProjectConcurrent); this sequential
// form is the default because the reference design favors predictable
// resource use over throughput.
func (e *Engine) OptimizeProjectSequential(answers requirements.ProjectAnswers, totalBOQ requirements.DeviceBOQ, panelCount int, annunciatorOpts annunciator.Options, newPanelID func() string) (ProjectResult, error) {
	shares := boq.Partition(totalBOQ, panelCount)
	result := ProjectResult{
		Panels:  make([]panelcfg.Configuration, 0, panelCount),
		Results: make([]panelcfg.OptimizationResult, 0, panelCount),
	}

	for i, share := range shares {
		optResult, err := e.OptimizePanel(answers, share)
		if err != nil {
			return ProjectResult{}, err
		}
		req := requirements.Build(answers, share)
		cfg := panelcfg.Configuration{
			PanelID:     newPanelID(),
			PanelSeries: panelcfg.Series4100ES,
			BOQ:         share,
			Constraints: panelcfg.ConstraintsFromRequirements(req),
			IsMainPanel: i == 0,
		}
		result.Panels = append(result.Panels, cfg)
		result.Results = append(result.Results, optResult)

		if i == 0 && req.RemoteAnnunciatorCount > 0 {
			derived := annunciator.Synthesize(cfg, req, req.RemoteAnnunciatorCount, annunciatorOpts)
			for _, panel := range derived {
				panel.PanelID = newPanelID()
				annResult, err := e.OptimizePanel(answers, panel.BOQ)
				if err != nil {
					return ProjectResult{}, err
				}
				result.Panels = append(result.Panels, panel)
				result.Results = append(result.Results, annResult)
			}
		}
	}

	return result, nil
}

// OptimizeProjectConcurrent runs the same partitioned panels through
// OptimizePanel concurrently, one errgroup goroutine per panel with no
// concurrency limit, for projects where
// optimizer wall-clock time dominates and panels are numerous enough that
// parallelizing them matters. Results preserve the input panel order.
func (e *Engine) OptimizeProjectConcurrent(ctx context.Context, answers requirements.ProjectAnswers, totalBOQ requirements.DeviceBOQ, panelCount int, newPanelID func() string) (ProjectResult, error) {
	shares := boq.Partition(totalBOQ, panelCount)
	results := make([]panelcfg.OptimizationResult, len(shares))
	panels := make([]panelcfg.Configuration, len(shares))

	group, _ := errgroup.WithContext(ctx)
	for i, share := range shares {
		i, share := i, share
		group.Go(func() error {
			optResult, err := e.OptimizePanel(answers, share)
			if err != nil {
				return err
			}
			req := requirements.Build(answers, share)
			results[i] = optResult
			panels[i] = panelcfg.Configuration{
				PanelID:     newPanelID(),
				PanelSeries: panelcfg.Series4100ES,
				BOQ:         share,
				Constraints: panelcfg.ConstraintsFromRequirements(req),
				IsMainPanel: i == 0,
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return ProjectResult{}, err
	}

	return ProjectResult{Panels: panels, Results: results}, nil
}
