// Package panelcfg holds the shared per-panel result types produced by the
// optimizer pipeline and consumed by both the annunciator synthesizer and
// the project orchestrator — kept separate from both so neither has to
// import the other.
package panelcfg

import "firepanel/internal/requirements"

// Series enumerates the panel product families a configuration can target.
type Series string

const (
	Series4100ES Series = "4100ES"
	Series4100U  Series = "4100U"
)

// SolverStatus mirrors the optimizer's reported status, after the §4.7
// merge-with-plan suffix is applied.
type SolverStatus string

const (
	StatusOptimalPlan    SolverStatus = "OPTIMAL+PLAN"
	StatusFeasiblePlan   SolverStatus = "FEASIBLE+PLAN"
	StatusInfeasiblePlan SolverStatus = "INFEASIBLE+PLAN"
	StatusGreedyPlan     SolverStatus = "GREEDY+PLAN"
)

// SpaceUsage is the aggregate footprint of a panel's module selection.
type SpaceUsage struct {
	InternalBlocks int `json:"internal_blocks"`
	DoorSlots      int `json:"door_slots"`
}

// BayAllocation is the bay count a SpaceUsage resolves to.
type BayAllocation struct {
	InternalBays    int `json:"internal_bays"`
	DoorBays        int `json:"door_bays"`
	RecommendedBays int `json:"recommended_bays"`
}

// OptimizationResult is the full per-panel output of the engine.
type OptimizationResult struct {
	CategoryDemand  map[string]int `json:"category_demand"`
	ModuleSelection map[string]int `json:"module_selection"`
	EstimatedCost   int64          `json:"estimated_cost_cents"`
	SolverStatus    string         `json:"solver_status"`
	SpaceUsage      SpaceUsage     `json:"space_usage"`
	BayAllocation   BayAllocation  `json:"bay_allocation"`
}

// Configuration is a single panel's identity and inputs within a
// multi-panel project: which BOQ it carries, what constraints (the bag
// exported from its requirements) it was sized against, and whether it is
// the main panel or a derived remote annunciator.
type Configuration struct {
	PanelID             string                     `json:"panel_id"`
	PanelSeries         Series                     `json:"panel_series"`
	BOQ                 requirements.DeviceBOQ     `json:"boq"`
	Constraints         map[string]any             `json:"constraints"`
	IsMainPanel         bool                       `json:"is_main_panel"`
	IsRemoteAnnunciator bool                       `json:"is_remote_annunciator"`
}

// ConstraintsFromRequirements exports the subset of a PanelRequirements
// record useful as an audit trail for why a panel was sized the way it
// was — a loosely typed bag, not meant for re-derivation.
func ConstraintsFromRequirements(req requirements.PanelRequirements) map[string]any {
	return map[string]any{
		"protocol_code":           req.ProtocolCode,
		"voice_evacuation":        req.VoiceEvacuation,
		"fire_phone_present":      req.FirePhonePresent,
		"led_packages_required":   req.LEDPackagesRequired,
		"nac_circuits_required":   req.NACCircuitsRequired,
		"slc_loops_required":      req.SLCLoopsRequired,
		"idnet_modules_required":  req.IDNetModulesRequired,
		"network_links":           req.NetworkLinks,
		"speaker_wattage":         req.SpeakerWattage,
		"relay_count":             req.RelayCount,
	}
}
