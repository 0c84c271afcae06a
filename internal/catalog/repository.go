package catalog

import (
	"sort"
	"strconv"
	"strings"

	"firepanel/internal/space"
	"firepanel/platform/apperr"
)

// PricingOverrides is the optional structured pricing document from spec §6:
// explicit per-model prices and per-category defaults. Both are consulted
// before the catalog's own built-in category defaults.
type PricingOverrides struct {
	ModuleOverrides  map[string]Cents
	CategoryDefaults map[string]Cents
}

// Repository is the immutable, indexed catalog produced by Load. Nothing
// after Load mutates a Repository — it is safe to share across goroutines.
type Repository struct {
	modules       []Module
	byModel       map[string]Module
	byCategory    map[string][]Module
	moduleOverrides  map[string]Cents
	categoryPrices   map[string]Cents
	fallbackCost     Cents
}

// Load builds a Repository from a module TableSource, merging duplicate
// rows, attaching prices, deriving space footprints, and augmenting the
// result with the built-in synthetic enclosure modules. fallbackCost is the
// guardrail cost used by EstimateCost when nothing else is known (spec
// §4.1); callers typically pass cfg.GetFallbackCostCents() from
// platform/config.
func Load(source TableSource, overrides PricingOverrides, fallbackCost Cents, calc *space.Calculator) (*Repository, error) {
	if source == nil {
		return nil, apperr.Internal("unreadable catalog: nil table source")
	}

	categoryPrices := DefaultCategoryPrices()
	for category, price := range overrides.CategoryDefaults {
		categoryPrices[category] = price
	}
	moduleOverrides := overrides.ModuleOverrides
	if moduleOverrides == nil {
		moduleOverrides = map[string]Cents{}
	}

	order := make([]string, 0, 64)
	lookup := make(map[string]Module, 64)

	for _, row := range source.Records() {
		model := strings.TrimSpace(row[ColModelNumber])
		if model == "" {
			continue
		}

		incoming := buildModuleFromRow(model, row, moduleOverrides, categoryPrices, calc)

		existing, ok := lookup[model]
		if !ok {
			lookup[model] = incoming
			order = append(order, model)
			continue
		}
		lookup[model] = mergeModules(existing, incoming)
	}

	for _, def := range syntheticEnclosures {
		synthetic := syntheticModule(def)
		existing, ok := lookup[def.ModelNumber]
		if !ok {
			lookup[def.ModelNumber] = synthetic
			order = append(order, def.ModelNumber)
			continue
		}
		if existing.Price <= 0 && synthetic.Price > 0 {
			existing.Price = synthetic.Price
		}
		existing.SpecificationCategories = mergeUnique(existing.SpecificationCategories, synthetic.SpecificationCategories)
		existing.Keywords = mergeUnique(existing.Keywords, synthetic.Keywords)
		lookup[def.ModelNumber] = existing
	}

	modules := make([]Module, 0, len(order))
	byModel := make(map[string]Module, len(order))
	byCategory := make(map[string][]Module)
	for _, model := range order {
		m := lookup[model]
		modules = append(modules, m)
		byModel[model] = m
		for _, category := range m.SpecificationCategories {
			byCategory[category] = append(byCategory[category], m)
		}
	}

	return &Repository{
		modules:         modules,
		byModel:         byModel,
		byCategory:      byCategory,
		moduleOverrides: moduleOverrides,
		categoryPrices:  categoryPrices,
		fallbackCost:    fallbackCost,
	}, nil
}

func buildModuleFromRow(model string, row Row, moduleOverrides map[string]Cents, categoryPrices map[string]Cents, calc *space.Calculator) Module {
	specCategories := splitCSVList(row[ColSpecCategories])

	price, ok := moduleOverrides[model]
	if !ok {
		price = 0
		if len(specCategories) > 0 {
			price = categoryPrices[specCategories[0]]
		}
	}

	mount := space.ParseMount(row[ColMountedOn])
	physicalSize := strings.TrimSpace(row[ColPhysicalSize])
	footprint := Footprint{}
	if calc != nil {
		footprint = calc.Derive(model, physicalSize, mount)
	}

	return Module{
		ModelNumber:             model,
		Description:             strings.TrimSpace(row[ColDescription]),
		CompatiblePanels:        splitCSVList(row[ColCompatiblePanels]),
		CompatibleProtocols:     splitCSVList(row[ColCompatibleProtocol]),
		TotalPointCapacity:      strings.TrimSpace(row[ColTotalPointCapacity]),
		CircuitCapacity:         strings.TrimSpace(row[ColCircuitCapacity]),
		SupervisoryCurrent:      safeFloat(row[ColSupervisoryCurrent]),
		AlarmCurrent:            safeFloat(row[ColAlarmCurrent]),
		SupportedSpeakers:       strings.TrimSpace(row[ColSupportedSpeakers]),
		Circuits:                strings.TrimSpace(row[ColCircuits]),
		CompulsoryMainModules:   splitCSVList(row[ColCompulsoryMains]),
		Dependencies:            splitCSVList(row[ColDependencies]),
		SpecificationCategories: specCategories,
		Keywords:                splitCSVList(row[ColKeywords]),
		ModuleRole:              parseRole(row[ColModuleRole]),
		PhysicalSize:            physicalSize,
		MountedOn:               mount,
		Price:                   price,
		InternalSpace:           footprint.InternalBlocks,
		DoorSpace:               footprint.DoorSlots,
	}
}

// mergeModules combines a duplicate row into an already-seen module: first
// non-empty scalar wins, list fields set-union (case-insensitive, first-seen
// casing preserved), and space footprints take the elementwise maximum.
func mergeModules(existing, incoming Module) Module {
	if existing.Description == "" {
		existing.Description = incoming.Description
	}
	existing.CompatiblePanels = mergeUnique(existing.CompatiblePanels, incoming.CompatiblePanels)
	existing.CompatibleProtocols = mergeUnique(existing.CompatibleProtocols, incoming.CompatibleProtocols)
	if existing.TotalPointCapacity == "" {
		existing.TotalPointCapacity = incoming.TotalPointCapacity
	}
	if existing.CircuitCapacity == "" {
		existing.CircuitCapacity = incoming.CircuitCapacity
	}
	if existing.SupervisoryCurrent == 0 {
		existing.SupervisoryCurrent = incoming.SupervisoryCurrent
	}
	if existing.AlarmCurrent == 0 {
		existing.AlarmCurrent = incoming.AlarmCurrent
	}
	if existing.SupportedSpeakers == "" {
		existing.SupportedSpeakers = incoming.SupportedSpeakers
	}
	if existing.Circuits == "" {
		existing.Circuits = incoming.Circuits
	}
	existing.CompulsoryMainModules = mergeUnique(existing.CompulsoryMainModules, incoming.CompulsoryMainModules)
	existing.Dependencies = mergeUnique(existing.Dependencies, incoming.Dependencies)
	existing.SpecificationCategories = mergeUnique(existing.SpecificationCategories, incoming.SpecificationCategories)
	existing.Keywords = mergeUnique(existing.Keywords, incoming.Keywords)
	if existing.ModuleRole == RoleAny {
		existing.ModuleRole = incoming.ModuleRole
	}
	if existing.PhysicalSize == "" {
		existing.PhysicalSize = incoming.PhysicalSize
	}
	if existing.MountedOn == space.MountNone {
		existing.MountedOn = incoming.MountedOn
	}
	if existing.Price <= 0 && incoming.Price > 0 {
		existing.Price = incoming.Price
	}
	if incoming.InternalSpace > existing.InternalSpace {
		existing.InternalSpace = incoming.InternalSpace
	}
	if incoming.DoorSpace > existing.DoorSpace {
		existing.DoorSpace = incoming.DoorSpace
	}
	return existing
}

// Footprint mirrors space.Footprint to avoid importing the space package's
// type name ambiguously in repository signatures; the two are structurally
// identical.
type Footprint = space.Footprint

// GetModule resolves a model number to its Module, if known.
func (r *Repository) GetModule(modelNumber string) (Module, bool) {
	m, ok := r.byModel[modelNumber]
	return m, ok
}

// ByCategory returns every module filed under the given specification
// category, or nil if the category is unknown. Unknown categories are
// harmless by construction — callers simply get no candidates.
func (r *Repository) ByCategory(category string) []Module {
	return r.byCategory[category]
}

// Modules returns every loaded module, in first-seen order (synthetic
// enclosures last, for model numbers not present in the source sheet).
func (r *Repository) Modules() []Module {
	return r.modules
}

// EstimateCost resolves a model's unit cost in the order the spec mandates:
// explicit override table -> module's own price -> first category's default
// -> fallback guardrail. It never errors on an unknown model number.
func (r *Repository) EstimateCost(modelNumber string, quantity int) Cents {
	if price, ok := r.moduleOverrides[modelNumber]; ok {
		return price * Cents(quantity)
	}
	if module, ok := r.byModel[modelNumber]; ok && module.Price > 0 {
		return module.Price * Cents(quantity)
	}
	if module, ok := r.byModel[modelNumber]; ok && len(module.SpecificationCategories) > 0 {
		if price, ok := r.categoryPrices[module.SpecificationCategories[0]]; ok {
			return price * Cents(quantity)
		}
	}
	return r.fallbackCost * Cents(quantity)
}

// CategoryDefaultPrice returns the configured default price for a category,
// and whether one is configured at all.
func (r *Repository) CategoryDefaultPrice(category string) (Cents, bool) {
	price, ok := r.categoryPrices[category]
	return price, ok
}

func parseRole(raw string) Role {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(normalized, "sub"):
		return RoleSub
	case strings.Contains(normalized, "main"):
		return RoleMain
	default:
		return RoleAny
	}
}

// splitCSVList splits a comma-separated cell into trimmed, non-empty values.
func splitCSVList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// mergeUnique performs a case-insensitive set union that preserves the
// casing of whichever value was seen first.
func mergeUnique(values []string, additions []string) []string {
	lookup := make(map[string]string, len(values)+len(additions))
	order := make([]string, 0, len(values)+len(additions))
	for _, v := range values {
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, seen := lookup[key]; !seen {
			lookup[key] = v
			order = append(order, key)
		}
	}
	for _, v := range additions {
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, seen := lookup[key]; !seen {
			lookup[key] = v
			order = append(order, key)
		}
	}
	result := make([]string, 0, len(order))
	for _, key := range order {
		result = append(result, lookup[key])
	}
	return result
}

// safeFloat extracts a float from a cell that may contain units or stray
// text (e.g. "0.5A"), tolerating non-numeric content per spec §7's
// MalformedNumeric policy: unparseable values are treated as zero, never an
// error.
func safeFloat(raw string) float64 {
	var cleaned strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			cleaned.WriteRune(r)
		}
	}
	if cleaned.Len() == 0 {
		return 0
	}
	value, err := strconv.ParseFloat(cleaned.String(), 64)
	if err != nil {
		return 0
	}
	return value
}

// sortedCategories returns the indexed category names in sorted order, a
// deterministic listing for diagnostics.
func (r *Repository) sortedCategories() []string {
	categories := make([]string, 0, len(r.byCategory))
	for category := range r.byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
