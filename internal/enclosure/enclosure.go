// Package enclosure summarizes a module selection's space usage and packs
// the resulting bay count into concrete cabinet and door SKUs.
package enclosure

import (
	"sort"

	"firepanel/internal/catalog"
)

const (
	InternalBlocksPerBay = 8
	DoorSlotsPerBay      = 8
)

// SpaceUsage is the aggregate footprint of a module selection.
type SpaceUsage struct {
	InternalBlocks int
	DoorSlots      int
}

// BayAllocation is the bay count the space usage resolves to.
type BayAllocation struct {
	InternalBays     int
	DoorBays         int
	RecommendedBays  int
}

// Catalog is the minimal lookup the enclosure planner needs from the full
// repository; satisfied by *catalog.Repository.
type Catalog interface {
	GetModule(modelNumber string) (catalog.Module, bool)
}

func ceilDiv(numerator, divisor int) int {
	if numerator <= 0 {
		return 0
	}
	return (numerator + divisor - 1) / divisor
}

// SummarizeSpaceUsage sums internal-block and door-slot footprint across a
// module selection, looking each model up in repo.
func SummarizeSpaceUsage(repo Catalog, selection map[string]int) SpaceUsage {
	var usage SpaceUsage
	for model, qty := range selection {
		module, ok := repo.GetModule(model)
		if !ok {
			continue
		}
		usage.InternalBlocks += module.InternalSpace * qty
		usage.DoorSlots += module.DoorSpace * qty
	}
	return usage
}

// AllocateBays converts a SpaceUsage into bay counts using the fixed §4.8
// constants (8 blocks/slots per bay).
func AllocateBays(usage SpaceUsage) BayAllocation {
	return AllocateBaysWithCapacity(usage, InternalBlocksPerBay, DoorSlotsPerBay)
}

// AllocateBaysWithCapacity is AllocateBays parameterized on bay capacity,
// for callers wiring per-deployment bay sizing in from platform/config.
func AllocateBaysWithCapacity(usage SpaceUsage, blocksPerBay, slotsPerBay int) BayAllocation {
	if blocksPerBay <= 0 {
		blocksPerBay = InternalBlocksPerBay
	}
	if slotsPerBay <= 0 {
		slotsPerBay = DoorSlotsPerBay
	}
	internalBays := 0
	if usage.InternalBlocks > 0 {
		internalBays = ceilDiv(usage.InternalBlocks, blocksPerBay)
	}
	doorBays := 0
	if usage.DoorSlots > 0 {
		doorBays = ceilDiv(usage.DoorSlots, slotsPerBay)
	}
	recommended := internalBays
	if doorBays > recommended {
		recommended = doorBays
	}
	if recommended < 1 {
		recommended = 1
	}
	return BayAllocation{InternalBays: internalBays, DoorBays: doorBays, RecommendedBays: recommended}
}

// AllocateEnclosureSizes packs requiredBays into sizeToModel's SKUs,
// largest-first: repeatedly take floor(remaining/size) of the largest size
// that still fits, then fall back to one unit of the smallest size for any
// remainder (including when nothing fit at all).
func AllocateEnclosureSizes(requiredBays int, sizeToModel map[int]string) map[string]int {
	plan := map[string]int{}
	if requiredBays <= 0 || len(sizeToModel) == 0 {
		return plan
	}

	sizes := make([]int, 0, len(sizeToModel))
	for size := range sizeToModel {
		sizes = append(sizes, size)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	remaining := requiredBays
	for idx, size := range sizes {
		if remaining <= 0 {
			break
		}
		count := remaining / size
		if count == 0 && idx == len(sizes)-1 {
			count = 1
		}
		if count <= 0 {
			continue
		}
		model := sizeToModel[size]
		plan[model] += count
		remaining -= size * count
	}
	if remaining > 0 {
		smallest := sizes[len(sizes)-1]
		plan[sizeToModel[smallest]]++
	}
	return plan
}

// DeriveEnclosureModules computes the full enclosure plan for a module
// selection: cabinet SKUs sized to the recommended bay count, plus door
// SKUs from the glass-door family when any door slots are in use, else the
// solid-door family. Cabinet and door quantities are additive, not
// maxed — both may be present in the same enclosure.
func DeriveEnclosureModules(repo Catalog, selection map[string]int) map[string]int {
	usage := SummarizeSpaceUsage(repo, selection)
	bays := AllocateBays(usage)
	requiredBays := bays.RecommendedBays
	if requiredBays < 1 {
		requiredBays = 1
	}

	plan := map[string]int{}
	merge := func(source map[string]int) {
		for model, qty := range source {
			if qty <= 0 {
				continue
			}
			plan[model] += qty
		}
	}

	merge(AllocateEnclosureSizes(requiredBays, catalog.CabinetSizeToModel()))

	doorSizes := catalog.SolidDoorSizeToModel()
	if usage.DoorSlots > 0 {
		doorSizes = catalog.GlassDoorSizeToModel()
	}
	merge(AllocateEnclosureSizes(requiredBays, doorSizes))

	return plan
}
