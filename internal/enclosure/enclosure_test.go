package enclosure

import (
	"testing"

	"firepanel/internal/catalog"
)

type fakeCatalog map[string]catalog.Module

func (f fakeCatalog) GetModule(model string) (catalog.Module, bool) {
	m, ok := f[model]
	return m, ok
}

func TestSummarizeSpaceUsage(t *testing.T) {
	repo := fakeCatalog{
		"A": {ModelNumber: "A", InternalSpace: 2, DoorSpace: 1},
		"B": {ModelNumber: "B", InternalSpace: 1, DoorSpace: 0},
	}
	usage := SummarizeSpaceUsage(repo, map[string]int{"A": 3, "B": 2})
	if usage.InternalBlocks != 8 || usage.DoorSlots != 3 {
		t.Fatalf("expected (8,3), got (%d,%d)", usage.InternalBlocks, usage.DoorSlots)
	}
}

func TestAllocateBaysRecommendedIsMaxOfBoth(t *testing.T) {
	bays := AllocateBays(SpaceUsage{InternalBlocks: 20, DoorSlots: 5})
	if bays.InternalBays != 3 || bays.DoorBays != 1 || bays.RecommendedBays != 3 {
		t.Fatalf("unexpected bay allocation: %+v", bays)
	}
}

func TestAllocateBaysMinimumOneWhenEmpty(t *testing.T) {
	bays := AllocateBays(SpaceUsage{})
	if bays.InternalBays != 0 || bays.DoorBays != 0 || bays.RecommendedBays != 1 {
		t.Fatalf("expected recommended floor of 1, got %+v", bays)
	}
}

func TestAllocateEnclosureSizesLargestFirst(t *testing.T) {
	sizeToModel := map[int]string{1: "S1", 2: "S2", 3: "S3"}
	plan := AllocateEnclosureSizes(7, sizeToModel)
	if plan["S3"] != 2 || plan["S1"] != 1 {
		t.Fatalf("expected 2x3-bay + 1x1-bay for 7 bays, got %v", plan)
	}
}

func TestAllocateEnclosureSizesExactFit(t *testing.T) {
	sizeToModel := map[int]string{1: "S1", 2: "S2", 3: "S3"}
	plan := AllocateEnclosureSizes(6, sizeToModel)
	if plan["S3"] != 2 {
		t.Fatalf("expected exactly 2x3-bay for 6 bays, got %v", plan)
	}
	if _, ok := plan["S1"]; ok {
		t.Fatalf("did not expect any 1-bay units for an exact fit")
	}
}

func TestAllocateEnclosureSizesZeroBaysReturnsEmpty(t *testing.T) {
	plan := AllocateEnclosureSizes(0, map[int]string{1: "S1"})
	if len(plan) != 0 {
		t.Fatalf("expected empty plan for zero bays, got %v", plan)
	}
}

func TestDeriveEnclosureModulesPicksGlassDoorWhenDoorSlotsUsed(t *testing.T) {
	repo := fakeCatalog{
		"door-module": {ModelNumber: "door-module", DoorSpace: 4},
	}
	plan := DeriveEnclosureModules(repo, map[string]int{"door-module": 1})
	glass := catalog.GlassDoorSizeToModel()
	found := false
	for _, model := range glass {
		if plan[model] > 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a glass door SKU in plan, got %v", plan)
	}
}

func TestDeriveEnclosureModulesPicksSolidDoorWhenNoDoorSlots(t *testing.T) {
	repo := fakeCatalog{
		"internal-module": {ModelNumber: "internal-module", InternalSpace: 4},
	}
	plan := DeriveEnclosureModules(repo, map[string]int{"internal-module": 1})
	solid := catalog.SolidDoorSizeToModel()
	found := false
	for _, model := range solid {
		if plan[model] > 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a solid door SKU in plan, got %v", plan)
	}
}
