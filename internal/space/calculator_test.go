package space

import "testing"

func TestDeriveUsesOverrideTable(t *testing.T) {
	calc := NewCalculator(DefaultOverrides())

	fp := calc.Derive("4100-9620", "anything, ignored", MountInternal)
	if fp.InternalBlocks != 8 || fp.DoorSlots != 1 {
		t.Fatalf("expected override footprint (8,1), got (%d,%d)", fp.InternalBlocks, fp.DoorSlots)
	}
}

func TestDeriveEmptyTextNoMount(t *testing.T) {
	calc := NewCalculator(DefaultOverrides())

	fp := calc.Derive("4100-0000", "", MountNone)
	if fp != (Footprint{}) {
		t.Fatalf("expected zero footprint, got %+v", fp)
	}
}

func TestDeriveNumericSlotsKeyword(t *testing.T) {
	calc := NewCalculator(DefaultOverrides())

	fp := calc.Derive("4100-0001", "Occupies 3 slots on the door", MountDoor)
	if fp.DoorSlots != 3 || fp.InternalBlocks != 0 {
		t.Fatalf("expected (0,3), got (%d,%d)", fp.InternalBlocks, fp.DoorSlots)
	}
}

func TestDeriveInlineBlockLetters(t *testing.T) {
	calc := NewCalculator(DefaultOverrides())

	fp := calc.Derive("4100-0002", "mounts in block ABC", MountInternal)
	if fp.InternalBlocks != 3 {
		t.Fatalf("expected 3 distinct blocks, got %d", fp.InternalBlocks)
	}
}

func TestDeriveMountBothForcesMinimumPresence(t *testing.T) {
	calc := NewCalculator(DefaultOverrides())

	fp := calc.Derive("4100-0003", "compact module", MountBoth)
	if fp.InternalBlocks != 1 || fp.DoorSlots != 1 {
		t.Fatalf("expected (1,1) minimum presence, got (%d,%d)", fp.InternalBlocks, fp.DoorSlots)
	}
}

func TestDeriveClampsOutOfRangeNumericKeyword(t *testing.T) {
	calc := NewCalculator(DefaultOverrides())

	// 40 slots exceeds the 0 < N <= 32 clamp and must not be counted.
	fp := calc.Derive("4100-0004", "40 slots", MountDoor)
	if fp.DoorSlots != 1 {
		t.Fatalf("expected clamp to force minimum presence of 1, got %d", fp.DoorSlots)
	}
}

func TestDeriveDoorFallsBackToBlocksWhenNoSlots(t *testing.T) {
	calc := NewCalculator(DefaultOverrides())

	fp := calc.Derive("4100-0005", "2 blocks", MountDoor)
	if fp.DoorSlots != 2 {
		t.Fatalf("expected door slots to fall back to block count, got %d", fp.DoorSlots)
	}
}
