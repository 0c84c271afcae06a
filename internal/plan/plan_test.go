package plan

import (
	"testing"

	"firepanel/internal/requirements"
)

func TestDeriveSpecificModulesAlwaysIncludesMasterAndPower(t *testing.T) {
	out := DeriveSpecificModules(requirements.PanelRequirements{IDNetModulesRequired: 1})
	if out[MasterController] != 1 {
		t.Fatalf("expected master controller 1, got %d", out[MasterController])
	}
	if out[PowerSupplyMain] != 1 {
		t.Fatalf("expected power supply main 1, got %d", out[PowerSupplyMain])
	}
	if _, ok := out[PowerSupplyExpansion]; ok {
		t.Fatalf("did not expect power supply expansion with a single IDNet module")
	}
}

func TestDeriveSpecificModulesExpansionPowerSupply(t *testing.T) {
	out := DeriveSpecificModules(requirements.PanelRequirements{IDNetModulesRequired: 3})
	if out[PowerSupplyExpansion] != 2 {
		t.Fatalf("expected 2 expansion supplies for 3 IDNet modules, got %d", out[PowerSupplyExpansion])
	}
}

func TestDeriveSpecificModulesIDNACPreferred(t *testing.T) {
	out := DeriveSpecificModules(requirements.PanelRequirements{NACCircuitsRequired: 4, PreferAddressableNAC: true})
	if out[IDNACModule] != 2 {
		t.Fatalf("expected ceil(4/2)=2 IDNAC modules, got %d", out[IDNACModule])
	}
	if _, ok := out[ConventionalNAC]; ok {
		t.Fatalf("did not expect conventional NAC when addressable is preferred")
	}
}

func TestDeriveSpecificModulesAudioAmplifiersDoubleForDualAmp(t *testing.T) {
	out := DeriveSpecificModules(requirements.PanelRequirements{VoiceEvacuation: true, SpeakerWattage: 100, DualAmpPerZone: true})
	if out[AudioAmplifier] != 2 {
		t.Fatalf("expected amplifiers doubled to 2, got %d", out[AudioAmplifier])
	}
}

func TestDeriveSpecificModulesAudioAmplifiersOneForAllAddsOne(t *testing.T) {
	out := DeriveSpecificModules(requirements.PanelRequirements{VoiceEvacuation: true, SpeakerWattage: 100, OneForAllBackupAmp: true})
	if out[AudioAmplifier] != 2 {
		t.Fatalf("expected amplifiers 1+1=2, got %d", out[AudioAmplifier])
	}
}

func TestDeriveSpecificModulesFireDamperPicksRelayZone(t *testing.T) {
	out := DeriveSpecificModules(requirements.PanelRequirements{FireDamperControl: true, RelayCount: 2})
	if out[RelayZone] != 1 {
		t.Fatalf("expected ceil(max(8,2)/8)=1 relay zone, got %d", out[RelayZone])
	}
	if _, ok := out[RelayModule]; ok {
		t.Fatalf("did not expect generic relay module when fire damper control is active")
	}
}

func TestDeriveSpecificModulesGenericRelayWithoutFireDamper(t *testing.T) {
	out := DeriveSpecificModules(requirements.PanelRequirements{RelayCount: 6})
	if out[RelayModule] != 2 {
		t.Fatalf("expected ceil(6/3)=2 relay modules, got %d", out[RelayModule])
	}
}

func TestMergeTakesElementwiseMax(t *testing.T) {
	optimizerSel := map[string]int{"A": 3, "B": 1}
	planSel := map[string]int{"A": 1, "C": 2}
	merged := Merge(optimizerSel, planSel)
	if merged["A"] != 3 || merged["B"] != 1 || merged["C"] != 2 {
		t.Fatalf("unexpected merge result: %v", merged)
	}
}
