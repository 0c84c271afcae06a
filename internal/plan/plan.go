// Package plan derives the deterministic table of well-known SKUs (module
// aliases) that must be present whenever particular requirements fire,
// independent of whatever the optimizer's category coverage alone would
// select.
package plan

import "firepanel/internal/requirements"

// Module aliases: fixed model numbers for the handful of SKUs the plan
// reasons about by role rather than by category, grounded on the reference
// engine's MODULE_ALIASES table.
const (
	MasterController   = "4100-9701"
	IDNetDualLoop       = "4100-3109"
	PowerSupplyMain     = "4100-5311"
	PowerSupplyExpansion = "4100-5325"
	IDNACModule         = "4100-5451"
	ConventionalNAC     = "4100-5450"
	NACClassA           = "4100-1246"
	NACSupervision      = "4100-1266"
	AudioBase           = "4100-9620"
	AudioOperator       = "4100-1254"
	AudioAmplifier      = "4100-1248"
	AudioClassA         = "4100-1249"
	FirePhone           = "4100-1270"
	LEDController       = "4100-1288"
	Printer             = "4100-1293"
	RS232               = "4100-6038"
	NetworkInterface    = "4100-6080"
	RelayModule         = "4100-6033"
	RelayZone           = "4100-5013"
)

func ceilDiv(numerator, divisor int) int {
	if numerator <= 0 {
		return 0
	}
	return (numerator + divisor - 1) / divisor
}

// DeriveSpecificModules builds the specific-module plan for req. Every
// quantity is rounded up to the nearest whole unit and the running value
// for a given alias is the maximum across however many rules touch it.
func DeriveSpecificModules(req requirements.PanelRequirements) map[string]int {
	out := map[string]int{}
	add := func(model string, quantity int) {
		if quantity <= 0 {
			return
		}
		if quantity > out[model] {
			out[model] = quantity
		}
	}

	add(MasterController, 1)
	add(PowerSupplyMain, 1)
	add(IDNetDualLoop, req.IDNetModulesRequired)

	if req.IDNetModulesRequired > 1 {
		add(PowerSupplyExpansion, req.IDNetModulesRequired-1)
	}

	if req.NACCircuitsRequired > 0 {
		if req.PreferAddressableNAC {
			add(IDNACModule, ceilDiv(req.NACCircuitsRequired, 2))
		} else {
			add(ConventionalNAC, ceilDiv(req.NACCircuitsRequired, 3))
		}
	}
	if req.NACClassA {
		add(NACClassA, max(1, ceilDiv(req.NACCircuitsRequired, 3)))
	}
	if req.ConstantSupervision {
		add(NACSupervision, max(1, ceilDiv(req.NACCircuitsRequired, 4)))
	}

	if req.VoiceEvacuation {
		add(AudioBase, 1)
		add(AudioOperator, 1)
		amplifiers := max(1, ceilDiv(req.SpeakerWattage, 100))
		switch {
		case req.OneToOneBackupAmp || req.DualAmpPerZone:
			amplifiers *= 2
		case req.OneForAllBackupAmp:
			amplifiers++
		}
		add(AudioAmplifier, amplifiers)
		if req.SpeakerClassA {
			add(AudioClassA, max(1, ceilDiv(req.SpeakerCount, 2)))
		}
	}

	if req.FirePhonePresent {
		add(FirePhone, max(1, ceilDiv(max(1, req.FirePhoneCircuits), 3)))
	}

	if req.LEDPackagesRequired {
		add(LEDController, 1)
	}

	if req.PrinterRequired {
		add(Printer, 1)
		add(RS232, 1)
	}

	if req.NetworkCardsRequired {
		add(NetworkInterface, max(1, req.NetworkLinks))
	}

	totalRelays := req.RelayCount
	if req.DoorHolder220VAC {
		totalRelays = max(totalRelays, req.RelayCount+1)
	}
	switch {
	case req.FireDamperControl:
		add(RelayZone, max(1, ceilDiv(max(8, totalRelays), 8)))
	case totalRelays > 0:
		add(RelayModule, max(1, ceilDiv(totalRelays, 3)))
	}

	return out
}

// Merge applies the final[m] = max(optimizer[m], plan[m]) policy: it never
// shrinks the solver's decision, only guarantees the plan's SKUs are at
// least present in their required quantity.
func Merge(optimizerSelection, planSelection map[string]int) map[string]int {
	merged := make(map[string]int, len(optimizerSelection)+len(planSelection))
	for model, qty := range optimizerSelection {
		merged[model] = qty
	}
	for model, qty := range planSelection {
		if qty > merged[model] {
			merged[model] = qty
		}
	}
	return merged
}
