// Package demand maps a PanelRequirements record to minimum module
// quantities per catalog category, combining overlapping rules by maximum
// rather than sum so redundant rules never inflate the final count.
package demand

import "firepanel/internal/requirements"

const (
	CategoryMasterController  = "Master Controller"
	CategoryPowerSupplies     = "Power Supplies"
	CategoryEPSAccessories    = "EPS & Accessories"
	CategoryIDNetModules      = "IDNet Modules"
	CategoryNotification      = "Notification Modules"
	CategoryAudioOptions      = "Audio Options (S4100-0104)"
	CategoryVCCInterfaces     = "VCC Interfaces (S4100-0104)"
	CategoryTelephone         = "Telephone (S4100-0104)"
	CategoryLEDSwitch         = "LED-Switch (4100-0032)"
	CategoryRelayModules      = "Relay Modules"
)

func ceilDiv(numerator, divisor int) int {
	if numerator <= 0 {
		return 0
	}
	return (numerator + divisor - 1) / divisor
}

// Derive reduces req into a category -> minimum-quantity map. Every rule is
// applied through ensure, which takes the running maximum per category, and
// zero-or-negative quantities never create an entry — they are pruned by
// construction rather than filtered afterward.
func Derive(req requirements.PanelRequirements) map[string]int {
	out := map[string]int{}
	ensure := func(category string, quantity int) {
		if quantity <= 0 {
			return
		}
		if quantity > out[category] {
			out[category] = quantity
		}
	}

	ensure(CategoryMasterController, 1)
	if req.GraphicsControl {
		ensure(CategoryMasterController, 1) // documents intent; no-op against the floor above
	}

	ensure(CategoryPowerSupplies, max(1, ceilDiv(max(req.NACCircuitsRequired, 1), 3)))

	nacPowerPadding := ceilDiv(req.NACDeviceCount, 56)
	ensure(CategoryEPSAccessories, max(1, ceilDiv(req.SpeakerWattage, 400)+nacPowerPadding))

	ensure(CategoryIDNetModules, req.IDNetModulesRequired)

	if req.NACCircuitsRequired > 0 {
		if req.PreferAddressableNAC {
			ensure(CategoryNotification, max(1, ceilDiv(req.NACCircuitsRequired, 2)))
		} else {
			ensure(CategoryNotification, max(1, ceilDiv(req.NACCircuitsRequired, 3)))
		}
	}

	if req.VoiceEvacuation {
		ensure(CategoryAudioOptions, max(1, ceilDiv(req.SpeakerWattage, 100)))
		ensure(CategoryVCCInterfaces, 1)
	}

	if req.FirePhonePresent {
		ensure(CategoryTelephone, max(1, req.FirePhoneCircuits))
	}

	if req.LEDPackagesRequired {
		ensure(CategoryLEDSwitch, 1)
	}

	if req.SmokeManagement || req.RelayCount > 0 {
		ensure(CategoryRelayModules, max(1, ceilDiv(max(1, req.RelayCount), 3)))
	}

	if req.DoorHolder220VAC {
		ensure(CategoryRelayModules, out[CategoryRelayModules]+1)
	}

	for category, quantity := range out {
		if quantity <= 0 {
			delete(out, category)
		}
	}
	return out
}
