// Package boq splits a project-wide device bill-of-quantities into equal,
// ceiling-rounded per-panel shares.
package boq

import "firepanel/internal/requirements"

func ceilDiv(numerator, divisor int) int {
	if divisor <= 0 {
		return numerator
	}
	if numerator <= 0 {
		return 0
	}
	return (numerator + divisor - 1) / divisor
}

// Partition splits total into n equal per-panel BOQs, each field rounded up
// to the nearest whole device. Ceiling rounding guarantees the sum of the
// parts' capacity is never less than the original, at the cost of up to
// n-1 extra device slots of headroom per field. A demand-aware balanced
// split is reserved for future work; this always aliases to equal shares.
func Partition(total requirements.DeviceBOQ, n int) []requirements.DeviceBOQ {
	if n <= 0 {
		return nil
	}
	share := requirements.DeviceBOQ{
		Smoke:                 ceilDiv(total.Smoke, n),
		Heat:                  ceilDiv(total.Heat, n),
		Duct:                  ceilDiv(total.Duct, n),
		Beam:                  ceilDiv(total.Beam, n),
		Manual:                ceilDiv(total.Manual, n),
		Monitor:               ceilDiv(total.Monitor, n),
		ControlRelay:          ceilDiv(total.ControlRelay, n),
		HornStrobe:            ceilDiv(total.HornStrobe, n),
		StrobeOnly:            ceilDiv(total.StrobeOnly, n),
		HornOnly:              ceilDiv(total.HornOnly, n),
		AddrHornStrobe:        ceilDiv(total.AddrHornStrobe, n),
		AddrStrobe:            ceilDiv(total.AddrStrobe, n),
		Speaker:               ceilDiv(total.Speaker, n),
		SpeakerStrobe:         ceilDiv(total.SpeakerStrobe, n),
		SmokeManagementRelays: ceilDiv(total.SmokeManagementRelays, n),
		FirePhoneJacks:        ceilDiv(total.FirePhoneJacks, n),
		RemoteAnnunciators:    ceilDiv(total.RemoteAnnunciators, n),
	}

	panels := make([]requirements.DeviceBOQ, n)
	for i := range panels {
		panels[i] = share
	}
	return panels
}
