// Package annunciator fans a main panel configuration out into the derived
// remote-annunciator panels a project requires.
package annunciator

import (
	"github.com/google/uuid"

	"firepanel/internal/panelcfg"
	"firepanel/internal/requirements"
)

// Options controls how a remote annunciator panel is equipped, beyond the
// always-on networked display it inherits from the main panel.
type Options struct {
	AudioControl bool
	Microphone   bool
	LEDSwitches  bool
}

// Synthesize emits count derived PanelConfiguration values for remote
// annunciators: each carries a near-empty BOQ (only the annunciator device
// itself counted), inherits protocol from the main panel's requirements,
// and is always networked.
func Synthesize(mainPanel panelcfg.Configuration, req requirements.PanelRequirements, count int, opts Options) []panelcfg.Configuration {
	if count <= 0 {
		return nil
	}

	panels := make([]panelcfg.Configuration, 0, count)
	for i := 0; i < count; i++ {
		boq := requirements.DeviceBOQ{RemoteAnnunciators: 1}
		constraints := panelcfg.ConstraintsFromRequirements(req)
		constraints["network_links"] = 1
		constraints["audio_control"] = opts.AudioControl
		constraints["microphone"] = opts.Microphone
		constraints["led_switches"] = opts.LEDSwitches

		panels = append(panels, panelcfg.Configuration{
			PanelID:             uuid.NewString(),
			PanelSeries:         mainPanel.PanelSeries,
			BOQ:                 boq,
			Constraints:         constraints,
			IsMainPanel:         false,
			IsRemoteAnnunciator: true,
		})
	}
	return panels
}
