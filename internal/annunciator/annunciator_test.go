package annunciator

import (
	"testing"

	"firepanel/internal/panelcfg"
	"firepanel/internal/requirements"
)

func TestSynthesizeReturnsNilWhenCountZero(t *testing.T) {
	panels := Synthesize(panelcfg.Configuration{}, requirements.PanelRequirements{}, 0, Options{})
	if panels != nil {
		t.Fatalf("expected nil for zero count, got %v", panels)
	}
}

func TestSynthesizeEmitsOnePanelPerCount(t *testing.T) {
	main := panelcfg.Configuration{PanelSeries: panelcfg.Series4100ES, IsMainPanel: true}
	panels := Synthesize(main, requirements.PanelRequirements{ProtocolCode: "IDNet2"}, 3, Options{AudioControl: true})
	if len(panels) != 3 {
		t.Fatalf("expected 3 panels, got %d", len(panels))
	}
	for _, p := range panels {
		if p.IsMainPanel {
			t.Fatalf("derived panel must not be flagged as main")
		}
		if !p.IsRemoteAnnunciator {
			t.Fatalf("derived panel must be flagged as remote annunciator")
		}
		if p.PanelSeries != panelcfg.Series4100ES {
			t.Fatalf("expected inherited panel series, got %s", p.PanelSeries)
		}
		if p.BOQ.RemoteAnnunciators != 1 {
			t.Fatalf("expected near-empty BOQ with just 1 annunciator device, got %+v", p.BOQ)
		}
		if p.Constraints["audio_control"] != true {
			t.Fatalf("expected audio control flag to propagate")
		}
	}
}

func TestSynthesizePanelIDsAreUnique(t *testing.T) {
	panels := Synthesize(panelcfg.Configuration{}, requirements.PanelRequirements{}, 2, Options{})
	if panels[0].PanelID == panels[1].PanelID {
		t.Fatalf("expected distinct panel IDs, got duplicate %s", panels[0].PanelID)
	}
}
