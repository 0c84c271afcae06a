package project

import (
	"context"
	"testing"

	"firepanel/internal/annunciator"
	"firepanel/internal/catalog"
	"firepanel/internal/requirements"
	"firepanel/internal/space"
	"firepanel/platform/logger"
	"firepanel/platform/validator"
)

func fixtureRows() catalog.SliceSource {
	return catalog.SliceSource{
		{catalog.ColModelNumber: "4100-9701", catalog.ColSpecCategories: "Master Controller"},
		{catalog.ColModelNumber: "4100-5311", catalog.ColSpecCategories: "Power Supplies"},
		{catalog.ColModelNumber: "4100-5325", catalog.ColSpecCategories: "Power Supplies"},
		{catalog.ColModelNumber: "4100-3109", catalog.ColSpecCategories: "IDNet Modules"},
		{catalog.ColModelNumber: "4100-5450", catalog.ColSpecCategories: "Notification Modules"},
		{catalog.ColModelNumber: "4100-5451", catalog.ColSpecCategories: "Notification Modules"},
		{catalog.ColModelNumber: "4100-6033", catalog.ColSpecCategories: "Relay Modules"},
		{catalog.ColModelNumber: "4100-5013", catalog.ColSpecCategories: "Relay Modules"},
		{catalog.ColModelNumber: "4100-9620", catalog.ColSpecCategories: "Audio Options (S4100-0104)"},
		{catalog.ColModelNumber: "4100-0104", catalog.ColSpecCategories: "VCC Interfaces (S4100-0104)"},
		{catalog.ColModelNumber: "4100-1270", catalog.ColSpecCategories: "Telephone (S4100-0104)"},
		{catalog.ColModelNumber: "4100-0032", catalog.ColSpecCategories: "LED-Switch (4100-0032)"},
		{catalog.ColModelNumber: "4100-6080", catalog.ColSpecCategories: "EPS & Accessories"},
	}
}

func buildEngine(t *testing.T) *Engine {
	t.Helper()
	calc := space.NewCalculator(space.DefaultOverrides())
	repo, err := catalog.Load(fixtureRows(), catalog.PricingOverrides{}, 1000, calc)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return NewEngine(repo, nil, logger.New("test"), validator.New(), nil)
}

func TestOptimizePanelProducesPlanSuffix(t *testing.T) {
	engine := buildEngine(t)
	answers := requirements.ProjectAnswers{ProtocolCode: "IDNet2"}
	result, err := engine.OptimizePanel(answers, requirements.DeviceBOQ{Smoke: 50, HornStrobe: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SolverStatus != "GREEDY+PLAN" {
		t.Fatalf("expected GREEDY+PLAN status with no backing solver, got %s", result.SolverStatus)
	}
	if result.ModuleSelection["4100-9701"] == 0 {
		t.Fatalf("expected master controller to always be present, got %v", result.ModuleSelection)
	}
}

func TestOptimizePanelNeverEmptyForWellFormedInput(t *testing.T) {
	engine := buildEngine(t)
	result, err := engine.OptimizePanel(requirements.ProjectAnswers{ProtocolCode: "IDNet2"}, requirements.DeviceBOQ{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.ModuleSelection) == 0 {
		t.Fatalf("expected a non-empty module selection for a well-formed input")
	}
}

func TestOptimizePanelValidationRejectsMissingProtocol(t *testing.T) {
	engine := buildEngine(t)
	_, err := engine.OptimizePanel(requirements.ProjectAnswers{}, requirements.DeviceBOQ{})
	if err == nil {
		t.Fatalf("expected validation error for missing protocol code")
	}
}

func TestOptimizeProjectSequentialPartitionsAcrossPanels(t *testing.T) {
	engine := buildEngine(t)
	answers := requirements.ProjectAnswers{ProtocolCode: "IDNet2"}
	counter := 0
	newID := func() string {
		counter++
		return "panel-id"
	}
	result, err := engine.OptimizeProjectSequential(answers, requirements.DeviceBOQ{Smoke: 100}, 2, annunciator.Options{}, newID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Panels) != 2 || len(result.Results) != 2 {
		t.Fatalf("expected 2 panels, got %d panels / %d results", len(result.Panels), len(result.Results))
	}
	if !result.Panels[0].IsMainPanel {
		t.Fatalf("expected first panel to be flagged as main")
	}
	if result.Panels[1].IsMainPanel {
		t.Fatalf("did not expect second panel to be flagged as main")
	}
}

func TestOptimizeProjectSequentialAppendsAnnunciators(t *testing.T) {
	engine := buildEngine(t)
	answers := requirements.ProjectAnswers{ProtocolCode: "IDNet2", RemoteAnnunciatorsWithAudioControl: 2}
	result, err := engine.OptimizeProjectSequential(answers, requirements.DeviceBOQ{}, 1, annunciator.Options{AudioControl: true}, func() string { return "id" })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Panels) != 3 {
		t.Fatalf("expected 1 main + 2 annunciator panels, got %d", len(result.Panels))
	}
	for _, p := range result.Panels[1:] {
		if !p.IsRemoteAnnunciator {
			t.Fatalf("expected derived panels to be flagged as remote annunciators")
		}
	}
}

func TestOptimizeProjectConcurrentMatchesSequentialPanelCount(t *testing.T) {
	engine := buildEngine(t)
	answers := requirements.ProjectAnswers{ProtocolCode: "IDNet2"}
	result, err := engine.OptimizeProjectConcurrent(context.Background(), answers, requirements.DeviceBOQ{Smoke: 60}, 3, func() string { return "id" })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Panels) != 3 || len(result.Results) != 3 {
		t.Fatalf("expected 3 panels/results, got %d/%d", len(result.Panels), len(result.Results))
	}
}
