package visuals

import (
	"errors"
	"strings"
	"testing"

	"crimedash/internal/dataset"
	"crimedash/internal/view"
)

func TestGenerateAreaChart(t *testing.T) {
	sel := view.ResetSelection()
	sel.RiskFilter = view.RiskHigh
	res, err := view.ComputeView(dataset.Areas(), sel)
	if err != nil {
		t.Fatalf("ComputeView failed: %v", err)
	}

	chart := GenerateAreaChart(res)
	if !strings.HasPrefix(chart, "```mermaid\nxychart-beta\n") {
		t.Errorf("unexpected header: %q", chart)
	}
	if !strings.Contains(chart, `x-axis ["Saddar", "Clifton", "Korangi", "Lyari", "Orangi"]`) {
		t.Errorf("x-axis missing or out of order:\n%s", chart)
	}
	if !strings.Contains(chart, "bar [2890, 2456, 1987, 1654, 1321]") {
		t.Errorf("bar values missing:\n%s", chart)
	}
	if !strings.Contains(chart, "0 --> 3468") {
		t.Errorf("expected 20%% headroom over 2890:\n%s", chart)
	}
}

func TestGenerateAreaChart_Empty(t *testing.T) {
	if got := GenerateAreaChart(view.Result{}); got != "" {
		t.Errorf("expected empty chart, got %q", got)
	}
}

func TestGenerateCrimeTypePie(t *testing.T) {
	chart := GenerateCrimeTypePie(dataset.CrimeTypes())
	if !strings.Contains(chart, "pie title Crime Type Distribution") {
		t.Errorf("missing title:\n%s", chart)
	}
	if !strings.Contains(chart, `"Vehicle Theft" : 4567`) {
		t.Errorf("missing slice:\n%s", chart)
	}
}

func TestGenerateBudgetPie(t *testing.T) {
	chart := GenerateBudgetPie(dataset.BudgetAllocation())
	if !strings.Contains(chart, `"Personnel" : 2500000`) {
		t.Errorf("missing personnel slice:\n%s", chart)
	}
}

func TestRender(t *testing.T) {
	for _, name := range Charts() {
		t.Run(name, func(t *testing.T) {
			chart, err := Render(name, view.ResetSelection())
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if !strings.HasSuffix(chart, "```") {
				t.Errorf("chart not closed:\n%s", chart)
			}
		})
	}

	if _, err := Render("heatmap", view.ResetSelection()); !errors.Is(err, ErrUnknownChart) {
		t.Errorf("expected ErrUnknownChart, got %v", err)
	}

	bad := view.ResetSelection()
	bad.SortKey = "population"
	if _, err := Render(ChartAreas, bad); !errors.Is(err, view.ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection, got %v", err)
	}
}

func TestRender_HourlyPeak(t *testing.T) {
	chart, err := Render(ChartHourly, view.ResetSelection())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(chart, "peak: 18-20") {
		t.Errorf("expected evening peak in title:\n%s", chart)
	}
}
