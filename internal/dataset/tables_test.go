package dataset

import (
	"math"
	"testing"
)

func TestAreasAreUniqueAndOrdered(t *testing.T) {
	seen := make(map[string]bool)
	all := Areas()
	if len(all) != 12 {
		t.Fatalf("expected 12 monitored areas, got %d", len(all))
	}
	for i, a := range all {
		if seen[a.Name] {
			t.Errorf("duplicate area name %q", a.Name)
		}
		seen[a.Name] = true
		if i > 0 && all[i-1].CrimeCount < a.CrimeCount {
			t.Errorf("areas not ordered by crime count at %d (%s)", i, a.Name)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	a := Areas()
	a[0].CrimeCount = -1
	if Areas()[0].CrimeCount != 2890 {
		t.Error("mutating the returned slice leaked into the table")
	}

	ins := KeyInsights()
	ins[0].Findings[0] = "changed"
	if KeyInsights()[0].Findings[0] == "changed" {
		t.Error("insight findings share a backing array with the table")
	}
}

func TestPercentagesApproximateHundred(t *testing.T) {
	tests := []struct {
		name    string
		records []DemographicRecord
	}{
		{"Gender", GenderBreakdown()},
		{"Age", AgeBreakdown()},
		{"Education", EducationBreakdown()},
		{"Occupation", OccupationBreakdown()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sum float64
			for _, r := range tt.records {
				sum += r.Percentage
			}
			if math.Abs(sum-100) > 0.5 {
				t.Errorf("percentages sum to %.1f", sum)
			}
		})
	}

	var sum float64
	for _, c := range CrimeTypes() {
		sum += c.Percentage
	}
	if math.Abs(sum-100) > 0.5 {
		t.Errorf("crime type percentages sum to %.1f", sum)
	}
}

func TestChangeLabel(t *testing.T) {
	tests := []struct {
		change   float64
		expected string
		improves bool
	}{
		{12, "+12%", false},
		{-3, "-3%", true},
		{0, "0%", false},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			a := AreaRecord{PercentChange: tt.change}
			if got := a.ChangeLabel(); got != tt.expected {
				t.Errorf("ChangeLabel() = %q, want %q", got, tt.expected)
			}
			if got := a.Improving(); got != tt.improves {
				t.Errorf("Improving() = %v, want %v", got, tt.improves)
			}
		})
	}
}

func TestActionProgressBounds(t *testing.T) {
	for _, a := range append(ImmediateActions(), MediumTermActions()...) {
		if a.ProgressPercent < 0 || a.ProgressPercent > 100 {
			t.Errorf("%s: progress %d out of range", a.Title, a.ProgressPercent)
		}
	}
}
