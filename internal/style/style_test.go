package style

import (
	"testing"

	"crimedash/internal/dataset"
)

func TestRiskTokens(t *testing.T) {
	tests := []struct {
		risk  dataset.RiskLevel
		bar   string
		badge string
	}{
		{dataset.RiskHigh, "bg-red-500", "bg-red-100 text-red-800 border-red-200"},
		{dataset.RiskMedium, "bg-yellow-500", "bg-yellow-100 text-yellow-800 border-yellow-200"},
		{dataset.RiskLow, "bg-green-500", "bg-green-100 text-green-800 border-green-200"},
		{"Severe", "bg-gray-500", "bg-gray-100 text-gray-800 border-gray-200"},
		{"", "bg-gray-500", "bg-gray-100 text-gray-800 border-gray-200"},
	}

	for _, tt := range tests {
		t.Run(string(tt.risk), func(t *testing.T) {
			if got := RiskBar(tt.risk); got != tt.bar {
				t.Errorf("RiskBar() = %q, want %q", got, tt.bar)
			}
			if got := RiskBadge(tt.risk); got != tt.badge {
				t.Errorf("RiskBadge() = %q, want %q", got, tt.badge)
			}
		})
	}
}

func TestPriorityAndImpact(t *testing.T) {
	if got := ActionPriority(dataset.PriorityCritical); got != "bg-red-100 text-red-800 border-red-200" {
		t.Errorf("ActionPriority(Critical) = %q", got)
	}
	if got := ActionPriority(dataset.PriorityHigh); got != "bg-orange-100 text-orange-800 border-orange-200" {
		t.Errorf("ActionPriority(High) = %q", got)
	}
	if got := ActionPriority("Low"); got != "bg-gray-100 text-gray-800 border-gray-200" {
		t.Errorf("ActionPriority(Low) = %q", got)
	}

	for label, want := range map[string]Tone{
		"Immediate": ToneRed,
		"High":      ToneRed,
		"Medium":    ToneYellow,
		"Low":       ToneGreen,
		"Whenever":  ToneGray,
	} {
		if got := InsightTone(label); got != want {
			t.Errorf("InsightTone(%q) = %s, want %s", label, got, want)
		}
	}

	for label, want := range map[string]string{
		"Critical": "text-red-600",
		"High":     "text-orange-600",
		"Medium":   "text-yellow-600",
		"Low":      "text-gray-600",
	} {
		if got := Impact(label); got != want {
			t.Errorf("Impact(%q) = %q, want %q", label, got, want)
		}
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"Ready to Deploy", "text-green-600"},
		{"Active", "text-green-600"},
		{"Procurement Phase", "text-blue-600"},
		{"Planning Phase", "text-blue-600"},
		{"Proposal Stage", "text-yellow-600"},
		{"Partnership Development", "text-yellow-600"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := Status(tt.status); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrendIcon(t *testing.T) {
	glyph, class := TrendIcon(dataset.TrendUp)
	if glyph != "↑" || class != "text-red-500" {
		t.Errorf("up = %s %s", glyph, class)
	}
	glyph, class = TrendIcon(dataset.TrendDown)
	if glyph != "↓" || class != "text-green-500" {
		t.Errorf("down = %s %s", glyph, class)
	}
	_, class = TrendIcon("")
	if class != "text-gray-500" {
		t.Errorf("none = %s", class)
	}
}
