// Package style maps dashboard enums to the color tokens the presentation layer renders.
// Every mapping is total: unknown input falls through to a gray token.
package style

import (
	"strings"

	"crimedash/internal/dataset"
)

// Tone is the semantic color family behind a token.
type Tone string

const (
	ToneGray   Tone = "gray"
	ToneRed    Tone = "red"
	ToneOrange Tone = "orange"
	ToneYellow Tone = "yellow"
	ToneGreen  Tone = "green"
	ToneBlue   Tone = "blue"
)

// RiskTone returns the tone of a risk level.
func RiskTone(r dataset.RiskLevel) Tone {
	switch r {
	case dataset.RiskHigh:
		return ToneRed
	case dataset.RiskMedium:
		return ToneYellow
	case dataset.RiskLow:
		return ToneGreen
	default:
		return ToneGray
	}
}

// RiskBar is the fill class of an area bar.
func RiskBar(r dataset.RiskLevel) string {
	return "bg-" + string(RiskTone(r)) + "-500"
}

// RiskBadge is the class set of a risk badge.
func RiskBadge(r dataset.RiskLevel) string {
	return badge(RiskTone(r))
}

// PriorityTone returns the tone of an action priority.
func PriorityTone(p dataset.Priority) Tone {
	switch p {
	case dataset.PriorityCritical:
		return ToneRed
	case dataset.PriorityHigh:
		return ToneOrange
	case dataset.PriorityMedium:
		return ToneYellow
	default:
		return ToneGray
	}
}

// ActionPriority is the badge class set of an action item priority.
func ActionPriority(p dataset.Priority) string {
	return badge(PriorityTone(p))
}

// InsightTone returns the tone of an insight or recommendation priority label.
func InsightTone(priority string) Tone {
	switch priority {
	case "High", "Immediate":
		return ToneRed
	case "Medium":
		return ToneYellow
	case "Low":
		return ToneGreen
	default:
		return ToneGray
	}
}

// InsightPriority is the badge class set of an insight priority.
func InsightPriority(priority string) string {
	return badge(InsightTone(priority))
}

// ImpactTone returns the tone of an impact label.
func ImpactTone(impact string) Tone {
	switch impact {
	case "Critical":
		return ToneRed
	case "High":
		return ToneOrange
	case "Medium":
		return ToneYellow
	default:
		return ToneGray
	}
}

// Impact is the text class of an impact label.
func Impact(impact string) string {
	return text(ImpactTone(impact))
}

// StatusTone classifies an action status by keyword.
func StatusTone(status string) Tone {
	switch {
	case strings.Contains(status, "Ready"), strings.Contains(status, "Active"):
		return ToneGreen
	case strings.Contains(status, "Phase"), strings.Contains(status, "Procurement"):
		return ToneBlue
	default:
		return ToneYellow
	}
}

// Status is the text class of an action status.
func Status(status string) string {
	return text(StatusTone(status))
}

// TrendTone is red for rising crime and green for falling crime.
func TrendTone(t dataset.TrendArrow) Tone {
	switch t {
	case dataset.TrendUp:
		return ToneRed
	case dataset.TrendDown:
		return ToneGreen
	default:
		return ToneGray
	}
}

// TrendIcon returns the arrow glyph and its text class.
func TrendIcon(t dataset.TrendArrow) (glyph, class string) {
	switch t {
	case dataset.TrendUp:
		glyph = "↑"
	case dataset.TrendDown:
		glyph = "↓"
	default:
		glyph = "→"
	}
	return glyph, "text-" + string(TrendTone(t)) + "-500"
}

func badge(t Tone) string {
	c := string(t)
	return "bg-" + c + "-100 text-" + c + "-800 border-" + c + "-200"
}

func text(t Tone) string {
	return "text-" + string(t) + "-600"
}
