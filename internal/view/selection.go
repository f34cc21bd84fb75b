// Package view projects the area table through the user's current selection.
package view

import (
	"errors"
	"fmt"
	"strconv"

	"crimedash/internal/dataset"
)

// ErrInvalidSelection is returned for enum values outside the closed sets below.
var ErrInvalidSelection = errors.New("invalid selection")

// RiskFilter narrows the view to one risk level, or keeps all of them.
type RiskFilter string

const (
	RiskAll    RiskFilter = "All"
	RiskLow    RiskFilter = RiskFilter(dataset.RiskLow)
	RiskMedium RiskFilter = RiskFilter(dataset.RiskMedium)
	RiskHigh   RiskFilter = RiskFilter(dataset.RiskHigh)
)

// SortKey orders the view.
type SortKey string

const (
	ByCount SortKey = "count"
	ByName  SortKey = "name"
	ByRisk  SortKey = "risk"
)

// Mode is how the presentation lays out the view.
type Mode string

const (
	ModeBars Mode = "bars"
	ModeGrid Mode = "grid"
)

// Threshold bounds of the minimum-crimes slider.
const (
	MaxThreshold  = 3000
	ThresholdStep = 100
)

// Selection is the mutable UI state of one mounted view.
type Selection struct {
	RiskFilter        RiskFilter `json:"riskFilter"`
	CrimeThreshold    int        `json:"crimeThreshold"`
	SortKey           SortKey    `json:"sortKey"`
	SelectedArea      *string    `json:"selectedArea"`
	SelectedCrimeType *string    `json:"selectedCrimeType"`
	Mode              Mode       `json:"viewMode"`
	AnimationEnabled  bool       `json:"animationEnabled"`
}

// ResetSelection returns a fresh default selection. Nothing from a prior state survives.
func ResetSelection() Selection {
	return Selection{
		RiskFilter:       RiskAll,
		CrimeThreshold:   0,
		SortKey:          ByCount,
		Mode:             ModeBars,
		AnimationEnabled: true,
	}
}

// ToggleSelection selects candidate, or clears the selection when candidate is already selected.
func ToggleSelection(current *string, candidate string) *string {
	if current != nil && *current == candidate {
		return nil
	}
	return &candidate
}

// Validate checks every enum against its closed set.
func (s Selection) Validate() error {
	switch s.RiskFilter {
	case RiskAll, RiskLow, RiskMedium, RiskHigh:
	default:
		return fmt.Errorf("%w: risk filter %q", ErrInvalidSelection, s.RiskFilter)
	}
	switch s.SortKey {
	case ByCount, ByName, ByRisk:
	default:
		return fmt.Errorf("%w: sort key %q", ErrInvalidSelection, s.SortKey)
	}
	switch s.Mode {
	case ModeBars, ModeGrid:
	default:
		return fmt.Errorf("%w: view mode %q", ErrInvalidSelection, s.Mode)
	}
	if s.CrimeThreshold < 0 {
		return fmt.Errorf("%w: negative crime threshold %d", ErrInvalidSelection, s.CrimeThreshold)
	}
	return nil
}

// FilterKind identifies one removable badge of the active-filter row.
type FilterKind string

const (
	FilterArea      FilterKind = "area"
	FilterCrimeType FilterKind = "crime_type"
	FilterRisk      FilterKind = "risk"
	FilterThreshold FilterKind = "threshold"
)

// Filter is one active-filter badge.
type Filter struct {
	Kind  FilterKind `json:"kind"`
	Label string     `json:"label"`
}

// ActiveFilters lists the badges for every non-default filter, in display order.
func ActiveFilters(s Selection) []Filter {
	var out []Filter
	if s.SelectedArea != nil {
		out = append(out, Filter{Kind: FilterArea, Label: "Area: " + *s.SelectedArea})
	}
	if s.SelectedCrimeType != nil {
		out = append(out, Filter{Kind: FilterCrimeType, Label: "Crime: " + *s.SelectedCrimeType})
	}
	if s.RiskFilter != RiskAll {
		out = append(out, Filter{Kind: FilterRisk, Label: "Risk: " + string(s.RiskFilter)})
	}
	if s.CrimeThreshold > 0 {
		out = append(out, Filter{Kind: FilterThreshold, Label: "Min Crimes: " + strconv.Itoa(s.CrimeThreshold)})
	}
	return out
}

// ClearFilter resets the single filter behind a badge.
func ClearFilter(s Selection, kind FilterKind) (Selection, error) {
	switch kind {
	case FilterArea:
		s.SelectedArea = nil
	case FilterCrimeType:
		s.SelectedCrimeType = nil
	case FilterRisk:
		s.RiskFilter = RiskAll
	case FilterThreshold:
		s.CrimeThreshold = 0
	default:
		return s, fmt.Errorf("%w: filter kind %q", ErrInvalidSelection, kind)
	}
	return s, nil
}
