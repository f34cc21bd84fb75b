package view

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"crimedash/internal/dataset"
	"crimedash/internal/stats"
	"crimedash/internal/style"
)

// Bar is one row of the proportional area chart.
type Bar struct {
	Name         string            `json:"name"`
	CrimeCount   int               `json:"crimeCount"`
	Risk         dataset.RiskLevel `json:"riskLevel"`
	WidthPercent float64           `json:"widthPercent"`
	Color        string            `json:"color"`
	Badge        string            `json:"badge"`
	ChangeLabel  string            `json:"changeLabel"`
	Selected     bool              `json:"selected"`
}

// AreaDetail is the expanded card of the selected area.
type AreaDetail struct {
	Name             string  `json:"name"`
	Population       int     `json:"population"`
	CrimeRatePer1000 float64 `json:"crimeRatePer1000"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	ChangeLabel      string  `json:"changeLabel"`
}

// Result is the filtered, sorted projection plus its summary numbers.
type Result struct {
	Items           []dataset.AreaRecord `json:"items"`
	Bars            []Bar                `json:"bars"`
	MaxCrimeCount   int                  `json:"maxCrimeCount"`
	TotalCrimeCount int                  `json:"totalCrimeCount"`
	HighRiskCount   int                  `json:"highRiskCount"`
	ImprovingCount  int                  `json:"improvingCount"`
	Selected        *AreaDetail          `json:"selected,omitempty"`
	ActiveFilters   []Filter             `json:"activeFilters"`
}

// ComputeView filters base by the selection, sorts it stably and derives the summary counts.
// An empty view has MaxCrimeCount 0 and every bar width is 0.
func ComputeView(base []dataset.AreaRecord, s Selection) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}

	items := make([]dataset.AreaRecord, 0, len(base))
	for _, a := range base {
		if s.RiskFilter != RiskAll && string(a.Risk) != string(s.RiskFilter) {
			continue
		}
		if a.CrimeCount < s.CrimeThreshold {
			continue
		}
		items = append(items, a)
	}

	slices.SortStableFunc(items, comparator(s.SortKey))

	res := Result{
		Items:         items,
		Bars:          make([]Bar, 0, len(items)),
		ActiveFilters: ActiveFilters(s),
	}

	crimeCount := func(a dataset.AreaRecord) int { return a.CrimeCount }
	if m, err := stats.MaxOf(items, crimeCount); err == nil {
		res.MaxCrimeCount = m
	}
	res.TotalCrimeCount = stats.SumField(items, crimeCount)
	res.HighRiskCount = stats.CountWhere(items, func(a dataset.AreaRecord) bool { return a.Risk == dataset.RiskHigh })
	res.ImprovingCount = stats.CountWhere(items, dataset.AreaRecord.Improving)

	for _, a := range items {
		selected := s.SelectedArea != nil && *s.SelectedArea == a.Name
		res.Bars = append(res.Bars, Bar{
			Name:         a.Name,
			CrimeCount:   a.CrimeCount,
			Risk:         a.Risk,
			WidthPercent: stats.PercentOf(a.CrimeCount, res.MaxCrimeCount),
			Color:        style.RiskBar(a.Risk),
			Badge:        style.RiskBadge(a.Risk),
			ChangeLabel:  a.ChangeLabel(),
			Selected:     selected,
		})
		if selected {
			res.Selected = detail(a)
		}
	}

	return res, nil
}

// comparator orders areas by key. ByRisk compares the labels as strings, so High sorts before Low
// before Medium.
func comparator(key SortKey) func(a, b dataset.AreaRecord) int {
	switch key {
	case ByName:
		return func(a, b dataset.AreaRecord) int { return strings.Compare(a.Name, b.Name) }
	case ByRisk:
		return func(a, b dataset.AreaRecord) int { return strings.Compare(string(a.Risk), string(b.Risk)) }
	default:
		return func(a, b dataset.AreaRecord) int { return cmp.Compare(b.CrimeCount, a.CrimeCount) }
	}
}

func detail(a dataset.AreaRecord) *AreaDetail {
	d := &AreaDetail{
		Name:        a.Name,
		Population:  a.Population,
		Latitude:    a.Latitude,
		Longitude:   a.Longitude,
		ChangeLabel: a.ChangeLabel(),
	}
	if a.Population > 0 {
		d.CrimeRatePer1000 = math.Round(float64(a.CrimeCount)/float64(a.Population)*1000*100) / 100
	}
	return d
}
