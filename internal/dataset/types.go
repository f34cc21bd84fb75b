package dataset

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RiskLevel is the categorical severity assigned to a monitored area.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// TrendArrow is the direction marker shown next to a figure. The empty value means "no arrow".
type TrendArrow string

const (
	TrendUp   TrendArrow = "up"
	TrendDown TrendArrow = "down"
	TrendFlat TrendArrow = "flat"
)

// Priority ranks an action item.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
)

// AreaRecord holds the yearly statistics of one monitored area.
type AreaRecord struct {
	Name          string     `json:"name"`
	CrimeCount    int        `json:"crimeCount"`
	Risk          RiskLevel  `json:"riskLevel"`
	PercentChange float64    `json:"percentChange"` // signed, vs. previous period
	Trend         TrendArrow `json:"trend"`
	Population    int        `json:"population"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
}

// ChangeLabel renders the change the way the dashboard prints it: "+12%", "-3%", "0%".
func (a AreaRecord) ChangeLabel() string {
	if a.PercentChange == 0 {
		return "0%"
	}
	return fmt.Sprintf("%+g%%", a.PercentChange)
}

// Improving reports whether the area's crime count went down.
func (a AreaRecord) Improving() bool {
	return a.PercentChange < 0
}

// CrimeTypeRecord is one slice of the crime-type distribution.
type CrimeTypeRecord struct {
	Type       string  `json:"type"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// DemographicRecord is one bucket of a suspect breakdown (gender, age, education, occupation).
type DemographicRecord struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// TemporalRecord is one bucket of a time breakdown (month, season, hour range, weekday).
type TemporalRecord struct {
	Bucket     string     `json:"bucket"`
	CrimeCount int        `json:"crimeCount"`
	Trend      TrendArrow `json:"trend,omitempty"`
	Percentage float64    `json:"percentage,omitempty"`
}

// Hotspot is a point location with a concentration of incidents.
type Hotspot struct {
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Incidents int     `json:"incidents"`
	Kind      string  `json:"kind"`
}

// ActionItem is an intervention on the action-plans tab.
type ActionItem struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Priority        Priority `json:"priority"`
	Timeline        string   `json:"timeline"`
	Resources       string   `json:"resources"`
	Cost            string   `json:"cost"`
	Impact          string   `json:"impact"`
	Status          string   `json:"status"`
	ProgressPercent int      `json:"progressPercent"`
}

// Strategy is a long-term programme without a progress figure.
type Strategy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Timeline    string `json:"timeline"`
	Investment  string `json:"investment"`
	Impact      string `json:"impact"`
}

// BudgetLine is one category of the proposed budget.
type BudgetLine struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// Insight groups findings for one analysis category.
type Insight struct {
	Category string   `json:"category"`
	Priority string   `json:"priority"`
	Impact   string   `json:"impact"`
	Findings []string `json:"findings"`
}

// Recommendation is a strategic recommendation on the insights tab.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Resources   string `json:"resources"`
	Timeline    string `json:"timeline"`
}

// RiskFactor is a correlated socio-economic factor.
type RiskFactor struct {
	Factor      string `json:"factor"`
	Correlation string `json:"correlation"`
	Impact      string `json:"impact"`
}

// KPI is a headline percentage on the overview summary card.
type KPI struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}
