package live

import "time"

// Seed values of the dashboard header.
const (
	SeedTotalCrimes       = 24567
	SeedAreasMonitored    = 45
	SeedCrimeTypesTracked = 28
	SeedRiskScore         = 7.2
	SeedTrendPercent      = -5.2

	MaxRiskScore = 10.0
)

// Metrics is the header telemetry of one view.
type Metrics struct {
	TotalCrimes       int       `json:"totalCrimes"`
	AreasMonitored    int       `json:"areasMonitored"`
	CrimeTypesTracked int       `json:"crimeTypesTracked"`
	RiskScore         float64   `json:"riskScore"`
	TrendPercent      float64   `json:"trendPercent"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

// Seed returns the header metrics a freshly mounted view starts with.
func Seed(now time.Time) Metrics {
	return Metrics{
		TotalCrimes:       SeedTotalCrimes,
		AreasMonitored:    SeedAreasMonitored,
		CrimeTypesTracked: SeedCrimeTypesTracked,
		RiskScore:         SeedRiskScore,
		TrendPercent:      SeedTrendPercent,
		LastUpdated:       now,
	}
}

// randSource is the subset of *rand.Rand a step needs.
type randSource interface {
	Intn(n int) int
	Float64() float64
}

// step nudges the metrics by one bounded random delta each:
// total by [-5, +4], risk by [-0.1, +0.1) clamped to [0, 10], trend by [-1, +1).
func step(m Metrics, rng randSource, now time.Time) Metrics {
	m.TotalCrimes += rng.Intn(10) - 5
	m.RiskScore = min(MaxRiskScore, max(0, m.RiskScore+(rng.Float64()-0.5)*0.2))
	m.TrendPercent += (rng.Float64() - 0.5) * 2
	m.LastUpdated = now
	return m
}
