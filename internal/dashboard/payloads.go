package dashboard

import (
	"cmp"
	"slices"

	"crimedash/internal/dataset"
	"crimedash/internal/stats"
	"crimedash/internal/style"
	"crimedash/internal/view"

	"github.com/shopspring/decimal"
)

// ScaledBar is a labelled value with its width against the largest value of its series.
type ScaledBar struct {
	Label        string  `json:"label"`
	Value        int     `json:"value"`
	WidthPercent float64 `json:"widthPercent"`
	Percentage   float64 `json:"percentage"`
}

// CrimeTypeSlice is one pie segment of the overview.
type CrimeTypeSlice struct {
	dataset.CrimeTypeRecord
	Selected bool `json:"selected"`
}

// Overview is the payload of the overview tab.
type Overview struct {
	CrimeTypes       []CrimeTypeSlice `json:"crimeTypes"`
	Areas            view.Result      `json:"areas"`
	KPIs             []dataset.KPI    `json:"kpis"`
	TotalAreaCrimes  int              `json:"totalAreaCrimes"`
	MedianAreaCrimes float64          `json:"medianAreaCrimes"`
	LeadingCrimeType string           `json:"leadingCrimeType"`
}

// BuildOverview runs the selection through the area view.
func BuildOverview(sel view.Selection) (Overview, error) {
	areas := dataset.Areas()
	res, err := view.ComputeView(areas, sel)
	if err != nil {
		return Overview{}, err
	}

	types := dataset.CrimeTypes()
	segments := make([]CrimeTypeSlice, 0, len(types))
	for _, c := range types {
		segments = append(segments, CrimeTypeSlice{
			CrimeTypeRecord: c,
			Selected:        sel.SelectedCrimeType != nil && *sel.SelectedCrimeType == c.Type,
		})
	}

	counts := make([]int, 0, len(areas))
	for _, a := range areas {
		counts = append(counts, a.CrimeCount)
	}

	o := Overview{
		CrimeTypes:       segments,
		Areas:            res,
		KPIs:             dataset.OverviewKPIs(),
		TotalAreaCrimes:  stats.SumField(areas, func(a dataset.AreaRecord) int { return a.CrimeCount }),
		MedianAreaCrimes: stats.CalculateMedianDiscrete(counts),
	}
	if idx, err := stats.PeakOf(types, func(c dataset.CrimeTypeRecord) int { return c.Count }); err == nil {
		o.LeadingCrimeType = types[idx].Type
	}
	return o, nil
}

// AreaRisk is one row of the risk assessment table.
type AreaRisk struct {
	dataset.AreaRecord
	Badge      string `json:"badge"`
	TrendGlyph string `json:"trendGlyph"`
	TrendClass string `json:"trendClass"`
}

// HotspotShare is a hotspot with its share of all hotspot incidents.
type HotspotShare struct {
	dataset.Hotspot
	SharePercent float64 `json:"sharePercent"`
}

// Geographic is the payload of the geographic tab.
type Geographic struct {
	Areas            []AreaRisk                `json:"areas"`
	RiskCounts       map[dataset.RiskLevel]int `json:"riskCounts"`
	Hotspots         []HotspotShare            `json:"hotspots"`
	HotspotIncidents int                       `json:"hotspotIncidents"`
	Districts        []ScaledBar               `json:"districts"`
}

// RiskAssessmentSize is how many of the busiest areas the risk table lists.
const RiskAssessmentSize = 10

func BuildGeographic() Geographic {
	top := stats.TopN(dataset.Areas(), RiskAssessmentSize, func(a, b dataset.AreaRecord) int {
		return cmp.Compare(b.CrimeCount, a.CrimeCount)
	})

	g := Geographic{
		Areas:      make([]AreaRisk, 0, len(top)),
		RiskCounts: stats.GroupCounts(top, func(a dataset.AreaRecord) dataset.RiskLevel { return a.Risk }),
	}
	for _, a := range top {
		glyph, class := style.TrendIcon(a.Trend)
		g.Areas = append(g.Areas, AreaRisk{
			AreaRecord: a,
			Badge:      style.RiskBadge(a.Risk),
			TrendGlyph: glyph,
			TrendClass: class,
		})
	}

	spots := dataset.Hotspots()
	g.HotspotIncidents = stats.SumField(spots, func(h dataset.Hotspot) int { return h.Incidents })
	for _, h := range spots {
		g.Hotspots = append(g.Hotspots, HotspotShare{
			Hotspot:      h,
			SharePercent: stats.ShareOf(h.Incidents, g.HotspotIncidents),
		})
	}

	districts := dataset.CityAreas()
	g.Districts = scale(len(districts), func(i int) (string, int) {
		return districts[i].Name, districts[i].CrimeCount
	})
	return g
}

// Breakdown is one demographic dimension.
type Breakdown struct {
	Name  string      `json:"name"`
	Bars  []ScaledBar `json:"bars"`
	Total int         `json:"total"`
}

// Demographic is the payload of the demographic tab.
type Demographic struct {
	Gender     Breakdown `json:"gender"`
	Age        Breakdown `json:"age"`
	Education  Breakdown `json:"education"`
	Occupation Breakdown `json:"occupation"`
}

func BuildDemographic() Demographic {
	return Demographic{
		Gender:     breakdown("Gender", dataset.GenderBreakdown()),
		Age:        breakdown("Age", dataset.AgeBreakdown()),
		Education:  breakdown("Education", dataset.EducationBreakdown()),
		Occupation: breakdown("Occupation", dataset.OccupationBreakdown()),
	}
}

func breakdown(name string, records []dataset.DemographicRecord) Breakdown {
	bars := scale(len(records), func(i int) (string, int) { return records[i].Category, records[i].Count })
	for i := range bars {
		bars[i].Percentage = records[i].Percentage
	}
	return Breakdown{
		Name:  name,
		Bars:  bars,
		Total: stats.SumField(records, func(r dataset.DemographicRecord) int { return r.Count }),
	}
}

// Bucket is one point of a time series.
type Bucket struct {
	Label        string  `json:"label"`
	CrimeCount   int     `json:"crimeCount"`
	WidthPercent float64 `json:"widthPercent"`
	SharePercent float64 `json:"sharePercent"`
	TrendGlyph   string  `json:"trendGlyph,omitempty"`
	TrendClass   string  `json:"trendClass,omitempty"`
}

// Series is a time breakdown with its peak bucket.
type Series struct {
	Name      string   `json:"name"`
	Buckets   []Bucket `json:"buckets"`
	Total     int      `json:"total"`
	Peak      string   `json:"peak"`
	PeakShare float64  `json:"peakShare"`
	// MedianShare is the median bucket share, the level a typical bucket sits at.
	MedianShare float64 `json:"medianShare"`
}

// Trends is the payload of the trends tab.
type Trends struct {
	Monthly  Series `json:"monthly"`
	Seasonal Series `json:"seasonal"`
	Hourly   Series `json:"hourly"`
	Weekly   Series `json:"weekly"`
}

func BuildTrends() Trends {
	return Trends{
		Monthly:  series("Monthly 2023", dataset.MonthlyTrend()),
		Seasonal: series("Seasonal", dataset.SeasonalTrend()),
		Hourly:   series("Hourly", dataset.HourlyPattern()),
		Weekly:   series("Weekly", dataset.WeeklyPattern()),
	}
}

func series(name string, records []dataset.TemporalRecord) Series {
	count := func(r dataset.TemporalRecord) int { return r.CrimeCount }
	s := Series{Name: name, Total: stats.SumField(records, count)}

	ceiling, _ := stats.MaxOf(records, count)
	for _, r := range records {
		b := Bucket{
			Label:        r.Bucket,
			CrimeCount:   r.CrimeCount,
			WidthPercent: stats.PercentOf(r.CrimeCount, ceiling),
			SharePercent: stats.ShareOf(r.CrimeCount, s.Total),
		}
		if r.Trend != "" {
			b.TrendGlyph, b.TrendClass = style.TrendIcon(r.Trend)
		}
		s.Buckets = append(s.Buckets, b)
	}

	if idx, err := stats.PeakOf(records, count); err == nil {
		s.Peak = records[idx].Bucket
		s.PeakShare = s.Buckets[idx].SharePercent
	}

	shares := make([]float64, len(s.Buckets))
	for i, b := range s.Buckets {
		shares[i] = b.SharePercent
	}
	s.MedianShare = stats.CalculateMedianContinuous(shares)
	return s
}

// InsightCard is a key insight with its tokens.
type InsightCard struct {
	dataset.Insight
	PriorityBadge string `json:"priorityBadge"`
	ImpactClass   string `json:"impactClass"`
}

// RecommendationCard is a recommendation with its priority badge.
type RecommendationCard struct {
	dataset.Recommendation
	PriorityBadge string `json:"priorityBadge"`
}

// RiskFactorRow is a risk factor with its impact class.
type RiskFactorRow struct {
	dataset.RiskFactor
	ImpactClass string `json:"impactClass"`
}

// Insights is the payload of the insights tab.
type Insights struct {
	KeyInsights       []InsightCard        `json:"keyInsights"`
	Recommendations   []RecommendationCard `json:"recommendations"`
	RiskFactors       []RiskFactorRow      `json:"riskFactors"`
	HighPriorityCount int                  `json:"highPriorityCount"`
}

func BuildInsights() Insights {
	var out Insights
	insights := dataset.KeyInsights()
	for _, in := range insights {
		out.KeyInsights = append(out.KeyInsights, InsightCard{
			Insight:       in,
			PriorityBadge: style.InsightPriority(in.Priority),
			ImpactClass:   style.Impact(in.Impact),
		})
	}
	out.HighPriorityCount = stats.CountWhere(insights, func(in dataset.Insight) bool { return in.Priority == "High" })

	for _, r := range dataset.Recommendations() {
		out.Recommendations = append(out.Recommendations, RecommendationCard{
			Recommendation: r,
			PriorityBadge:  style.InsightPriority(r.Priority),
		})
	}
	for _, f := range dataset.RiskFactors() {
		out.RiskFactors = append(out.RiskFactors, RiskFactorRow{
			RiskFactor:  f,
			ImpactClass: style.Impact(f.Impact),
		})
	}
	return out
}

// ActionCard is an action item with its tokens.
type ActionCard struct {
	dataset.ActionItem
	PriorityBadge string `json:"priorityBadge"`
	StatusClass   string `json:"statusClass"`
}

// Actions is the payload of the action plans tab.
type Actions struct {
	Immediate       []ActionCard         `json:"immediate"`
	MediumTerm      []ActionCard         `json:"mediumTerm"`
	Strategies      []dataset.Strategy   `json:"strategies"`
	Budget          []dataset.BudgetLine `json:"budget"`
	BudgetTotal     decimal.Decimal      `json:"budgetTotal"`
	AverageProgress float64              `json:"averageProgress"`
}

func BuildActions() Actions {
	immediate := dataset.ImmediateActions()
	medium := dataset.MediumTermActions()
	budget := dataset.BudgetAllocation()

	total := decimal.Zero
	for _, b := range budget {
		total = total.Add(b.Amount)
	}

	all := slices.Concat(immediate, medium)
	progress := stats.SumField(all, func(a dataset.ActionItem) int { return a.ProgressPercent })

	a := Actions{
		Immediate:   actionCards(immediate),
		MediumTerm:  actionCards(medium),
		Strategies:  dataset.LongTermStrategies(),
		Budget:      budget,
		BudgetTotal: total,
	}
	if len(all) > 0 {
		a.AverageProgress = float64(progress) / float64(len(all))
	}
	return a
}

func actionCards(items []dataset.ActionItem) []ActionCard {
	out := make([]ActionCard, 0, len(items))
	for _, it := range items {
		out = append(out, ActionCard{
			ActionItem:    it,
			PriorityBadge: style.ActionPriority(it.Priority),
			StatusClass:   style.Status(it.Status),
		})
	}
	return out
}

func scale(n int, at func(i int) (string, int)) []ScaledBar {
	bars := make([]ScaledBar, 0, n)
	ceiling := 0
	for i := 0; i < n; i++ {
		_, v := at(i)
		ceiling = max(ceiling, v)
	}
	for i := 0; i < n; i++ {
		label, v := at(i)
		bars = append(bars, ScaledBar{Label: label, Value: v, WidthPercent: stats.PercentOf(v, ceiling)})
	}
	return bars
}
