package dataset

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Figures below are the 2023 city-wide aggregates baked into the dashboard.

var areas = []AreaRecord{
	{Name: "Saddar", CrimeCount: 2890, Risk: RiskHigh, PercentChange: 12, Trend: TrendUp, Population: 850000, Latitude: 24.8607, Longitude: 67.0011},
	{Name: "Clifton", CrimeCount: 2456, Risk: RiskHigh, PercentChange: -3, Trend: TrendDown, Population: 720000, Latitude: 24.8138, Longitude: 67.0299},
	{Name: "Gulshan", CrimeCount: 2234, Risk: RiskMedium, PercentChange: 8, Trend: TrendUp, Population: 1200000, Latitude: 24.9265, Longitude: 67.0822},
	{Name: "N.Nazimabad", CrimeCount: 2098, Risk: RiskMedium, PercentChange: 0, Trend: TrendFlat, Population: 900000, Latitude: 24.9056, Longitude: 67.0364},
	{Name: "Korangi", CrimeCount: 1987, Risk: RiskHigh, PercentChange: 15, Trend: TrendUp, Population: 2500000, Latitude: 24.8546, Longitude: 67.1134},
	{Name: "Malir", CrimeCount: 1876, Risk: RiskMedium, PercentChange: -5, Trend: TrendDown, Population: 2000000, Latitude: 24.8943, Longitude: 67.2093},
	{Name: "Lyari", CrimeCount: 1654, Risk: RiskHigh, PercentChange: 18, Trend: TrendUp, Population: 600000, Latitude: 24.87, Longitude: 66.975},
	{Name: "Defence", CrimeCount: 1543, Risk: RiskLow, PercentChange: -8, Trend: TrendDown, Population: 500000, Latitude: 24.8059, Longitude: 67.03},
	{Name: "Landhi", CrimeCount: 1432, Risk: RiskMedium, PercentChange: 2, Trend: TrendFlat, Population: 1800000, Latitude: 24.8418, Longitude: 67.1941},
	{Name: "Orangi", CrimeCount: 1321, Risk: RiskHigh, PercentChange: 22, Trend: TrendUp, Population: 2400000, Latitude: 24.9441, Longitude: 66.9734},
	{Name: "Baldia", CrimeCount: 1198, Risk: RiskMedium, PercentChange: 5, Trend: TrendUp, Population: 1500000, Latitude: 24.9441, Longitude: 66.9734},
	{Name: "Kemari", CrimeCount: 1087, Risk: RiskMedium, PercentChange: -2, Trend: TrendDown, Population: 800000, Latitude: 24.7936, Longitude: 66.975},
}

// cityAreas is the complete district list; the last three districts have no monitored coordinates.
var cityAreas = []AreaRecord{
	{Name: "Saddar", CrimeCount: 2890, Risk: RiskHigh, PercentChange: 12, Trend: TrendUp, Population: 850000},
	{Name: "Clifton", CrimeCount: 2456, Risk: RiskHigh, PercentChange: -3, Trend: TrendDown, Population: 720000},
	{Name: "Gulshan-e-Iqbal", CrimeCount: 2234, Risk: RiskMedium, PercentChange: 8, Trend: TrendUp, Population: 1200000},
	{Name: "North Nazimabad", CrimeCount: 2098, Risk: RiskMedium, PercentChange: 0, Trend: TrendFlat, Population: 900000},
	{Name: "Korangi", CrimeCount: 1987, Risk: RiskHigh, PercentChange: 15, Trend: TrendUp, Population: 2500000},
	{Name: "Malir", CrimeCount: 1876, Risk: RiskMedium, PercentChange: -5, Trend: TrendDown, Population: 2000000},
	{Name: "Lyari", CrimeCount: 1654, Risk: RiskHigh, PercentChange: 18, Trend: TrendUp, Population: 600000},
	{Name: "Defence (DHA)", CrimeCount: 1543, Risk: RiskLow, PercentChange: -8, Trend: TrendDown, Population: 500000},
	{Name: "Landhi", CrimeCount: 1432, Risk: RiskMedium, PercentChange: 2, Trend: TrendFlat, Population: 1800000},
	{Name: "Orangi Town", CrimeCount: 1321, Risk: RiskHigh, PercentChange: 22, Trend: TrendUp, Population: 2400000},
	{Name: "Baldia Town", CrimeCount: 1198, Risk: RiskMedium, PercentChange: 5, Trend: TrendUp, Population: 1500000},
	{Name: "Kemari", CrimeCount: 1087, Risk: RiskMedium, PercentChange: -2, Trend: TrendDown, Population: 800000},
	{Name: "New Karachi", CrimeCount: 987, Risk: RiskLow, PercentChange: -10, Trend: TrendDown, Population: 1100000},
	{Name: "Shah Faisal", CrimeCount: 876, Risk: RiskMedium, PercentChange: 7, Trend: TrendUp, Population: 700000},
	{Name: "Bin Qasim", CrimeCount: 654, Risk: RiskLow, PercentChange: -15, Trend: TrendDown, Population: 400000},
}

var crimeTypes = []CrimeTypeRecord{
	{Type: "Vehicle Theft", Count: 4567, Percentage: 18.6, Color: "#3b82f6"},
	{Type: "Burglary", Count: 3890, Percentage: 15.8, Color: "#ef4444"},
	{Type: "Street Crime", Count: 3245, Percentage: 13.2, Color: "#f59e0b"},
	{Type: "Fraud", Count: 2876, Percentage: 11.7, Color: "#10b981"},
	{Type: "Assault", Count: 2543, Percentage: 10.4, Color: "#8b5cf6"},
	{Type: "Drug Related", Count: 2234, Percentage: 9.1, Color: "#f97316"},
	{Type: "Domestic Violence", Count: 1987, Percentage: 8.1, Color: "#06b6d4"},
	{Type: "Others", Count: 3225, Percentage: 13.1, Color: "#84cc16"},
}

var overviewKPIs = []KPI{
	{Label: "Property Crimes", Percent: 68},
	{Label: "Violent Crimes", Percent: 23},
	{Label: "Solved Cases", Percent: 45},
	{Label: "Repeat Offenders", Percent: 12},
}

var hotspots = []Hotspot{
	{Location: "Saddar Bazaar", Latitude: 24.8607, Longitude: 67.0011, Incidents: 456, Kind: "Commercial"},
	{Location: "Clifton Beach", Latitude: 24.8138, Longitude: 67.0299, Incidents: 234, Kind: "Tourist"},
	{Location: "Gulshan Chowrangi", Latitude: 24.9265, Longitude: 67.0822, Incidents: 345, Kind: "Traffic"},
	{Location: "Korangi Crossing", Latitude: 24.8546, Longitude: 67.1134, Incidents: 287, Kind: "Industrial"},
}

var (
	genderBreakdown = []DemographicRecord{
		{Category: "Male", Count: 18456, Percentage: 75.1},
		{Category: "Female", Count: 4234, Percentage: 17.2},
		{Category: "Unknown", Count: 1877, Percentage: 7.7},
	}
	ageBreakdown = []DemographicRecord{
		{Category: "18-25", Count: 8765, Percentage: 35.7},
		{Category: "26-35", Count: 7234, Percentage: 29.4},
		{Category: "36-45", Count: 4567, Percentage: 18.6},
		{Category: "46-55", Count: 2345, Percentage: 9.5},
		{Category: "55+", Count: 1656, Percentage: 6.8},
	}
	educationBreakdown = []DemographicRecord{
		{Category: "No Education", Count: 6789, Percentage: 27.6},
		{Category: "Primary", Count: 5432, Percentage: 22.1},
		{Category: "Secondary", Count: 4567, Percentage: 18.6},
		{Category: "Higher Secondary", Count: 3456, Percentage: 14.1},
		{Category: "Graduate", Count: 2345, Percentage: 9.5},
		{Category: "Post Graduate", Count: 1234, Percentage: 5.0},
		{Category: "Unknown", Count: 744, Percentage: 3.1},
	}
	occupationBreakdown = []DemographicRecord{
		{Category: "Unemployed", Count: 7890, Percentage: 32.1},
		{Category: "Labor", Count: 4567, Percentage: 18.6},
		{Category: "Driver", Count: 3456, Percentage: 14.1},
		{Category: "Shopkeeper", Count: 2345, Percentage: 9.5},
		{Category: "Student", Count: 2234, Percentage: 9.1},
		{Category: "Office Worker", Count: 1876, Percentage: 7.6},
		{Category: "Others", Count: 2199, Percentage: 9.0},
	}
)

var (
	monthlyTrend = []TemporalRecord{
		{Bucket: "Jan 2023", CrimeCount: 1890, Trend: TrendDown},
		{Bucket: "Feb 2023", CrimeCount: 2100, Trend: TrendUp},
		{Bucket: "Mar 2023", CrimeCount: 2350, Trend: TrendUp},
		{Bucket: "Apr 2023", CrimeCount: 2180, Trend: TrendDown},
		{Bucket: "May 2023", CrimeCount: 2450, Trend: TrendUp},
		{Bucket: "Jun 2023", CrimeCount: 2680, Trend: TrendUp},
		{Bucket: "Jul 2023", CrimeCount: 2890, Trend: TrendUp},
		{Bucket: "Aug 2023", CrimeCount: 2750, Trend: TrendDown},
		{Bucket: "Sep 2023", CrimeCount: 2560, Trend: TrendDown},
		{Bucket: "Oct 2023", CrimeCount: 2340, Trend: TrendDown},
		{Bucket: "Nov 2023", CrimeCount: 2120, Trend: TrendDown},
		{Bucket: "Dec 2023", CrimeCount: 1980, Trend: TrendDown},
	}
	seasonalTrend = []TemporalRecord{
		{Bucket: "Spring", CrimeCount: 6630, Percentage: 27.0},
		{Bucket: "Summer", CrimeCount: 8320, Percentage: 33.9},
		{Bucket: "Monsoon", CrimeCount: 7450, Percentage: 30.3},
		{Bucket: "Winter", CrimeCount: 2167, Percentage: 8.8},
	}
	hourlyPattern = []TemporalRecord{
		{Bucket: "00-02", CrimeCount: 234},
		{Bucket: "02-04", CrimeCount: 156},
		{Bucket: "04-06", CrimeCount: 189},
		{Bucket: "06-08", CrimeCount: 567},
		{Bucket: "08-10", CrimeCount: 890},
		{Bucket: "10-12", CrimeCount: 1234},
		{Bucket: "12-14", CrimeCount: 1456},
		{Bucket: "14-16", CrimeCount: 1678},
		{Bucket: "16-18", CrimeCount: 1890},
		{Bucket: "18-20", CrimeCount: 2100},
		{Bucket: "20-22", CrimeCount: 1567},
		{Bucket: "22-00", CrimeCount: 789},
	}
	weeklyPattern = []TemporalRecord{
		{Bucket: "Monday", CrimeCount: 3456},
		{Bucket: "Tuesday", CrimeCount: 3234},
		{Bucket: "Wednesday", CrimeCount: 3567},
		{Bucket: "Thursday", CrimeCount: 3789},
		{Bucket: "Friday", CrimeCount: 4123},
		{Bucket: "Saturday", CrimeCount: 3890},
		{Bucket: "Sunday", CrimeCount: 2508},
	}
)

var keyInsights = []Insight{
	{
		Category: "Geographic Hotspots",
		Priority: "High",
		Impact:   "Critical",
		Findings: []string{
			"Saddar area accounts for 11.8% of total crimes, highest in the city",
			"Commercial areas show 40% higher crime rates than residential zones",
			"Tourist areas (Clifton Beach) require enhanced security during peak hours",
			"Industrial zones (Korangi) show increasing trend (+15% this quarter)",
		},
	},
	{
		Category: "Temporal Patterns",
		Priority: "High",
		Impact:   "High",
		Findings: []string{
			"Summer months show 33.9% of annual crimes - highest seasonal concentration",
			"Evening hours (6-8 PM) are peak crime time with 2,100+ incidents",
			"Fridays account for 16.8% of weekly crimes",
			"Early morning hours (2-4 AM) are safest with only 156 incidents",
		},
	},
	{
		Category: "Demographic Profiles",
		Priority: "Medium",
		Impact:   "Medium",
		Findings: []string{
			"75.1% of suspects are male, aged 18-35 years",
			"32.1% of suspects are unemployed - strong correlation with crime",
			"49.7% have primary education or below",
			"Youth (18-25) represent 35.7% of all crime suspects",
		},
	},
	{
		Category: "Crime Types",
		Priority: "High",
		Impact:   "High",
		Findings: []string{
			"Vehicle theft leads at 18.6% of all crimes",
			"Property crimes account for 68% of total incidents",
			"Street crimes show seasonal variation with summer peaks",
			"Drug-related crimes concentrated in specific neighborhoods",
		},
	},
}

var recommendations = []Recommendation{
	{
		Title:       "Enhanced Patrol Strategy",
		Description: "Deploy additional patrols in Saddar, Clifton, and Korangi during peak hours (6-8 PM) and summer months",
		Priority:    "Immediate",
		Resources:   "High",
		Timeline:    "1-2 weeks",
	},
	{
		Title:       "Youth Intervention Programs",
		Description: "Launch targeted programs for 18-35 age group focusing on employment and education opportunities",
		Priority:    "Medium",
		Resources:   "Medium",
		Timeline:    "3-6 months",
	},
	{
		Title:       "Commercial Area Security",
		Description: "Implement enhanced security measures in commercial zones with CCTV and private security coordination",
		Priority:    "High",
		Resources:   "High",
		Timeline:    "2-4 weeks",
	},
	{
		Title:       "Data-Driven Deployment",
		Description: "Use predictive analytics for resource allocation based on temporal and geographic patterns",
		Priority:    "Medium",
		Resources:   "Low",
		Timeline:    "1-3 months",
	},
}

var riskFactors = []RiskFactor{
	{Factor: "Unemployment Rate", Correlation: "High (32%)", Impact: "Critical"},
	{Factor: "Education Level", Correlation: "High (50% low education)", Impact: "High"},
	{Factor: "Age Demographics", Correlation: "Medium (65% under 35)", Impact: "Medium"},
	{Factor: "Seasonal Variation", Correlation: "High (Summer +40%)", Impact: "High"},
	{Factor: "Geographic Concentration", Correlation: "High (Top 5 areas = 45%)", Impact: "Critical"},
}

var immediateActions = []ActionItem{
	{
		Title:           "Enhanced Patrol Deployment",
		Description:     "Deploy additional patrol units in Saddar, Clifton, and Korangi during peak hours (6-8 PM)",
		Priority:        PriorityCritical,
		Timeline:        "1-2 weeks",
		Resources:       "50 additional officers",
		Cost:            "$150,000/month",
		Impact:          "25-30% crime reduction in target areas",
		Status:          "Ready to Deploy",
		ProgressPercent: 85,
	},
	{
		Title:           "CCTV Network Expansion",
		Description:     "Install 200 additional CCTV cameras in high-crime commercial areas",
		Priority:        PriorityHigh,
		Timeline:        "3-4 weeks",
		Resources:       "Technical team, equipment",
		Cost:            "$500,000 one-time",
		Impact:          "40% improvement in case resolution",
		Status:          "Procurement Phase",
		ProgressPercent: 60,
	},
	{
		Title:           "Emergency Response Optimization",
		Description:     "Reduce response time to under 8 minutes in high-risk areas",
		Priority:        PriorityHigh,
		Timeline:        "2-3 weeks",
		Resources:       "Communication upgrade",
		Cost:            "$75,000",
		Impact:          "50% faster response time",
		Status:          "Planning Phase",
		ProgressPercent: 40,
	},
}

var mediumTermActions = []ActionItem{
	{
		Title:           "Youth Employment Program",
		Description:     "Launch job training and placement program targeting 18-35 age group",
		Priority:        PriorityMedium,
		Timeline:        "3-6 months",
		Resources:       "Training centers, partnerships",
		Cost:            "$2M annually",
		Impact:          "15-20% reduction in youth crime",
		Status:          "Proposal Stage",
		ProgressPercent: 25,
	},
	{
		Title:           "Community Policing Initiative",
		Description:     "Establish community liaison officers in each high-crime area",
		Priority:        PriorityMedium,
		Timeline:        "2-4 months",
		Resources:       "20 community officers",
		Cost:            "$300,000 annually",
		Impact:          "Improved community relations",
		Status:          "Recruitment Phase",
		ProgressPercent: 45,
	},
	{
		Title:           "Education Support Program",
		Description:     "Adult education and skill development for at-risk populations",
		Priority:        PriorityMedium,
		Timeline:        "6-12 months",
		Resources:       "Educational institutions",
		Cost:            "$1.5M annually",
		Impact:          "Long-term crime prevention",
		Status:          "Partnership Development",
		ProgressPercent: 20,
	},
}

var longTermStrategies = []Strategy{
	{
		Title:       "Smart City Crime Prevention",
		Description: "AI-powered predictive policing system with real-time analytics",
		Timeline:    "12-18 months",
		Investment:  "$5M",
		Impact:      "30-40% overall crime reduction",
	},
	{
		Title:       "Socioeconomic Development",
		Description: "Comprehensive poverty alleviation and urban development program",
		Timeline:    "2-5 years",
		Investment:  "$50M",
		Impact:      "Address root causes of crime",
	},
	{
		Title:       "Regional Security Coordination",
		Description: "Inter-city crime prevention and intelligence sharing network",
		Timeline:    "18-24 months",
		Investment:  "$10M",
		Impact:      "Prevent crime displacement",
	},
}

var budgetAllocation = []BudgetLine{
	{Category: "Personnel", Amount: decimal.NewFromInt(2500000), Percentage: 45},
	{Category: "Technology", Amount: decimal.NewFromInt(1500000), Percentage: 27},
	{Category: "Infrastructure", Amount: decimal.NewFromInt(800000), Percentage: 14},
	{Category: "Community Programs", Amount: decimal.NewFromInt(500000), Percentage: 9},
	{Category: "Training", Amount: decimal.NewFromInt(300000), Percentage: 5},
}

// Areas returns the monitored areas used by the interactive charts, ordered by crime count.
func Areas() []AreaRecord { return slices.Clone(areas) }

// CityAreas returns the complete district list used by the extended area chart.
func CityAreas() []AreaRecord { return slices.Clone(cityAreas) }

// CrimeTypes returns the crime-type distribution.
func CrimeTypes() []CrimeTypeRecord { return slices.Clone(crimeTypes) }

// OverviewKPIs returns the headline percentages of the overview summary card.
func OverviewKPIs() []KPI { return slices.Clone(overviewKPIs) }

// Hotspots returns the mapped incident hotspots.
func Hotspots() []Hotspot { return slices.Clone(hotspots) }

func GenderBreakdown() []DemographicRecord     { return slices.Clone(genderBreakdown) }
func AgeBreakdown() []DemographicRecord        { return slices.Clone(ageBreakdown) }
func EducationBreakdown() []DemographicRecord  { return slices.Clone(educationBreakdown) }
func OccupationBreakdown() []DemographicRecord { return slices.Clone(occupationBreakdown) }

func MonthlyTrend() []TemporalRecord  { return slices.Clone(monthlyTrend) }
func SeasonalTrend() []TemporalRecord { return slices.Clone(seasonalTrend) }
func HourlyPattern() []TemporalRecord { return slices.Clone(hourlyPattern) }
func WeeklyPattern() []TemporalRecord { return slices.Clone(weeklyPattern) }

// KeyInsights returns deep copies so callers cannot reach the findings backing arrays.
func KeyInsights() []Insight {
	out := slices.Clone(keyInsights)
	for i := range out {
		out[i].Findings = slices.Clone(out[i].Findings)
	}
	return out
}

func Recommendations() []Recommendation { return slices.Clone(recommendations) }
func RiskFactors() []RiskFactor         { return slices.Clone(riskFactors) }

func ImmediateActions() []ActionItem  { return slices.Clone(immediateActions) }
func MediumTermActions() []ActionItem { return slices.Clone(mediumTermActions) }
func LongTermStrategies() []Strategy  { return slices.Clone(longTermStrategies) }
func BudgetAllocation() []BudgetLine  { return slices.Clone(budgetAllocation) }
