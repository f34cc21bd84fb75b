package visuals

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"crimedash/internal/dashboard"
	"crimedash/internal/dataset"
	"crimedash/internal/view"
)

// ErrUnknownChart is returned by Render for a chart name it does not know.
var ErrUnknownChart = errors.New("unknown chart")

// Chart names accepted by Render.
const (
	ChartAreas      = "areas"
	ChartCrimeTypes = "crime-types"
	ChartMonthly    = "monthly"
	ChartHourly     = "hourly"
	ChartWeekly     = "weekly"
	ChartBudget     = "budget"
)

// Charts lists every chart Render can produce.
func Charts() []string {
	return []string{ChartAreas, ChartCrimeTypes, ChartMonthly, ChartHourly, ChartWeekly, ChartBudget}
}

// Render builds the named chart. Only the area chart depends on the selection.
func Render(name string, sel view.Selection) (string, error) {
	switch name {
	case ChartAreas:
		res, err := view.ComputeView(dataset.Areas(), sel)
		if err != nil {
			return "", err
		}
		return GenerateAreaChart(res), nil
	case ChartCrimeTypes:
		return GenerateCrimeTypePie(dataset.CrimeTypes()), nil
	case ChartMonthly:
		return GenerateTrendLine(dashboard.BuildTrends().Monthly, "Crimes per Month"), nil
	case ChartHourly:
		return GenerateSeriesBars(dashboard.BuildTrends().Hourly, "Crimes by Time of Day"), nil
	case ChartWeekly:
		return GenerateSeriesBars(dashboard.BuildTrends().Weekly, "Crimes by Day of Week"), nil
	case ChartBudget:
		return GenerateBudgetPie(dataset.BudgetAllocation()), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
}

// GenerateAreaChart creates a Mermaid bar chart of the filtered area view.
func GenerateAreaChart(res view.Result) string {
	if len(res.Items) == 0 {
		return ""
	}

	var labels []string
	var values []string
	for _, a := range res.Items {
		labels = append(labels, fmt.Sprintf("\"%s\"", a.Name))
		values = append(values, fmt.Sprintf("%d", a.CrimeCount))
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"Crime by Area (%d areas, %d incidents)\"\n", len(res.Items), res.TotalCrimeCount))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Incidents\" 0 --> %d\n", headroom(res.MaxCrimeCount)))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateCrimeTypePie creates a Mermaid pie chart of the crime-type distribution.
func GenerateCrimeTypePie(types []dataset.CrimeTypeRecord) string {
	if len(types) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("pie title Crime Type Distribution\n")
	for _, c := range types {
		sb.WriteString(fmt.Sprintf("    \"%s\" : %d\n", c.Type, c.Count))
	}
	sb.WriteString("```")
	return sb.String()
}

// GenerateTrendLine creates a Mermaid line chart of a time series.
func GenerateTrendLine(s dashboard.Series, title string) string {
	if len(s.Buckets) == 0 {
		return ""
	}

	labels, values, maxVal := seriesAxes(s)

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"%s\"\n", title))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Incidents\" 0 --> %d\n", headroom(maxVal)))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateSeriesBars creates a Mermaid bar chart of a time series.
func GenerateSeriesBars(s dashboard.Series, title string) string {
	if len(s.Buckets) == 0 {
		return ""
	}

	labels, values, maxVal := seriesAxes(s)

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"%s (peak: %s)\"\n", title, s.Peak))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Incidents\" 0 --> %d\n", headroom(maxVal)))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateBudgetPie creates a Mermaid pie chart of the proposed budget.
func GenerateBudgetPie(lines []dataset.BudgetLine) string {
	if len(lines) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("pie showData title Budget Allocation (USD)\n")
	for _, l := range lines {
		sb.WriteString(fmt.Sprintf("    \"%s\" : %s\n", l.Category, l.Amount.StringFixed(0)))
	}
	sb.WriteString("```")
	return sb.String()
}

func seriesAxes(s dashboard.Series) (labels, values []string, maxVal int) {
	for _, b := range s.Buckets {
		labels = append(labels, fmt.Sprintf("\"%s\"", b.Label))
		values = append(values, fmt.Sprintf("%d", b.CrimeCount))
		maxVal = max(maxVal, b.CrimeCount)
	}
	return labels, values, maxVal
}

// headroom leaves 20% above the tallest value so labels are not clipped.
func headroom(maxVal int) int {
	return maxVal + int(math.Max(1, float64(maxVal)*0.2))
}
