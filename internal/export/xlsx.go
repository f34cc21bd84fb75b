package export

import (
	"fmt"
	"io"
	"strings"

	"crimedash/internal/dataset"

	"github.com/xuri/excelize/v2"
)

type sheet struct {
	name    string
	headers []string
	rows    [][]any
}

func writeXLSX(w io.Writer, b Bundle) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := workbook(b)
	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if err := fillSheet(f, s); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func fillSheet(f *excelize.File, s sheet) error {
	for col, header := range s.headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(s.name, cell, header); err != nil {
			return fmt.Errorf("sheet %s: %w", s.name, err)
		}
		colName, _ := excelize.ColumnNumberToName(col + 1)
		_ = f.SetColWidth(s.name, colName, colName, 18)
	}
	for r, row := range s.rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(s.name, cell, v); err != nil {
				return fmt.Errorf("sheet %s: %w", s.name, err)
			}
		}
	}
	return nil
}

func workbook(b Bundle) []sheet {
	areaRows := func(areas []dataset.AreaRecord) [][]any {
		rows := make([][]any, 0, len(areas))
		for _, a := range areas {
			rows = append(rows, []any{a.Name, a.CrimeCount, string(a.Risk), a.ChangeLabel(), string(a.Trend), a.Population, a.Latitude, a.Longitude})
		}
		return rows
	}
	demoRows := func(records []dataset.DemographicRecord) [][]any {
		rows := make([][]any, 0, len(records))
		for _, r := range records {
			rows = append(rows, []any{r.Category, r.Count, r.Percentage})
		}
		return rows
	}
	timeRows := func(records []dataset.TemporalRecord) [][]any {
		rows := make([][]any, 0, len(records))
		for _, r := range records {
			rows = append(rows, []any{r.Bucket, r.CrimeCount, string(r.Trend), r.Percentage})
		}
		return rows
	}
	actionRows := func(items []dataset.ActionItem) [][]any {
		rows := make([][]any, 0, len(items))
		for _, a := range items {
			rows = append(rows, []any{a.Title, a.Description, string(a.Priority), a.Timeline, a.Resources, a.Cost, a.Impact, a.Status, a.ProgressPercent})
		}
		return rows
	}

	areaHeaders := []string{"Area", "Crimes", "Risk", "Change", "Trend", "Population", "Latitude", "Longitude"}
	demoHeaders := []string{"Category", "Count", "Percentage"}
	timeHeaders := []string{"Bucket", "Crimes", "Trend", "Percentage"}
	actionHeaders := []string{"Title", "Description", "Priority", "Timeline", "Resources", "Cost", "Impact", "Status", "Progress"}

	var crimeTypes, kpis, hotspots, insights, recs, factors, strategies, budget [][]any
	for _, c := range b.CrimeTypes {
		crimeTypes = append(crimeTypes, []any{c.Type, c.Count, c.Percentage, c.Color})
	}
	for _, k := range b.OverviewKPIs {
		kpis = append(kpis, []any{k.Label, k.Percent})
	}
	for _, h := range b.Hotspots {
		hotspots = append(hotspots, []any{h.Location, h.Kind, h.Incidents, h.Latitude, h.Longitude})
	}
	for _, in := range b.KeyInsights {
		insights = append(insights, []any{in.Category, in.Priority, in.Impact, strings.Join(in.Findings, "\n")})
	}
	for _, r := range b.Recommendations {
		recs = append(recs, []any{r.Title, r.Description, r.Priority, r.Resources, r.Timeline})
	}
	for _, f := range b.RiskFactors {
		factors = append(factors, []any{f.Factor, f.Correlation, f.Impact})
	}
	for _, s := range b.LongTermStrategies {
		strategies = append(strategies, []any{s.Title, s.Description, s.Timeline, s.Investment, s.Impact})
	}
	for _, l := range b.Budget {
		amount, _ := l.Amount.Float64()
		budget = append(budget, []any{l.Category, amount, l.Percentage})
	}

	return []sheet{
		{"Areas", areaHeaders, areaRows(b.Areas)},
		{"City Areas", areaHeaders, areaRows(b.CityAreas)},
		{"Crime Types", []string{"Type", "Count", "Percentage", "Color"}, crimeTypes},
		{"KPIs", []string{"Label", "Percent"}, kpis},
		{"Hotspots", []string{"Location", "Kind", "Incidents", "Latitude", "Longitude"}, hotspots},
		{"Gender", demoHeaders, demoRows(b.Gender)},
		{"Age", demoHeaders, demoRows(b.Age)},
		{"Education", demoHeaders, demoRows(b.Education)},
		{"Occupation", demoHeaders, demoRows(b.Occupation)},
		{"Monthly", timeHeaders, timeRows(b.Monthly)},
		{"Seasonal", timeHeaders, timeRows(b.Seasonal)},
		{"Hourly", timeHeaders, timeRows(b.Hourly)},
		{"Weekly", timeHeaders, timeRows(b.Weekly)},
		{"Key Insights", []string{"Category", "Priority", "Impact", "Findings"}, insights},
		{"Recommendations", []string{"Title", "Description", "Priority", "Resources", "Timeline"}, recs},
		{"Risk Factors", []string{"Factor", "Correlation", "Impact"}, factors},
		{"Immediate Actions", actionHeaders, actionRows(b.ImmediateActions)},
		{"Medium-term Actions", actionHeaders, actionRows(b.MediumTermActions)},
		{"Strategies", []string{"Title", "Description", "Timeline", "Investment", "Impact"}, strategies},
		{"Budget", []string{"Category", "Amount", "Percentage"}, budget},
	}
}
