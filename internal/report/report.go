// Package report renders the dashboard tabs as terminal text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"crimedash/internal/dashboard"
	"crimedash/internal/dataset"
	"crimedash/internal/live"
	"crimedash/internal/stats"
	"crimedash/internal/style"
	"crimedash/internal/view"
)

const barCells = 24

// Options selects what Write renders.
type Options struct {
	Tabs      []dashboard.Tab
	Selection view.Selection
	Live      live.Snapshot
}

// Write renders the header cards followed by every requested tab.
func Write(w io.Writer, opts Options) error {
	tabs := opts.Tabs
	if len(tabs) == 0 {
		tabs = dashboard.Tabs()
	}

	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", RenderTitle(opts.Live), RenderCards(HeaderCards(opts.Live))); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, tab := range tabs {
		payload, err := dashboard.Build(tab, opts.Selection)
		if err != nil {
			return err
		}
		if err := writeTab(w, payload); err != nil {
			return fmt.Errorf("write %s tab: %w", tab, err)
		}
	}
	return nil
}

func writeTab(w io.Writer, payload any) error {
	switch p := payload.(type) {
	case dashboard.Overview:
		return writeOverview(w, p)
	case dashboard.Geographic:
		return writeGeographic(w, p)
	case dashboard.Demographic:
		return writeDemographic(w, p)
	case dashboard.Trends:
		return writeTrends(w, p)
	case dashboard.Insights:
		return writeInsights(w, p)
	case dashboard.Actions:
		return writeActions(w, p)
	default:
		return fmt.Errorf("unsupported payload %T", payload)
	}
}

func heading(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, "%s\n\n", SectionTitle(title))
	return err
}

func blank(w io.Writer) error {
	_, err := fmt.Fprintln(w)
	return err
}

func riskColumn() ColorFunc {
	return toneColumn(func(v string) style.Tone { return style.RiskTone(dataset.RiskLevel(v)) })
}

func writeOverview(w io.Writer, o dashboard.Overview) error {
	if err := heading(w, "Crime Type Distribution"); err != nil {
		return err
	}
	types := NewTable(
		Column{Header: "TYPE"},
		Column{Header: "COUNT", Align: AlignRight},
		Column{Header: "SHARE", Align: AlignRight},
		Column{Header: ""},
	)
	ceiling := 0
	for _, c := range o.CrimeTypes {
		ceiling = max(ceiling, c.Count)
	}
	for _, c := range o.CrimeTypes {
		label := c.Type
		if c.Selected {
			label = "* " + label
		}
		types.AddRow(label, thousands(c.Count), fmt.Sprintf("%.1f%%", c.Percentage), Bar(stats.PercentOf(c.Count, ceiling), barCells))
	}
	if err := types.Render(w); err != nil {
		return err
	}
	if err := blank(w); err != nil {
		return err
	}

	if err := heading(w, "Crime by Area"); err != nil {
		return err
	}
	if filters := o.Areas.ActiveFilters; len(filters) > 0 {
		labels := make([]string, 0, len(filters))
		for _, f := range filters {
			labels = append(labels, f.Label)
		}
		if _, err := fmt.Fprintf(w, "  Active Filters: %s\n\n", strings.Join(labels, ", ")); err != nil {
			return err
		}
	}
	areas := NewTable(
		Column{Header: "AREA"},
		Column{Header: "CRIMES", Align: AlignRight},
		Column{Header: "RISK", Color: riskColumn()},
		Column{Header: "CHANGE", Align: AlignRight, Color: changeColumn},
		Column{Header: ""},
	)
	for _, b := range o.Areas.Bars {
		name := b.Name
		if b.Selected {
			name = "* " + name
		}
		areas.AddRow(name, thousands(b.CrimeCount), string(b.Risk), b.ChangeLabel, Bar(b.WidthPercent, barCells))
	}
	if err := areas.Render(w); err != nil {
		return err
	}

	if d := o.Areas.Selected; d != nil {
		if _, err := fmt.Fprintf(w, "\n  %s: population %s, %.2f crimes per 1,000, at %.4f, %.4f, trend %s\n",
			d.Name, thousands(d.Population), d.CrimeRatePer1000, d.Latitude, d.Longitude, d.ChangeLabel); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n  Areas shown %d | Total crimes %s | High risk %s | Improving %s\n  Median area %s | Leading type %s\n\n",
		len(o.Areas.Items),
		thousands(o.Areas.TotalCrimeCount),
		ColorTone(style.ToneRed, strconv.Itoa(o.Areas.HighRiskCount)),
		ColorTone(style.ToneGreen, strconv.Itoa(o.Areas.ImprovingCount)),
		thousands(int(o.MedianAreaCrimes)),
		o.LeadingCrimeType,
	)
	return err
}

func changeColumn(v string) string {
	switch {
	case strings.HasPrefix(v, "-"):
		return ColorTone(style.ToneGreen, v)
	case strings.HasPrefix(v, "+"):
		return ColorTone(style.ToneRed, v)
	default:
		return v
	}
}

func writeGeographic(w io.Writer, g dashboard.Geographic) error {
	if err := heading(w, "Area Risk Assessment"); err != nil {
		return err
	}
	t := NewTable(
		Column{Header: "AREA"},
		Column{Header: "CRIMES", Align: AlignRight},
		Column{Header: "RISK", Color: riskColumn()},
		Column{Header: "TREND", Color: func(v string) string { return ColorTone(glyphTone(v), v) }},
		Column{Header: "CHANGE", Align: AlignRight},
	)
	for _, a := range g.Areas {
		t.AddRow(a.Name, thousands(a.CrimeCount), string(a.Risk), a.TrendGlyph, a.ChangeLabel())
	}
	if err := t.Render(w); err != nil {
		return err
	}
	if err := blank(w); err != nil {
		return err
	}

	if err := heading(w, "Crime Hotspots"); err != nil {
		return err
	}
	h := NewTable(
		Column{Header: "LOCATION"},
		Column{Header: "KIND"},
		Column{Header: "INCIDENTS", Align: AlignRight},
		Column{Header: "SHARE", Align: AlignRight},
		Column{Header: "COORDINATES"},
	)
	for _, s := range g.Hotspots {
		h.AddRow(s.Location, s.Kind, strconv.Itoa(s.Incidents), fmt.Sprintf("%.1f%%", s.SharePercent),
			fmt.Sprintf("%.4f, %.4f", s.Latitude, s.Longitude))
	}
	if err := h.Render(w); err != nil {
		return err
	}
	return blank(w)
}

func glyphTone(glyph string) style.Tone {
	switch glyph {
	case "↑":
		return style.TrendTone(dataset.TrendUp)
	case "↓":
		return style.TrendTone(dataset.TrendDown)
	default:
		return style.ToneGray
	}
}

func writeDemographic(w io.Writer, d dashboard.Demographic) error {
	for _, b := range []dashboard.Breakdown{d.Gender, d.Age, d.Education, d.Occupation} {
		if err := heading(w, "Suspects by "+b.Name); err != nil {
			return err
		}
		t := NewTable(
			Column{Header: "CATEGORY"},
			Column{Header: "COUNT", Align: AlignRight},
			Column{Header: "SHARE", Align: AlignRight},
			Column{Header: ""},
		)
		for _, bar := range b.Bars {
			t.AddRow(bar.Label, thousands(bar.Value), fmt.Sprintf("%.1f%%", bar.Percentage), Bar(bar.WidthPercent, barCells))
		}
		if err := t.Render(w); err != nil {
			return err
		}
		if err := blank(w); err != nil {
			return err
		}
	}
	return nil
}

func writeTrends(w io.Writer, tr dashboard.Trends) error {
	for _, s := range []dashboard.Series{tr.Monthly, tr.Seasonal, tr.Hourly, tr.Weekly} {
		if err := heading(w, s.Name); err != nil {
			return err
		}
		t := NewTable(
			Column{Header: "BUCKET"},
			Column{Header: "CRIMES", Align: AlignRight},
			Column{Header: "SHARE", Align: AlignRight},
			Column{Header: "", Color: func(v string) string { return ColorTone(glyphTone(v), v) }},
			Column{Header: ""},
		)
		for _, b := range s.Buckets {
			t.AddRow(b.Label, thousands(b.CrimeCount), fmt.Sprintf("%.1f%%", b.SharePercent), b.TrendGlyph, Bar(b.WidthPercent, barCells))
		}
		if err := t.Render(w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\n  Peak: %s (%.1f%% of %s)\n\n", s.Peak, s.PeakShare, thousands(s.Total)); err != nil {
			return err
		}
	}
	return nil
}

func writeInsights(w io.Writer, in dashboard.Insights) error {
	if err := heading(w, "Key Insights"); err != nil {
		return err
	}
	for _, card := range in.KeyInsights {
		if _, err := fmt.Fprintf(w, "  %s  [%s priority, %s impact]\n",
			card.Category,
			ColorTone(style.InsightTone(card.Priority), card.Priority),
			ColorTone(style.ImpactTone(card.Impact), card.Impact)); err != nil {
			return err
		}
		for _, f := range card.Findings {
			if _, err := fmt.Fprintf(w, "    - %s\n", f); err != nil {
				return err
			}
		}
	}
	if err := blank(w); err != nil {
		return err
	}

	if err := heading(w, "Strategic Recommendations"); err != nil {
		return err
	}
	r := NewTable(
		Column{Header: "RECOMMENDATION"},
		Column{Header: "PRIORITY", Color: toneColumn(style.InsightTone)},
		Column{Header: "RESOURCES"},
		Column{Header: "TIMELINE"},
	)
	for _, rec := range in.Recommendations {
		r.AddRow(rec.Title, rec.Priority, rec.Resources, rec.Timeline)
	}
	if err := r.Render(w); err != nil {
		return err
	}
	if err := blank(w); err != nil {
		return err
	}

	if err := heading(w, "Risk Factors"); err != nil {
		return err
	}
	f := NewTable(
		Column{Header: "FACTOR"},
		Column{Header: "CORRELATION"},
		Column{Header: "IMPACT", Color: toneColumn(style.ImpactTone)},
	)
	for _, rf := range in.RiskFactors {
		f.AddRow(rf.Factor, rf.Correlation, rf.Impact)
	}
	if err := f.Render(w); err != nil {
		return err
	}
	return blank(w)
}

func writeActions(w io.Writer, a dashboard.Actions) error {
	groups := []struct {
		title string
		cards []dashboard.ActionCard
	}{
		{"Immediate Actions (0-30 days)", a.Immediate},
		{"Medium-term Initiatives (1-6 months)", a.MediumTerm},
	}
	for _, g := range groups {
		if err := heading(w, g.title); err != nil {
			return err
		}
		t := NewTable(
			Column{Header: "ACTION"},
			Column{Header: "PRIORITY", Color: toneColumn(func(v string) style.Tone { return style.PriorityTone(dataset.Priority(v)) })},
			Column{Header: "TIMELINE"},
			Column{Header: "COST"},
			Column{Header: "STATUS", Color: toneColumn(style.StatusTone)},
			Column{Header: "PROGRESS", Align: AlignRight},
		)
		for _, c := range g.cards {
			t.AddRow(c.Title, string(c.Priority), c.Timeline, c.Cost, c.Status,
				fmt.Sprintf("%s %3d%%", Bar(float64(c.ProgressPercent), 10), c.ProgressPercent))
		}
		if err := t.Render(w); err != nil {
			return err
		}
		if err := blank(w); err != nil {
			return err
		}
	}

	if err := heading(w, "Long-term Strategies"); err != nil {
		return err
	}
	s := NewTable(Column{Header: "STRATEGY"}, Column{Header: "TIMELINE"}, Column{Header: "INVESTMENT", Align: AlignRight}, Column{Header: "IMPACT"})
	for _, st := range a.Strategies {
		s.AddRow(st.Title, st.Timeline, st.Investment, st.Impact)
	}
	if err := s.Render(w); err != nil {
		return err
	}
	if err := blank(w); err != nil {
		return err
	}

	if err := heading(w, "Budget Allocation"); err != nil {
		return err
	}
	b := NewTable(Column{Header: "CATEGORY"}, Column{Header: "AMOUNT", Align: AlignRight}, Column{Header: "SHARE", Align: AlignRight})
	for _, line := range a.Budget {
		b.AddRow(line.Category, "$"+line.Amount.StringFixed(0), fmt.Sprintf("%.0f%%", line.Percentage))
	}
	b.AddRow("Total", "$"+a.BudgetTotal.StringFixed(0), "")
	if err := b.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n  Average progress across initiatives: %.0f%%\n\n", a.AverageProgress)
	return err
}
