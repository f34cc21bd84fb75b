package report

import (
	"fmt"
	"strconv"

	"crimedash/internal/live"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}).
			Width(20).
			Padding(0, 1).
			Align(lipgloss.Center)
	cardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"})
	cardValueStyle = lipgloss.NewStyle().Bold(true)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1E3A8A", Dark: "#93C5FD"})
)

// Card is one headline figure of the header row.
type Card struct {
	Label string
	Value string
	Note  string
}

// HeaderCards turns a live snapshot into the header's card row.
func HeaderCards(s live.Snapshot) []Card {
	return []Card{
		{Label: "Total Crime Incidents", Value: thousands(s.TotalCrimes), Note: fmt.Sprintf("%+.1f%% from last period", s.TrendPercent)},
		{Label: "Areas Monitored", Value: strconv.Itoa(s.AreasMonitored), Note: "Complete coverage"},
		{Label: "Crime Types", Value: strconv.Itoa(s.CrimeTypesTracked), Note: "Categorized & tracked"},
		{Label: "Risk Score", Value: fmt.Sprintf("%.1f/10", s.RiskScore), Note: "High priority areas"},
	}
}

// RenderCards lays the cards out side by side.
func RenderCards(cards []Card) string {
	panels := make([]string, 0, len(cards))
	for _, c := range cards {
		body := lipgloss.JoinVertical(lipgloss.Center,
			cardLabelStyle.Render(c.Label),
			cardValueStyle.Render(c.Value),
			cardLabelStyle.Render(c.Note),
		)
		panels = append(panels, cardStyle.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

// RenderTitle renders the dashboard banner.
func RenderTitle(s live.Snapshot) string {
	mode := "Manual"
	if s.AutoRefresh {
		mode = "Live"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Karachi Crime Analytics"),
		cardLabelStyle.Render(fmt.Sprintf("Executive Dashboard - Strategic Crime Intelligence | %s | Last updated %s",
			mode, s.LastUpdated.Format("2006-01-02 15:04:05"))),
	)
}

func thousands(n int) string {
	return humanize.Comma(int64(n))
}
