package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"crimedash/internal/dashboard"
	"crimedash/internal/live"
	"crimedash/internal/style"
	"crimedash/internal/view"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func snapshot() live.Snapshot {
	return live.Snapshot{Metrics: live.Seed(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC))}
}

func TestTableRender(t *testing.T) {
	tbl := NewTable(
		Column{Header: "NAME"},
		Column{Header: "COUNT", Align: AlignRight},
	)
	tbl.AddRow("Saddar", "2,890")
	tbl.AddRow("N.Nazimabad", "98")
	tbl.AddRow("extra", "1", "ignored")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "  NAME         COUNT", lines[0])
	assert.Equal(t, "  -----------  -----", lines[1])
	assert.Equal(t, "  Saddar       2,890", lines[2])
	assert.Equal(t, "  N.Nazimabad     98", lines[3])
}

func TestTableRender_WideGlyphs(t *testing.T) {
	tbl := NewTable(Column{Header: "T"}, Column{Header: "X"})
	tbl.AddRow("↑", "a")
	tbl.AddRow("→", "b")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Contains(t, buf.String(), "  ↑  a\n")
}

func TestBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", Bar(50, 10))
	assert.Equal(t, "██████████", Bar(100, 10))
	assert.Equal(t, "░░░░░░░░░░", Bar(-5, 10))
	assert.Equal(t, "██████████", Bar(250, 10))
}

func TestThousands(t *testing.T) {
	tests := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		24567:    "24,567",
		2500000:  "2,500,000",
		-1234567: "-1,234,567",
	}
	for in, want := range tests {
		assert.Equal(t, want, thousands(in), "thousands(%d)", in)
	}
}

func TestColorToneDisabled(t *testing.T) {
	assert.Equal(t, "High", ColorTone(style.ToneRed, "High"))
	assert.Equal(t, "n/a", ColorTone(style.ToneGray, "n/a"))
}

func TestHeaderCards(t *testing.T) {
	cards := HeaderCards(snapshot())
	require.Len(t, cards, 4)
	assert.Equal(t, "24,567", cards[0].Value)
	assert.Equal(t, "-5.2% from last period", cards[0].Note)
	assert.Equal(t, "7.2/10", cards[3].Value)

	out := RenderCards(cards)
	assert.Contains(t, out, "Areas Monitored")
	assert.Contains(t, out, "╭")
}

func TestWrite_AllTabs(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Options{Selection: view.ResetSelection(), Live: snapshot()})
	require.NoError(t, err)

	out := buf.String()
	for _, want := range []string{
		"Karachi Crime Analytics",
		"Crime Type Distribution",
		"Vehicle Theft",
		"Area Risk Assessment",
		"Saddar Bazaar",
		"Suspects by Occupation",
		"Peak: Friday",
		"Strategic Recommendations",
		"Budget Allocation",
		"$5600000",
	} {
		assert.Contains(t, out, want)
	}
}

func TestWrite_FilteredOverview(t *testing.T) {
	sel := view.ResetSelection()
	sel.RiskFilter = view.RiskHigh
	sel.SelectedArea = view.ToggleSelection(nil, "Lyari")

	var buf bytes.Buffer
	err := Write(&buf, Options{Tabs: []dashboard.Tab{dashboard.TabOverview}, Selection: sel, Live: snapshot()})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Active Filters: Area: Lyari, Risk: High")
	assert.Contains(t, out, "* Lyari")
	assert.Contains(t, out, "Areas shown 5")
	assert.NotContains(t, out, "Defence")
	assert.NotContains(t, out, "Area Risk Assessment")
}

func TestWrite_InvalidSelection(t *testing.T) {
	sel := view.ResetSelection()
	sel.SortKey = "population"

	var buf bytes.Buffer
	err := Write(&buf, Options{Tabs: []dashboard.Tab{dashboard.TabOverview}, Selection: sel, Live: snapshot()})
	assert.ErrorIs(t, err, view.ErrInvalidSelection)
}
