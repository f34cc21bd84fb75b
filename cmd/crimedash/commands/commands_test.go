package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI in an isolated data directory and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DATA_PATH", dir)
	t.Setenv("LOGS_FOLDER", filepath.Join(dir, "logs"))

	prevLogger := log.Logger
	prevNoColor := color.NoColor
	t.Cleanup(func() {
		log.Logger = prevLogger
		color.NoColor = prevNoColor
	})

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "crimedash dev")
}

func TestReportCommand(t *testing.T) {
	out, err := run(t, "report", "--no-color", "--tab", "overview", "--risk", "High", "--area", "Saddar")
	require.NoError(t, err)
	assert.Contains(t, out, "Crime by Area")
	assert.Contains(t, out, "Risk: High")
	assert.Contains(t, out, "* Saddar")
	assert.NotContains(t, out, "Defence")
	assert.NotContains(t, out, "Budget Allocation")
}

func TestReportCommand_Rejects(t *testing.T) {
	_, err := run(t, "report", "--sort", "population")
	assert.Error(t, err)

	_, err = run(t, "report", "--threshold", "150")
	assert.Error(t, err)

	_, err = run(t, "report", "--tab", "settings")
	assert.Error(t, err)
}

func TestChartCommand(t *testing.T) {
	out, err := run(t, "chart", "areas", "--risk", "High", "--sort", "name")
	require.NoError(t, err)
	assert.Contains(t, out, "xychart-beta")
	assert.Contains(t, out, `x-axis ["Clifton", "Korangi", "Lyari", "Orangi", "Saddar"]`)

	_, err = run(t, "chart", "radar")
	assert.Error(t, err)
}

func TestChartCommand_Disabled(t *testing.T) {
	t.Setenv("ENABLE_MERMAID_CHARTS", "false")
	_, err := run(t, "chart", "budget")
	assert.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	out, err := run(t, "export", "--format", "yaml", "--stdout")
	require.NoError(t, err)
	assert.Contains(t, out, "areas:")

	out, err = run(t, "export", "--format", "json")
	require.NoError(t, err)
	path := filepath.Clean(string(bytes.TrimSpace([]byte(out))))
	assert.Equal(t, "karachi-crime.json", filepath.Base(path))
	assert.Equal(t, "exports", filepath.Base(filepath.Dir(path)))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	_, err = run(t, "export", "data.csv")
	assert.Error(t, err)
}

func TestSelectionFlagsRegistered(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"report", "chart"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)

		var got []string
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			got = append(got, f.Name)
		})
		for _, want := range []string{"risk", "threshold", "sort", "area", "crime-type", "mode"} {
			assert.Contains(t, got, want, "%s is missing --%s", name, want)
		}
	}
}

func TestThresholdOnlyAppliedWhenSet(t *testing.T) {
	var f selectionFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.register(fs)

	sel, err := f.selection(fs)
	require.NoError(t, err)
	assert.Equal(t, 0, sel.CrimeThreshold)

	require.NoError(t, fs.Parse([]string{"--threshold", "2000", "--risk", "High"}))
	sel, err = f.selection(fs)
	require.NoError(t, err)
	assert.Equal(t, 2000, sel.CrimeThreshold)
	assert.Equal(t, "High", string(sel.RiskFilter))

	require.NoError(t, fs.Parse([]string{"--threshold", "250"}))
	_, err = f.selection(fs)
	assert.Error(t, err)
}
