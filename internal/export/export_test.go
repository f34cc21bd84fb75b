package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"json":  FormatJSON,
		".json": FormatJSON,
		"YAML":  FormatYAML,
		".yml":  FormatYAML,
		"xlsx":  FormatXLSX,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("csv")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Collect(), FormatJSON))

	var decoded struct {
		Areas []struct {
			Name       string `json:"name"`
			CrimeCount int    `json:"crimeCount"`
		} `json:"areas"`
		Budget []struct {
			Amount string `json:"amount"`
		} `json:"budget"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Areas, 12)
	assert.Equal(t, "Saddar", decoded.Areas[0].Name)
	assert.Equal(t, 2890, decoded.Areas[0].CrimeCount)
	assert.Equal(t, "2500000", decoded.Budget[0].Amount)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Collect(), FormatYAML))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	areas, ok := doc["areas"].([]any)
	require.True(t, ok, "areas should be a list")
	assert.Len(t, areas, 12)
	first := areas[0].(map[string]any)
	assert.Equal(t, "Saddar", first["name"])
	assert.Contains(t, doc, "immediateActions")
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Collect(), FormatXLSX))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Areas")
	require.NoError(t, err)
	require.Len(t, rows, 13)
	assert.Equal(t, []string{"Area", "Crimes", "Risk", "Change", "Trend", "Population", "Latitude", "Longitude"}, rows[0])
	assert.Equal(t, "Saddar", rows[1][0])
	assert.Equal(t, "+12%", rows[1][3])

	assert.Contains(t, f.GetSheetList(), "Budget")
	assert.Len(t, f.GetSheetList(), 20)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "dashboard.yml")

	require.NoError(t, WriteFile(path, Collect(), ""))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	err = WriteFile(filepath.Join(dir, "dashboard.csv"), Collect(), "")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Write(&buf, Collect(), "csv"), ErrUnknownFormat)
}
