// Package export writes the dashboard tables to JSON, YAML or XLSX.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"crimedash/internal/dataset"
)

// ErrUnknownFormat is returned for an export format other than json, yaml or xlsx.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Bundle holds every table of the dashboard.
type Bundle struct {
	Areas              []dataset.AreaRecord        `json:"areas"`
	CityAreas          []dataset.AreaRecord        `json:"cityAreas"`
	CrimeTypes         []dataset.CrimeTypeRecord   `json:"crimeTypes"`
	OverviewKPIs       []dataset.KPI               `json:"overviewKpis"`
	Hotspots           []dataset.Hotspot           `json:"hotspots"`
	Gender             []dataset.DemographicRecord `json:"gender"`
	Age                []dataset.DemographicRecord `json:"age"`
	Education          []dataset.DemographicRecord `json:"education"`
	Occupation         []dataset.DemographicRecord `json:"occupation"`
	Monthly            []dataset.TemporalRecord    `json:"monthly"`
	Seasonal           []dataset.TemporalRecord    `json:"seasonal"`
	Hourly             []dataset.TemporalRecord    `json:"hourly"`
	Weekly             []dataset.TemporalRecord    `json:"weekly"`
	KeyInsights        []dataset.Insight           `json:"keyInsights"`
	Recommendations    []dataset.Recommendation    `json:"recommendations"`
	RiskFactors        []dataset.RiskFactor        `json:"riskFactors"`
	ImmediateActions   []dataset.ActionItem        `json:"immediateActions"`
	MediumTermActions  []dataset.ActionItem        `json:"mediumTermActions"`
	LongTermStrategies []dataset.Strategy          `json:"longTermStrategies"`
	Budget             []dataset.BudgetLine        `json:"budget"`
}

// Collect copies every table into a bundle.
func Collect() Bundle {
	return Bundle{
		Areas:              dataset.Areas(),
		CityAreas:          dataset.CityAreas(),
		CrimeTypes:         dataset.CrimeTypes(),
		OverviewKPIs:       dataset.OverviewKPIs(),
		Hotspots:           dataset.Hotspots(),
		Gender:             dataset.GenderBreakdown(),
		Age:                dataset.AgeBreakdown(),
		Education:          dataset.EducationBreakdown(),
		Occupation:         dataset.OccupationBreakdown(),
		Monthly:            dataset.MonthlyTrend(),
		Seasonal:           dataset.SeasonalTrend(),
		Hourly:             dataset.HourlyPattern(),
		Weekly:             dataset.WeeklyPattern(),
		KeyInsights:        dataset.KeyInsights(),
		Recommendations:    dataset.Recommendations(),
		RiskFactors:        dataset.RiskFactors(),
		ImmediateActions:   dataset.ImmediateActions(),
		MediumTermActions:  dataset.MediumTermActions(),
		LongTermStrategies: dataset.LongTermStrategies(),
		Budget:             dataset.BudgetAllocation(),
	}
}

// Write encodes b to w.
func Write(w io.Writer, b Bundle, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		return writeYAML(w, b)
	case FormatXLSX:
		return writeXLSX(w, b)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteFile creates path and writes b to it, inferring the format from the extension when
// format is empty.
func WriteFile(path string, b Bundle, format Format) (err error) {
	if format == "" {
		if format, err = ParseFormat(filepath.Ext(path)); err != nil {
			return err
		}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, b, format)
}

// writeYAML goes through JSON so the YAML keys match the JSON field names.
func writeYAML(w io.Writer, b Bundle) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
