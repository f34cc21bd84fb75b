package mcp

import (
	"crimedash/internal/view"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// TabInput selects one dashboard tab.
type TabInput struct {
	Tab       string                 `json:"tab" jsonschema:"tab name: overview, geographic, demographic, trends, insights or actions"`
	Selection *view.SelectionRequest `json:"selection,omitempty" jsonschema:"filters applied to the overview's area bars"`
}

// LiveInput controls the live_metrics tool.
type LiveInput struct {
	Refresh bool `json:"refresh,omitempty" jsonschema:"run a manual refresh before reading; waits for the refresh delay"`
}

// ChartInput names a chart to render.
type ChartInput struct {
	Chart     string                 `json:"chart" jsonschema:"chart name: areas, crime-types, monthly, hourly, weekly or budget"`
	Selection *view.SelectionRequest `json:"selection,omitempty" jsonschema:"filters applied to the areas chart"`
}

// ExportInput selects the serialisation of the dataset dump.
type ExportInput struct {
	Format string `json:"format,omitempty" jsonschema:"json (default) or yaml"`
}

func boolPtr(b bool) *bool { return &b }

func readOnly() *sdk.ToolAnnotations {
	return &sdk.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

func (s *Server) registerTools(server *sdk.Server) {
	sdk.AddTool(server, &sdk.Tool{
		Name: "compute_view",
		Description: "Filter, sort and aggregate the monitored areas. Returns the visible areas, their bar widths and colours, " +
			"the maximum and total crime counts, the high-risk and improving counts and the selected area's details. " +
			"Guidance: an unknown risk, sort or mode value is rejected; thresholds run from 0 to 3000 in steps of 100.",
		Annotations: readOnly(),
	}, s.handleComputeView)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "get_tab",
		Description: "Get the full payload of one dashboard tab (overview, geographic, demographic, trends, insights, actions). Only the overview honours the selection.",
		Annotations: readOnly(),
	}, s.handleGetTab)

	sdk.AddTool(server, &sdk.Tool{
		Name: "live_metrics",
		Description: "Read the simulated live header metrics (total crimes, risk score, trend, last update). " +
			"NOTE: these figures are a synthetic random walk, not real telemetry. Never present them as observed data.",
		Annotations: &sdk.ToolAnnotations{
			ReadOnlyHint:    false,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, s.handleLiveMetrics)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "render_chart",
		Description: "Render a dashboard chart as a Mermaid diagram.",
		Annotations: readOnly(),
	}, s.handleRenderChart)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "export_dataset",
		Description: "Dump every static dashboard table as JSON or YAML.",
		Annotations: readOnly(),
	}, s.handleExportDataset)
}
