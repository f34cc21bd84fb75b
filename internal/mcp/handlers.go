package mcp

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"crimedash/internal/apperror"
	"crimedash/internal/dashboard"
	"crimedash/internal/dataset"
	"crimedash/internal/export"
	"crimedash/internal/view"
	"crimedash/internal/visuals"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

var errChartsDisabled = errors.New("mermaid charts are disabled (ENABLE_MERMAID_CHARTS=false)")

func selectionFrom(req *view.SelectionRequest) (view.Selection, error) {
	sel := view.ResetSelection()
	if req == nil {
		return sel, nil
	}
	if err := req.Validate(); err != nil {
		return sel, err
	}
	return req.Apply(sel), nil
}

// toolError turns a domain error into the message the client sees.
func toolError(err error) error {
	appErr := apperror.From(err)
	return fmt.Errorf("%s: %s", appErr.Code, appErr.Message)
}

func (s *Server) handleComputeView(_ context.Context, _ *sdk.CallToolRequest, input view.SelectionRequest) (*sdk.CallToolResult, any, error) {
	sel, err := selectionFrom(&input)
	if err != nil {
		return nil, nil, toolError(err)
	}
	res, err := view.ComputeView(dataset.Areas(), sel)
	if err != nil {
		return nil, nil, toolError(err)
	}
	log.Debug().Int("items", len(res.Items)).Int("total", res.TotalCrimeCount).Msg("compute_view")

	out, err := textResult(res)
	return out, nil, err
}

func (s *Server) handleGetTab(_ context.Context, _ *sdk.CallToolRequest, input TabInput) (*sdk.CallToolResult, any, error) {
	tab, err := dashboard.ParseTab(input.Tab)
	if err != nil {
		return nil, nil, toolError(err)
	}
	sel, err := selectionFrom(input.Selection)
	if err != nil {
		return nil, nil, toolError(err)
	}
	payload, err := dashboard.Build(tab, sel)
	if err != nil {
		return nil, nil, toolError(err)
	}

	out, err := textResult(payload)
	return out, nil, err
}

func (s *Server) handleLiveMetrics(ctx context.Context, _ *sdk.CallToolRequest, input LiveInput) (*sdk.CallToolResult, any, error) {
	if input.Refresh {
		if err := s.live.Refresh(ctx); err != nil {
			return nil, nil, toolError(err)
		}
	}

	out, err := textResult(s.live.Snapshot())
	return out, nil, err
}

func (s *Server) handleRenderChart(_ context.Context, _ *sdk.CallToolRequest, input ChartInput) (*sdk.CallToolResult, any, error) {
	if s.cfg != nil && !s.cfg.EnableMermaidCharts {
		return nil, nil, errChartsDisabled
	}
	sel, err := selectionFrom(input.Selection)
	if err != nil {
		return nil, nil, toolError(err)
	}
	chart, err := visuals.Render(input.Chart, sel)
	if err != nil {
		return nil, nil, toolError(err)
	}

	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: chart}},
	}, nil, nil
}

func (s *Server) handleExportDataset(_ context.Context, _ *sdk.CallToolRequest, input ExportInput) (*sdk.CallToolResult, any, error) {
	format := export.FormatJSON
	if input.Format != "" {
		f, err := export.ParseFormat(input.Format)
		if err != nil {
			return nil, nil, toolError(err)
		}
		format = f
	}
	if format == export.FormatXLSX {
		return nil, nil, toolError(fmt.Errorf("%w: xlsx is binary, use the export command", export.ErrUnknownFormat))
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, export.Collect(), format); err != nil {
		return nil, nil, toolError(err)
	}
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: buf.String()}},
	}, nil, nil
}
