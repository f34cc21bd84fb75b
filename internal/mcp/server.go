// Package mcp exposes the dashboard computations as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"crimedash/internal/config"
	"crimedash/internal/live"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// Server holds the state shared by the tool handlers.
type Server struct {
	cfg     *config.AppConfig
	live    *live.Updater
	version string
}

// NewServer creates a tool server. The updater backs the live_metrics tool and is owned by the caller.
func NewServer(cfg *config.AppConfig, updater *live.Updater, version string) *Server {
	return &Server{cfg: cfg, live: updater, version: version}
}

// MCP builds the protocol server with every tool registered.
func (s *Server) MCP() *sdk.Server {
	server := sdk.NewServer(&sdk.Implementation{
		Name:    "crimedash",
		Title:   "Karachi Crime Dashboard",
		Version: s.version,
	}, nil)
	s.registerTools(server)
	return server
}

// Run serves the tools on transport until the client disconnects or ctx is cancelled.
func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	log.Info().Str("version", s.version).Msg("MCP server starting")
	return s.MCP().Run(ctx, transport)
}

func textResult(data any) (*sdk.CallToolResult, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("formatting result: %w", err)
	}
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: string(out)}},
	}, nil
}
