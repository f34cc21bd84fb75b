package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"crimedash/internal/apperror"
	"crimedash/internal/dashboard"
	"crimedash/internal/dataset"
	"crimedash/internal/export"
	"crimedash/internal/view"
	"crimedash/internal/visuals"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/tabs", s.handleTabs)
	mux.HandleFunc("GET /api/tabs/{tab}", s.handleTab)
	mux.HandleFunc("GET /api/view", s.handleView)
	mux.HandleFunc("GET /api/filters", s.handleFilters)
	mux.HandleFunc("GET /api/live", s.handleLive)
	mux.HandleFunc("POST /api/live/auto-refresh", s.handleAutoRefresh)
	mux.HandleFunc("POST /api/live/refresh", s.handleRefresh)
	mux.HandleFunc("GET /api/charts/{chart}", s.handleChart)
	mux.HandleFunc("GET /api/export/{format}", s.handleExport)
	mux.HandleFunc("GET /api/schema/selection", s.handleSelectionSchema)
	mux.HandleFunc("GET /api/openapi", s.handleOpenAPI)
	mux.HandleFunc(apiPrefix, apiFallback(mux))
	mux.HandleFunc("GET /ws", s.handleWS)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.Handle("GET /{$}", s.assets)
	for _, name := range s.assets.names() {
		mux.Handle("GET /"+name, s.assets)
	}

	return mux
}

const apiPrefix = "/api/"

// routeMethods are the methods the API registers routes under.
var routeMethods = []string{http.MethodGet, http.MethodPost}

// apiFallback answers API requests no route took: 405 with Allow when the path exists under
// another method, 404 otherwise. Both use the JSON error envelope.
func apiFallback(mux *http.ServeMux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allow []string
		for _, method := range routeMethods {
			if method == r.Method {
				continue
			}
			other := r.Clone(r.Context())
			other.Method = method
			if _, pattern := mux.Handler(other); pattern != "" && pattern != apiPrefix {
				allow = append(allow, method)
			}
		}

		if len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
			writeError(w, r, apperror.New(apperror.CodeMethodNotAllowed,
				fmt.Sprintf("%s is not allowed on %s", r.Method, r.URL.Path), http.StatusMethodNotAllowed))
			return
		}
		writeError(w, r, apperror.New(apperror.CodeNotFound, "no API route for "+r.URL.Path, http.StatusNotFound))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTabs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tabs": dashboard.Tabs()})
}

func (s *Server) handleTab(w http.ResponseWriter, r *http.Request) {
	tab, err := dashboard.ParseTab(r.PathValue("tab"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	sel, err := view.SelectionFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	payload, err := dashboard.Build(tab, sel)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if tab == dashboard.TabOverview {
		viewComputations.WithLabelValues(string(sel.SortKey)).Inc()
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	sel, err := view.SelectionFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := view.ComputeView(dataset.Areas(), sel)
	if err != nil {
		writeError(w, r, err)
		return
	}
	viewComputations.WithLabelValues(string(sel.SortKey)).Inc()
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	sel, err := view.SelectionFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"selection": sel,
		"filters":   view.ActiveFilters(sel),
	})
}

func (s *Server) handleLive(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.live.Snapshot())
}

func (s *Server) handleAutoRefresh(w http.ResponseWriter, r *http.Request) {
	enabled, err := strconv.ParseBool(r.URL.Query().Get("enabled"))
	if err != nil {
		writeError(w, r, apperror.New(apperror.CodeBadRequest, "enabled must be true or false", http.StatusBadRequest).WithCause(err))
		return
	}
	if err := s.live.SetAutoRefresh(enabled); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.live.Snapshot())
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.live.Refresh(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.live.Snapshot())
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if !s.cfg.EnableMermaidCharts {
		writeError(w, r, apperror.New(apperror.CodeUnknownChart, "charts are disabled", http.StatusNotFound))
		return
	}
	sel, err := view.SelectionFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	chart, err := visuals.Render(r.PathValue("chart"), sel)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(chart))
}

var exportContentTypes = map[export.Format]string{
	export.FormatJSON: "application/json",
	export.FormatYAML: "application/yaml",
	export.FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.PathValue("format"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", exportContentTypes[format])
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="karachi-crime.%s"`, format))
	if err := export.Write(w, export.Collect(), format); err != nil {
		// Headers are gone once the body has started; log only.
		logRequest(r).Error().Err(err).Str("format", string(format)).Msg("Export failed")
	}
}

func (s *Server) handleSelectionSchema(w http.ResponseWriter, r *http.Request) {
	schema, err := jsonschema.For[view.SelectionRequest](nil)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schema)
}
