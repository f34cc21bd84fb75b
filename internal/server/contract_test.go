package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contract checks requests and recorded responses against the embedded API description.
type contract struct {
	doc    *openapi3.T
	router routers.Router
}

func newContract(t *testing.T) *contract {
	t.Helper()
	doc, err := loadAPIDoc()
	require.NoError(t, err)
	router, err := gorillamux.NewRouter(doc)
	require.NoError(t, err)
	return &contract{doc: doc, router: router}
}

func (c *contract) requestInput(t *testing.T, req *http.Request) *openapi3filter.RequestValidationInput {
	t.Helper()
	route, pathParams, err := c.router.FindRoute(req)
	require.NoError(t, err, "no documented route for %s %s", req.Method, req.URL.Path)
	return &openapi3filter.RequestValidationInput{
		Request:    req,
		PathParams: pathParams,
		Route:      route,
	}
}

func (c *contract) validateRequest(t *testing.T, req *http.Request) error {
	t.Helper()
	return openapi3filter.ValidateRequest(context.Background(), c.requestInput(t, req))
}

func (c *contract) validateResponse(t *testing.T, req *http.Request, rec *httptest.ResponseRecorder) error {
	t.Helper()
	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: c.requestInput(t, req),
		Status:                 rec.Code,
		Header:                 rec.Header(),
	}
	input.SetBodyBytes(rec.Body.Bytes())
	return openapi3filter.ValidateResponse(context.Background(), input)
}

func TestAPIDocLoads(t *testing.T) {
	doc, err := loadAPIDoc()
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	for _, path := range []string{"/api/view", "/api/live", "/api/tabs/{tab}", "/api/export/{format}"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestHandlersHonourContract(t *testing.T) {
	s, err := New(testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	c := newContract(t)

	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"Health", http.MethodGet, "/healthz", http.StatusOK},
		{"Tabs", http.MethodGet, "/api/tabs", http.StatusOK},
		{"Tab", http.MethodGet, "/api/tabs/geographic?risk=High", http.StatusOK},
		{"UnknownTab", http.MethodGet, "/api/tabs/settings", http.StatusNotFound},
		{"DefaultView", http.MethodGet, "/api/view", http.StatusOK},
		{"FilteredView", http.MethodGet, "/api/view?risk=High&threshold=2000&sort=name", http.StatusOK},
		{"SelectedArea", http.MethodGet, "/api/view?area=Saddar&mode=grid&animation=false", http.StatusOK},
		{"EmptyView", http.MethodGet, "/api/view?risk=Low&threshold=3000", http.StatusOK},
		{"Filters", http.MethodGet, "/api/filters?risk=Medium&crimeType=Burglary", http.StatusOK},
		{"NoFilters", http.MethodGet, "/api/filters", http.StatusOK},
		{"Live", http.MethodGet, "/api/live", http.StatusOK},
		{"AutoRefreshOff", http.MethodPost, "/api/live/auto-refresh?enabled=false", http.StatusOK},
		{"Export", http.MethodGet, "/api/export/json", http.StatusOK},
		{"Schema", http.MethodGet, "/api/schema/selection", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			require.NoError(t, c.validateRequest(t, req))

			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			assert.NoError(t, c.validateResponse(t, req, rec))
		})
	}
}

func TestContractRejectsWhatHandlersReject(t *testing.T) {
	s, err := New(testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	c := newContract(t)

	for _, target := range []string{
		"/api/view?risk=Extreme",
		"/api/view?threshold=150",
		"/api/view?threshold=5000",
		"/api/view?sort=population",
		"/api/view?mode=table",
	} {
		t.Run(target, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, target, nil)
			assert.Error(t, c.validateRequest(t, req))

			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NoError(t, c.validateResponse(t, req, rec))
		})
	}
}

func TestOpenAPIEndpoint(t *testing.T) {
	ts := newTestServer(t, testConfig())

	resp, body := doRequest(t, http.MethodGet, ts.URL+"/api/openapi")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/yaml", resp.Header.Get("Content-Type"))
	assert.Equal(t, openAPISpec, body)

	resp, body = doRequest(t, http.MethodGet, ts.URL+"/api/openapi?format=json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"openapi":"3.0.3"`)
}
