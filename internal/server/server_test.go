package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexiusacademia/goifd/internal/config"
	"github.com/alexiusacademia/goifd/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg config.Server) *httptest.Server {
	t.Helper()
	s := New(cfg, log.New(io.Discard, "", 0))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func generous() config.Server {
	cfg := config.Default()
	cfg.Rate = 1000
	cfg.Burst = 1000
	return cfg
}

func getJSON(t *testing.T, url string, v interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, generous())

	var body map[string]string
	resp := getJSON(t, ts.URL+"/api/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestDiagramQuery(t *testing.T) {
	ts := newTestServer(t, generous())

	var d frame.Diagram
	resp := getJSON(t, ts.URL+"/api/diagram?l1=204&angle=65&l3=234&samples=20", &d)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 20, d.Samples)
	assert.Len(t, d.Positions, 80)
	assert.Len(t, d.Moment, 80)
	assert.InDelta(t, 132.41, d.L2, 0.01)
	require.Len(t, d.Boundaries, 4)
	assert.Equal(t, "AD", d.Boundaries[0].Name)
	assert.InDelta(t, 21.42, d.Moment[19], 1e-6)
}

func TestDiagramDefaults(t *testing.T) {
	ts := newTestServer(t, generous())

	var d frame.Diagram
	resp := getJSON(t, ts.URL+"/api/diagram", &d)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, frame.DefaultGeometry(), d.Geometry)
	assert.Len(t, d.Positions, 400)
}

func TestDiagramPost(t *testing.T) {
	ts := newTestServer(t, generous())

	resp, err := http.Post(ts.URL+"/api/diagram", "application/json",
		strings.NewReader(`{"l1": 150, "angle": 45, "l3": 200, "samples": 10}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var d frame.Diagram
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
	assert.Equal(t, frame.NewGeometry(150, 45, 200), d.Geometry)
	assert.Len(t, d.Shear, 40)
}

func TestDiagramErrors(t *testing.T) {
	ts := newTestServer(t, generous())

	tests := []struct {
		name   string
		query  string
		status int
		kind   string
	}{
		{"zero angle", "angle=0", http.StatusUnprocessableEntity, "domain"},
		{"right angle", "angle=90", http.StatusUnprocessableEntity, "domain"},
		{"L3 at BC length", "l3=175", http.StatusUnprocessableEntity, "constraint"},
		{"span exceeded", "l1=300&l3=300", http.StatusUnprocessableEntity, "constraint"},
		{"not a number", "l1=abc", http.StatusBadRequest, "request"},
		{"too many samples", "samples=100000", http.StatusBadRequest, "request"},
		{"one sample", "samples=1", http.StatusBadRequest, "request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body errorBody
			resp := getJSON(t, ts.URL+"/api/diagram?"+tt.query, &body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.kind, body.Kind)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestDiagramPostInvalidBody(t *testing.T) {
	ts := newTestServer(t, generous())

	resp, err := http.Post(ts.URL+"/api/diagram", "application/json", strings.NewReader(`{"l1":`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLimits(t *testing.T) {
	ts := newTestServer(t, generous())

	var l frame.Limits
	resp := getJSON(t, ts.URL+"/api/limits?angle=65", &l)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.InDelta(t, 444.04, l.L1L3Max, 0.01)
	assert.InDelta(t, 269.04, l.L1Max, 0.01)

	var body errorBody
	resp = getJSON(t, ts.URL+"/api/limits?angle=0", &body)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "domain", body.Kind)
}

func TestImage(t *testing.T) {
	ts := newTestServer(t, generous())

	resp, err := http.Get(ts.URL + "/api/diagram.png?samples=10")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("\x89PNG")))
}

func TestTable(t *testing.T) {
	ts := newTestServer(t, generous())

	resp, err := http.Get(ts.URL + "/api/diagram.csv?samples=5")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 21, strings.Count(string(body), "\n"))
}

func TestNotFound(t *testing.T) {
	ts := newTestServer(t, generous())

	var body errorBody
	resp := getJSON(t, ts.URL+"/nothing", &body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPreflight(t *testing.T) {
	ts := newTestServer(t, generous())

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/diagram", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRateLimit(t *testing.T) {
	cfg := config.Default()
	cfg.Rate = 0.001
	cfg.Burst = 2
	ts := newTestServer(t, cfg)

	for i := 0; i < 2; i++ {
		resp := getJSON(t, ts.URL+"/api/health", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var body errorBody
	resp := getJSON(t, ts.URL+"/api/health", &body)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "rate", body.Kind)
}

func TestClientIP(t *testing.T) {
	assert.Equal(t, "10.0.0.1", clientIP("10.0.0.1:5123"))
	assert.Equal(t, "::1", clientIP("[::1]:80"))
	assert.Equal(t, "pipe", clientIP("pipe"))
}
