package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/paperdeck/core/internal/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.AppConfig{
		Port: 2333,
		Env:  "development",
		RateLimit: config.RateLimitConfig{
			Max:           100,
			WindowSeconds: 1,
		},
		Arxiv: config.ArxivConfig{
			Endpoint:       "https://export.arxiv.org/api/query",
			TimeoutSeconds: 1,
		},
		AI: config.AIConfig{
			RequestTimeoutSeconds: 1,
			MaxInputRunes:         6000,
			MaxCards:              5,
		},
	}

	application, err := New(zap.NewNop(), cfg)
	require.NoError(t, err)
	return application
}

func doGet(app *App, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	w := doGet(app, "/api/v1/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"paperdeck-core"`)
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)

	w := doGet(app, "/api/v1/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":0`)
}

func TestMethodNotAllowed(t *testing.T) {
	app := newTestApp(t)

	w := doGet(app, "/api/v1/summaries")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestModelsEndpointEmptyProviders(t *testing.T) {
	app := newTestApp(t)

	w := doGet(app, "/api/v1/ai/models")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
}

func TestEmbeddedUIServed(t *testing.T) {
	app := newTestApp(t)

	w := doGet(app, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "PaperDeck")
}

func TestAllowOrigin(t *testing.T) {
	tests := []struct {
		patterns []string
		origin   string
		want     bool
	}{
		{[]string{"paperdeck.example.com"}, "https://paperdeck.example.com", true},
		{[]string{"*.example.com"}, "https://app.example.com", true},
		{[]string{"*.example.com"}, "https://example.org", false},
		{[]string{"localhost:*"}, "http://localhost:3000", true},
		{[]string{"localhost:*"}, "http://example.com:3000", false},
		{[]string{"a.example.com", "b.example.com"}, "https://b.example.com", true},
		{nil, "https://anywhere.example.com", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, allowOrigin(test.patterns, test.origin),
			"patterns %v origin %q", test.patterns, test.origin)
	}
}
