package summary

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcfg "github.com/paperdeck/core/internal/config"
	"github.com/paperdeck/core/internal/modules/normalize"
)

func newTestRouter(stub *stubGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")

	svc := NewService(stub, testAIConfig())
	normalizer := normalize.NewService(appcfg.ArxivConfig{TimeoutSeconds: 1}, nil)
	NewHandler(svc, normalizer).RegisterRoutes(api)
	return r
}

func doPost(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateSummaryRawText(t *testing.T) {
	stub := &stubGenerator{response: `{"summary":"A **bold** claim."}`}
	r := newTestRouter(stub)

	w := doPost(t, r, "/api/v1/summaries", `{"input":"A novel method for X.","level":"beginner"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Level string `json:"level"`
		Text  string `json:"text"`
		HTML  string `json:"html"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "beginner", got.Level)
	assert.Equal(t, "A **bold** claim.", got.Text)
	assert.Contains(t, got.HTML, "<strong>bold</strong>")
}

func TestCreateSummaryDefaultsToIntermediate(t *testing.T) {
	stub := &stubGenerator{response: `{"summary":"ok"}`}
	r := newTestRouter(stub)

	w := doPost(t, r, "/api/v1/summaries", `{"input":"Some abstract."}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"level":"intermediate"`)
}

func TestCreateSummaryValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing input", `{"level":"beginner"}`},
		{"blank input", `{"input":"   "}`},
		{"unknown level", `{"input":"text","level":"phd"}`},
		{"malformed json", `{"input":`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stub := &stubGenerator{response: `{"summary":"ok"}`}
			r := newTestRouter(stub)

			w := doPost(t, r, "/api/v1/summaries", test.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"ok":0`)
			assert.Equal(t, 0, stub.invocations)
		})
	}
}

func TestCreateSummaryBackendFailure(t *testing.T) {
	stub := &stubGenerator{err: assert.AnError}
	r := newTestRouter(stub)

	w := doPost(t, r, "/api/v1/summaries", `{"input":"Some abstract."}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
