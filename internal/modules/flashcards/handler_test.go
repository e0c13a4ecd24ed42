package flashcards

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

func TestCreateFlashcardsRawText(t *testing.T) {
	stub := &stubGenerator{response: `{"cards":[
		{"question":"What is X?","answer":"A method."},
		{"question":"What is Y?","answer":"A technique."}
	]}`}
	r := newTestRouter(stub)

	w := doPost(t, r, "/api/v1/flashcards", `{"input":"A novel method for X using Y."}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Data []Flashcard `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Data, 2)
	assert.Equal(t, "What is X?", got.Data[0].Question)
	assert.Equal(t, "What is Y?", got.Data[1].Question)
}

func TestCreateFlashcardsValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing input", `{}`},
		{"blank input", `{"input":"  "}`},
		{"malformed json", `{"input"`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stub := &stubGenerator{response: `{"cards":[]}`}
			r := newTestRouter(stub)

			w := doPost(t, r, "/api/v1/flashcards", test.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"ok":0`)
		})
	}
}

func TestCreateFlashcardsUnparsableBackendOutput(t *testing.T) {
	stub := &stubGenerator{response: "no cards here"}
	r := newTestRouter(stub)

	w := doPost(t, r, "/api/v1/flashcards", `{"input":"Some abstract."}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
