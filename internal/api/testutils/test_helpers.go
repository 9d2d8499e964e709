package testutils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rongwang/seabirds-server/internal/api"
	"github.com/rongwang/seabirds-server/internal/repository"
	"github.com/rongwang/seabirds-server/internal/service"
	"github.com/rongwang/seabirds-server/internal/utils"
)

// TestContext holds all dependencies for tests
type TestContext struct {
	Router     http.Handler
	Repository *repository.MemoryRepository
	Service    service.Service
}

// SetupTestContext creates a new test context backed by the in-memory store
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	repo := repository.NewMemoryRepository()
	svc := service.NewDefaultService(repo)

	return &TestContext{
		Router:     NewTestRouter(svc),
		Repository: repo,
		Service:    svc,
	}
}

// NewTestRouter wires svc into the full middleware chain used by the server
func NewTestRouter(svc service.Service) http.Handler {
	gin.SetMode(gin.TestMode)

	logger := utils.NopLogger()
	handler := api.NewHandler(svc, logger)
	return api.WithCORS(api.NewRouter(handler, logger, ""))
}

// CleanupTestContext cleans up test resources
func CleanupTestContext(t *TestContext) {
	if t.Repository != nil {
		t.Repository.Reset()
	}
}

// PerformRequest executes an HTTP request against the router
func PerformRequest(r http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer

	switch b := body.(type) {
	case nil:
		reqBody = bytes.NewBuffer(nil)
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		jsonBody, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals the recorded response body into dst
func DecodeJSON(w *httptest.ResponseRecorder, dst interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), dst)
}
