package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ressKim-io/phishguard/internal/adapter/client"
	"github.com/ressKim-io/phishguard/internal/domain/entity"
	"github.com/ressKim-io/phishguard/internal/infrastructure/metrics"
	"github.com/ressKim-io/phishguard/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Settled bool             `json:"settled"`
		State   entity.FormState `json:"state"`
	} `json:"data"`
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prediction_text":"Phishing Website Detected","extra_reasons":["IP address in URL"]}`))
	}))
	t.Cleanup(backend.Close)

	reg := prometheus.NewRegistry()
	predictClient := client.NewPredictClient(backend.URL, 5*time.Second, zap.NewNop())
	uc, err := usecase.NewSubmissionUsecase(
		client.NewPhishingClassifier(predictClient),
		usecase.SubmissionOptions{DetailsToggle: true, StalePolicy: usecase.StalePolicyLastWriterWins},
		zap.NewNop(),
		metrics.New(reg),
	)
	require.NoError(t, err)

	return Setup(uc, backend.URL, reg, zap.NewNop())
}

func TestSetup_HealthAndMetrics(t *testing.T) {
	router := setupTestRouter(t)

	for _, path := range []string{"/health", "/ready"} {
		req, _ := http.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	req, _ := http.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "phishguard_classifier_requests_in_flight")
}

func TestSetup_SubmitAndRender(t *testing.T) {
	router := setupTestRouter(t)

	req, _ := http.NewRequest("POST", "/api/v1/submissions?wait=true", bytes.NewBufferString(`{"url":"http://192.0.2.1/login"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var response apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Data.Settled)
	assert.Equal(t, entity.CategoryDanger, response.Data.State.Result.Category)
	assert.Equal(t, []string{"• IP address in URL"}, response.Data.State.ExtraReasons.Items)

	req, _ = http.NewRequest("GET", "/", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Phishing Website Detected")
	assert.Contains(t, w.Body.String(), "http://192.0.2.1/login")
}

func TestSetup_FormFlow(t *testing.T) {
	router := setupTestRouter(t)

	req, _ := http.NewRequest("POST", "/submit", strings.NewReader("url="))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	req, _ = http.NewRequest("GET", "/", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), entity.AlertEmptyURL)

	req, _ = http.NewRequest("POST", "/alert/dismiss", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	req, _ = http.NewRequest("GET", "/api/v1/state", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Empty(t, response.Data.State.Alert)
}

func TestSetup_UnknownRoute(t *testing.T) {
	router := setupTestRouter(t)

	req, _ := http.NewRequest("GET", "/api/v1/unknown", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
