package metrics_server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/metrics/prometheus"
)

func TestMetricsServer_ExposesRegistry(t *testing.T) {
	prometheus.NewPrometheusMetricsProvider().SetServiceHealth(true)
	s := NewMetricsServer("127.0.0.1", 0, logger.New("test"))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "service_health 1")
}
