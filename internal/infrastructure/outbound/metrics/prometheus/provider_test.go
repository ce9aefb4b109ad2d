package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetricsProvider(t *testing.T) {
	p := NewPrometheusMetricsProvider()

	t.Run("ServiceHealth", func(t *testing.T) {
		p.SetServiceHealth(true)
		assert.Equal(t, float64(1), testutil.ToFloat64(ServiceHealth))

		p.SetServiceHealth(false)
		assert.Equal(t, float64(0), testutil.ToFloat64(ServiceHealth))
	})

	t.Run("PostOperations", func(t *testing.T) {
		before := testutil.ToFloat64(PostOperationsTotal.WithLabelValues("get_post", "true"))
		p.IncrementPostOperations("get_post", true)
		assert.Equal(t, before+1, testutil.ToFloat64(PostOperationsTotal.WithLabelValues("get_post", "true")))
	})

	t.Run("HTTPRequests", func(t *testing.T) {
		before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/detail/:pk", "404"))
		p.IncrementHTTPRequests("POST", "/detail/:pk", "404")
		p.RecordHTTPRequestDuration("POST", "/detail/:pk", "404", 5*time.Millisecond)
		assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/detail/:pk", "404")))
	})

	t.Run("DatabaseQueries", func(t *testing.T) {
		before := testutil.ToFloat64(DatabaseQueriesTotal.WithLabelValues("post_list", "false"))
		p.IncrementDatabaseQueries("post_list", false)
		p.RecordDatabaseQueryDuration("post_list", time.Millisecond)
		assert.Equal(t, before+1, testutil.ToFloat64(DatabaseQueriesTotal.WithLabelValues("post_list", "false")))
	})
}
