package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("GET", "/api/orders", 200, 15*time.Millisecond)
	m.Observe("GET", "/api/orders", 200, 5*time.Millisecond)
	m.Observe("POST", "/api/orders", 400, 2*time.Millisecond)

	count := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/orders", "200"))
	assert.Equal(t, 2.0, count)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 2)
}

func TestObserveNilSafe(t *testing.T) {
	var m *HTTPMetrics
	m.Observe("GET", "/", 200, time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.Observe("", "", 0, 0)
}
