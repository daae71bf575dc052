package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveHTTPRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("test-service", reg)

	m.ObserveHTTPRequest("test-service", "GET", "/api/v1/bookings", 200, 30*time.Millisecond)
	m.ObserveHTTPRequest("test-service", "GET", "/api/v1/bookings", 200, 50*time.Millisecond)
	m.ObserveHTTPRequest("test-service", "POST", "/api/v1/bookings", 409, 10*time.Millisecond)

	count := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("test-service", "GET", "/api/v1/bookings", "200"))
	assert.Equal(t, float64(2), count)

	count = testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("test-service", "POST", "/api/v1/bookings", "409"))
	assert.Equal(t, float64(1), count)
}

func TestObserveDBQuery_StatusLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("test-service", reg)

	m.ObserveDBQuery("test-service", "SELECT", 5*time.Millisecond, nil)
	m.ObserveDBQuery("test-service", "INSERT", 5*time.Millisecond, errors.New("boom"))

	families, err := reg.Gather()
	require.NoError(t, err)

	var seenOK, seenError bool
	for _, fam := range families {
		if fam.GetName() != "db_query_duration_seconds" {
			continue
		}
		for _, metric := range fam.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "status" && label.GetValue() == "ok" {
					seenOK = true
				}
				if label.GetName() == "status" && label.GetValue() == "error" {
					seenError = true
				}
			}
		}
	}
	assert.True(t, seenOK)
	assert.True(t, seenError)
}

func TestSetDBPoolStats(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("test-service", reg)

	m.SetDBPoolStats("test-service", sql.DBStats{OpenConnections: 7, InUse: 3, Idle: 4})

	assert.Equal(t, float64(7), testutil.ToFloat64(m.dbPoolOpenConnections.WithLabelValues("test-service")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.dbPoolInUseConnections.WithLabelValues("test-service")))
	assert.Equal(t, float64(4), testutil.ToFloat64(m.dbPoolIdleConnections.WithLabelValues("test-service")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("s", "GET", "/", 200, time.Millisecond)
		m.ObserveDBQuery("s", "SELECT", time.Millisecond, nil)
		m.SetDBPoolStats("s", sql.DBStats{})
	})
}
