package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveLoad(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveLoad(9, nil)
	m.ObserveLoad(0, errors.New("boom"))

	assert.Equal(t, 9.0, testutil.ToFloat64(m.DatasetRecords), "failed loads keep the last gauge value")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatasetLoads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatasetLoads.WithLabelValues("error")))
}

func TestObserveRequest(t *testing.T) {
	m := New(nil)
	m.ObserveRequest("/api/f1/drivers", "GET", 200, 5*time.Millisecond)
	m.ObserveRequest("/api/f1/drivers", "GET", 200, 5*time.Millisecond)
	m.ObserveRequest("/api/f1/compare", "GET", 400, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/api/f1/drivers", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/api/f1/compare", "GET", "400")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestDuration))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New(nil)
	m.ViewerUploads.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "pitwall_viewer_uploads_total 1")
}

func TestSeparateRegistriesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		New(nil)
		New(nil)
	})
}
