package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.AddDoctorsCreated(3)
	m.AddDoctorsCreated(1)
	m.IncrementValidationFailure("bulk_create")
	m.ObserveRequest(http.MethodGet, "/api/v1/doctors", http.StatusOK, time.Now())
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Now())

	assert.Equal(t, 4.0, testutil.ToFloat64(m.DoctorsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("bulk_create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/v1/doctors", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestInstancesDoNotShareRegistries(t *testing.T) {
	first := New()
	second := New()

	first.AddDoctorsCreated(2)

	assert.Equal(t, 0.0, testutil.ToFloat64(second.DoctorsCreated))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveDoctorList(time.Now(), 7)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "doctors_list_results_count 1")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
