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
	before := testutil.ToFloat64(applications.WithLabelValues(EventSubmitted))
	RecordApplication(EventSubmitted)
	assert.Equal(t, before+1, testutil.ToFloat64(applications.WithLabelValues(EventSubmitted)))

	beforeInc := testutil.ToFloat64(inconsistencies)
	RecordInconsistency()
	assert.Equal(t, beforeInc+1, testutil.ToFloat64(inconsistencies))

	beforeGw := testutil.ToFloat64(gatewayErrors.WithLabelValues("send"))
	RecordGatewayError("send")
	assert.Equal(t, beforeGw+1, testutil.ToFloat64(gatewayErrors.WithLabelValues("send")))

	beforeUpd := testutil.ToFloat64(updates.WithLabelValues("callback", OutcomeOK))
	RecordUpdate("callback", OutcomeOK, 3*time.Millisecond)
	assert.Equal(t, beforeUpd+1, testutil.ToFloat64(updates.WithLabelValues("callback", OutcomeOK)))
}

func TestSessionsGauge(t *testing.T) {
	t.Cleanup(func() { TrackSessions(func() int { return 0 }) })

	TrackSessions(func() int { return 7 })
	assert.Equal(t, 7.0, testutil.ToFloat64(sessions))
}

func TestHandler(t *testing.T) {
	RecordApplication(EventApproved)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `teamfinder_applications_events_total{event="approved"}`)
}
