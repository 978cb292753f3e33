package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/session/state", "200", 0.05)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/session/state", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordBackendRequest(t *testing.T) {
	BackendRequestsTotal.Reset()
	BackendRequestDuration.Reset()

	RecordBackendRequest("membership_session.check_in", "200", 0.1)
	RecordBackendRequest("membership_session.check_in", "200", 0.2)
	RecordBackendRequest("membership_session.check_in", "error", 0.3)

	ok := testutil.ToFloat64(BackendRequestsTotal.WithLabelValues("membership_session.check_in", "200"))
	failed := testutil.ToFloat64(BackendRequestsTotal.WithLabelValues("membership_session.check_in", "error"))

	assert.Equal(t, float64(2), ok)
	assert.Equal(t, float64(1), failed)
}

func TestRecordCheckInAndOut(t *testing.T) {
	CheckInsTotal.Reset()
	CheckOutsTotal.Reset()

	RecordCheckIn("membership", "success")
	RecordCheckIn("membership", "failure")
	RecordCheckOut("facility", "success")

	assert.Equal(t, float64(1), testutil.ToFloat64(CheckInsTotal.WithLabelValues("membership", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(CheckInsTotal.WithLabelValues("membership", "failure")))
	assert.Equal(t, float64(1), testutil.ToFloat64(CheckOutsTotal.WithLabelValues("facility", "success")))
}

func TestRecordVisitCacheCounters(t *testing.T) {
	before := testutil.ToFloat64(VisitCacheFallbacksTotal)
	RecordVisitCacheFallback()
	assert.Equal(t, before+1, testutil.ToFloat64(VisitCacheFallbacksTotal))

	beforeWrites := testutil.ToFloat64(VisitCacheWriteFailuresTotal)
	RecordVisitCacheWriteFailure()
	assert.Equal(t, beforeWrites+1, testutil.ToFloat64(VisitCacheWriteFailuresTotal))
}

func TestRecordCatalogCache(t *testing.T) {
	CatalogCacheHitsTotal.Reset()

	RecordCatalogCache("gyms", "hit")
	RecordCatalogCache("gyms", "miss")
	RecordCatalogCache("gyms", "hit")

	assert.Equal(t, float64(2), testutil.ToFloat64(CatalogCacheHitsTotal.WithLabelValues("gyms", "hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(CatalogCacheHitsTotal.WithLabelValues("gyms", "miss")))
}
