package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordOutcome(t *testing.T) {
	before := testutil.ToFloat64(PurchaseOrdersTotal.WithLabelValues("success"))
	RecordOutcome("success")
	assert.Equal(t, before+1, testutil.ToFloat64(PurchaseOrdersTotal.WithLabelValues("success")))
}

func TestRecordPlatformRequest_StatusLabel(t *testing.T) {
	start := time.Now()

	before404 := testutil.ToFloat64(PlatformRequestsTotal.WithLabelValues("GET", "job", "404"))
	beforeErr := testutil.ToFloat64(PlatformRequestsTotal.WithLabelValues("GET", "job", "error"))

	RecordPlatformRequest("GET", "job", 404, start)
	RecordPlatformRequest("GET", "job", 0, start)

	assert.Equal(t, before404+1, testutil.ToFloat64(PlatformRequestsTotal.WithLabelValues("GET", "job", "404")))
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(PlatformRequestsTotal.WithLabelValues("GET", "job", "error")))
}
