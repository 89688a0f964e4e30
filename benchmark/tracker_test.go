package benchmark

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTimingTrackerTotals(t *testing.T) {
	tracker := NewTimingTracker(nil)

	tracker.Record("service creation", "setup", 2*time.Second)
	tracker.Record("instance allocation", "setup", 3*time.Second)
	tracker.Record("public readiness", "monitoring", 5*time.Second)

	assert.Equal(t, 10*time.Second, tracker.Total())
	assert.Equal(t, 5*time.Second, tracker.CategoryTotal("setup"))
	assert.Equal(t, 5*time.Second, tracker.CategoryTotal("monitoring"))
	assert.Equal(t, time.Duration(0), tracker.CategoryTotal("cleanup"))
	assert.Len(t, tracker.Operations(), 3)
}

func TestTimingTrackerSetsGauge(t *testing.T) {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "test_operation_duration_seconds",
		Help: "test",
	}, []string{"operation", "category"})

	tracker := NewTimingTracker(gauge)
	tracker.Record("service creation", "setup", 1500*time.Millisecond)

	value := testutil.ToFloat64(gauge.WithLabelValues("service creation", "setup"))
	assert.Equal(t, 1.5, value)
}

func TestTimingTrackerRecap(t *testing.T) {
	tracker := NewTimingTracker(nil)

	assert.Equal(t, "No operations recorded", tracker.Recap())

	tracker.Record("service creation", "setup", 1*time.Second)
	tracker.Record("public readiness", "monitoring", 3*time.Second)

	recap := tracker.Recap()

	assert.Contains(t, recap, "service creation")
	assert.Contains(t, recap, "public readiness")
	assert.Contains(t, recap, "TOTAL")
	assert.Contains(t, recap, "100.0%")
	assert.Contains(t, recap, "25.0%")
	assert.Contains(t, recap, "75.0%")
}
