// Package metrics holds the Prometheus instruments the benchmark
// publishes and the /metrics listener the container exposes on :7777.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultListenAddr matches the port the container image exposes.
const DefaultListenAddr = ":7777"

var (
	// TimeToReady is the headline measurement: seconds between the
	// create-service API call returning and the app's public URL
	// answering HTTP 200.
	TimeToReady = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "time_to_publicly_ready",
		Help: "Time in seconds for a Koyeb deployment to become publicly accessible (HTTP 200)",
	})

	// OperationDuration tracks the duration of the last run of each
	// benchmark phase, so per-phase regressions show up in Grafana.
	OperationDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sandbox_operation_duration_seconds",
		Help: "Duration of benchmark operations in seconds",
	}, []string{"operation", "category"})

	// Cycles counts completed benchmark cycles by outcome.
	Cycles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "benchmark_cycles_total",
		Help: "Number of benchmark cycles, by outcome",
	}, []string{"status"})
)

// Serve exposes the default registry on /metrics. It blocks, so callers
// usually run it in a goroutine; a bind failure is returned immediately.
func Serve(addr string) error {
	if addr == "" {
		addr = DefaultListenAddr
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return http.ListenAndServe(addr, mux)
}
