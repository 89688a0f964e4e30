package benchmark

import (
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/ryanuber/columnize"
)

type Operation struct {
	Name      string        `json:"name"`
	Category  string        `json:"category"`
	Duration  time.Duration `json:"duration"`
	Timestamp time.Time     `json:"timestamp"`
}

// TimingTracker accumulates the durations of benchmark phases and
// mirrors each one into a labelled Prometheus gauge.
type TimingTracker struct {
	operations []Operation
	categories map[string][]time.Duration
	gauge      *prometheus.GaugeVec
}

// NewTimingTracker creates a tracker. The gauge may be nil, in which
// case timings are only kept for the recap.
func NewTimingTracker(gauge *prometheus.GaugeVec) *TimingTracker {
	return &TimingTracker{
		categories: map[string][]time.Duration{},
		gauge:      gauge,
	}
}

func (t *TimingTracker) Record(name string, category string, duration time.Duration) {
	t.operations = append(t.operations, Operation{
		Name:      name,
		Category:  category,
		Duration:  duration,
		Timestamp: time.Now(),
	})
	t.categories[category] = append(t.categories[category], duration)

	if t.gauge != nil {
		t.gauge.WithLabelValues(name, category).Set(duration.Seconds())
	}
}

func (t *TimingTracker) Operations() []Operation {
	return t.operations
}

func (t *TimingTracker) Total() time.Duration {
	var total time.Duration
	for _, op := range t.operations {
		total += op.Duration
	}
	return total
}

func (t *TimingTracker) CategoryTotal(category string) time.Duration {
	var total time.Duration
	for _, d := range t.categories[category] {
		total += d
	}
	return total
}

// Recap renders the timing summary table printed at the end of a run.
func (t *TimingTracker) Recap() string {
	if len(t.operations) == 0 {
		return "No operations recorded"
	}

	total := t.Total()

	var output []string
	output = append(output, strings.Join([]string{"OPERATION", "CATEGORY", "DURATION", "SHARE", ""}, "|"))

	for _, op := range t.operations {
		percentage := 0.0
		if total > 0 {
			percentage = op.Duration.Seconds() / total.Seconds() * 100
		}
		// 50 chars = 100%
		bar := strings.Repeat("█", int(percentage/2))

		row := []string{
			op.Name,
			op.Category,
			fmt.Sprintf("%6.2fs", op.Duration.Seconds()),
			fmt.Sprintf("%5.1f%%", percentage),
			bar,
		}
		output = append(output, strings.Join(row, "|"))
	}

	output = append(output, strings.Join([]string{
		"TOTAL", "", fmt.Sprintf("%6.2fs", total.Seconds()), "100.0%", "",
	}, "|"))

	return columnize.SimpleFormat(output)
}
