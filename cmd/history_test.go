package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nicoche/measurements-koyeb/benchmark"
)

func TestFormatHistory(t *testing.T) {
	results := []*benchmark.Result{
		{
			AppName:           "nginx-benchmark-app",
			Region:            "fra",
			Image:             "nginx:latest",
			StartedAt:         time.Now().Add(-time.Hour),
			CreationSeconds:   0.42,
			AllocatingSeconds: 3.1,
			ReadySeconds:      11.7,
		},
	}

	output := formatHistory(results)

	assert.Contains(t, output, "STARTED")
	assert.Contains(t, output, "nginx-benchmark-app")
	assert.Contains(t, output, "nginx:latest")
	assert.Contains(t, output, "11.70s")
	assert.Contains(t, output, "1 hour ago")
}

func TestFormatHistoryEmpty(t *testing.T) {
	output := formatHistory(nil)

	assert.Contains(t, output, "STARTED")
	assert.Contains(t, output, "READY")
}
