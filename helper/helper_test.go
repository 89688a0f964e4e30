package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKebabify(t *testing.T) {
	var tests = []struct {
		in       string
		expected string
	}{
		{"Bench App", "bench-app"},
		{"nginx_benchmark_app", "nginx-benchmark-app"},
		{"already-kebab", "already-kebab"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Kebabify(tt.in))
	}
}

func TestPrettyPrint(t *testing.T) {
	out := PrettyPrint(map[string]string{"region": "fra"})

	assert.Contains(t, out, `"region": "fra"`)
}
