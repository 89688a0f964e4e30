package store

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/nicoche/measurements-koyeb/benchmark"
)

func TestStoreSaveAndList(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewWithFs(fs, "/history")

	first := &benchmark.Result{
		AppName:      "Bench App",
		Region:       "fra",
		StartedAt:    time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
		ReadySeconds: 12.5,
	}
	second := &benchmark.Result{
		AppName:      "Bench App",
		Region:       "fra",
		StartedAt:    time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC),
		ReadySeconds: 9.25,
	}

	id, err := s.Save(first)
	assert.Nil(t, err)
	assert.Equal(t, "20240110T120000Z_bench-app", id)

	_, err = s.Save(second)
	assert.Nil(t, err)

	// no leftover tmp file
	exists, err := afero.Exists(fs, "/history/"+id+".json.tmp")
	assert.Nil(t, err)
	assert.False(t, exists)

	results, err := s.List()
	assert.Nil(t, err)
	assert.Len(t, results, 2)

	// most recent first
	assert.Equal(t, 9.25, results[0].ReadySeconds)
	assert.Equal(t, 12.5, results[1].ReadySeconds)
}

func TestStoreListSkipsGarbage(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewWithFs(fs, "/history")

	_, err := s.Save(&benchmark.Result{
		AppName:   "bench",
		StartedAt: time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
	})
	assert.Nil(t, err)

	assert.Nil(t, afero.WriteFile(fs, "/history/not-json.json", []byte("{"), 0o600))
	assert.Nil(t, afero.WriteFile(fs, "/history/README.md", []byte("notes"), 0o600))

	results, err := s.List()
	assert.Nil(t, err)
	assert.Len(t, results, 1)
}

func TestStoreListMissingDir(t *testing.T) {
	s := NewWithFs(afero.NewMemMapFs(), "/nowhere")

	results, err := s.List()

	assert.NotNil(t, err)
	assert.Nil(t, results)
}
