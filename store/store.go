// Package store persists benchmark results as JSON files so past runs
// survive exporter restarts and can be listed from the CLI.
package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/nicoche/measurements-koyeb/benchmark"
	"github.com/nicoche/measurements-koyeb/helper"
)

type Store struct {
	fs  afero.Fs
	dir string
	now func() time.Time
}

func New(dir string) *Store {
	return NewWithFs(afero.NewOsFs(), dir)
}

// NewWithFs is the constructor tests use with an in-memory fs.
func NewWithFs(fs afero.Fs, dir string) *Store {
	return &Store{
		fs:  fs,
		dir: dir,
		now: time.Now,
	}
}

// Save writes the result as <timestamp>_<app>.json and returns the
// result id (the filename without extension).
func (s *Store) Save(result *benchmark.Result) (string, error) {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating history directory %s: %w", s.dir, err)
	}

	ts := result.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	slug := helper.Kebabify(result.AppName)
	if slug == "" {
		slug = "run"
	}

	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), slug)
	path := filepath.Join(s.dir, filename)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}

	// tmp then rename, so a crash never leaves a half-written result
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o600); err != nil {
		return "", fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return "", fmt.Errorf("renaming %s: %w", tmp, err)
	}

	return strings.TrimSuffix(filename, ".json"), nil
}

// List returns stored results, most recent first. Unreadable files are
// skipped rather than failing the whole listing.
func (s *Store) List() ([]*benchmark.Result, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading history directory %s: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}

	// filenames start with an UTC timestamp, lexical order is enough
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	var results []*benchmark.Result
	for _, name := range names {
		data, err := afero.ReadFile(s.fs, filepath.Join(s.dir, name))
		if err != nil {
			continue
		}

		result := &benchmark.Result{}
		if err := json.Unmarshal(data, result); err != nil {
			continue
		}
		results = append(results, result)
	}

	return results, nil
}
