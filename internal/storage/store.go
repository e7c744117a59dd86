// Package storage keeps finished runs on disk as a metadata.json next to a
// CSV of states.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/daisyworld/internal/daisy"
	"github.com/san-kum/daisyworld/internal/sim"
)

const (
	KindConstant = "constant"
	KindSweep    = "sweep"

	metadataFile    = "metadata.json"
	generationsFile = "generations.csv"
	sweepFile       = "sweep.csv"
)

var (
	ErrWrongKind = errors.New("storage: run has a different kind")
	ErrMalformed = errors.New("storage: malformed csv")
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Dir returns the directory holding the given run.
func (s *Store) Dir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Kind        string             `json:"kind"`
	Name        string             `json:"name"`
	Timestamp   time.Time          `json:"timestamp"`
	Params      daisy.Params       `json:"params"`
	Flux        float64            `json:"flux,omitempty"`
	Generations int                `json:"generations,omitempty"`
	Sweep       *sim.SweepSpec     `json:"sweep,omitempty"`
	Points      int                `json:"points,omitempty"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`
}

// SaveRun stores a constant-flux run.
func (s *Store) SaveRun(name string, p daisy.Params, result *sim.Result) (string, error) {
	meta := RunMetadata{
		Kind:        KindConstant,
		Name:        name,
		Params:      p,
		Flux:        result.Flux,
		Generations: len(result.Generations),
		Metrics:     result.Metrics,
	}
	return s.save(&meta, generationsFile, func(w io.Writer) error {
		return WriteGenerationsCSV(w, result.Generations)
	})
}

// SaveSweep stores a flux sweep.
func (s *Store) SaveSweep(name string, p daisy.Params, spec sim.SweepSpec, result *sim.SweepResult) (string, error) {
	meta := RunMetadata{
		Kind:   KindSweep,
		Name:   name,
		Params: p,
		Sweep:  &spec,
		Points: result.Len(),
	}
	return s.save(&meta, sweepFile, func(w io.Writer) error {
		return WriteSweepCSV(w, result)
	})
}

func (s *Store) save(meta *RunMetadata, dataFile string, write func(io.Writer) error) (string, error) {
	now := time.Now()
	meta.ID = fmt.Sprintf("%s_%d", idPrefix(meta.Name), now.UnixNano())
	meta.Timestamp = now
	runDir := s.Dir(meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, dataFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := write(csvFile); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// idPrefix turns a run name into a single path element so every run lands
// directly under the base directory.
func idPrefix(name string) string {
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator || r == 0 {
			return '_'
		}
		return r
	}, name)
	if name == "" {
		return "run"
	}
	return name
}

// List returns the stored runs, oldest first. Directories without readable
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir(runID), metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadGenerations reads back the states of a constant-flux run.
func (s *Store) LoadGenerations(runID string) ([]sim.Generation, error) {
	if err := s.checkKind(runID, KindConstant); err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(s.Dir(runID), generationsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadGenerationsCSV(file)
}

// LoadSweep reads back the curves of a sweep.
func (s *Store) LoadSweep(runID string) (*sim.SweepResult, error) {
	if err := s.checkKind(runID, KindSweep); err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(s.Dir(runID), sweepFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadSweepCSV(file)
}

func (s *Store) checkKind(runID, kind string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	if meta.Kind != kind {
		return fmt.Errorf("%w: %s is %s, not %s", ErrWrongKind, runID, meta.Kind, kind)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func prefixed(prefix string) []string {
	out := make([]string, len(daisy.Columns))
	for i, c := range daisy.Columns {
		out[i] = prefix + "_" + c
	}
	return out
}
