// Package store persists finished chain runs under a data directory,
// one subdirectory per run holding metadata.json and samples.csv.
// Only results are stored; chain state never survives a run.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/hmclab/internal/chain"
	"github.com/san-kum/hmclab/internal/hmc"
	"github.com/san-kum/hmclab/internal/summary"
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

type RunMetadata struct {
	ID             string        `json:"id"`
	Target         string        `json:"target"`
	Timestamp      time.Time     `json:"timestamp"`
	Seed           int64         `json:"seed"`
	Samples        int           `json:"samples"`
	StepSize       float64       `json:"step_size"`
	NumSteps       int           `json:"num_steps"`
	Start          hmc.Point     `json:"start"`
	AcceptanceRate float64       `json:"acceptance_rate"`
	Stats          summary.Stats `json:"stats"`
}

// Save records one finished run and returns its id.
func (s *Store) Save(target string, stepSize float64, numSteps int, start hmc.Point, result *chain.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", target, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:             runID,
		Target:         target,
		Timestamp:      time.Now(),
		Seed:           result.Seed,
		Samples:        len(result.Samples),
		StepSize:       stepSize,
		NumSteps:       numSteps,
		Start:          start,
		AcceptanceRate: result.AcceptanceRate,
		Stats:          summary.Compute(result.Samples),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeSamplesCSV(filepath.Join(runDir, "samples.csv"), result.Samples); err != nil {
		return "", err
	}
	return runID, nil
}

func writeSamplesCSV(path string, samples []hmc.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range samples {
		row := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns metadata for all stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.LoadMeta(e.Name())
		if err != nil {
			continue // skip corrupt entries
		}
		runs = append(runs, meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) LoadMeta(runID string) (RunMetadata, error) {
	var meta RunMetadata
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return meta, err
	}
	err = json.Unmarshal(data, &meta)
	return meta, err
}

func (s *Store) LoadSamples(runID string) ([]hmc.Point, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("run %s: empty samples file", runID)
	}

	samples := make([]hmc.Point, 0, len(rows)-1)
	for _, row := range rows[1:] { // skip header
		if len(row) != 2 {
			return nil, fmt.Errorf("run %s: malformed csv row", runID)
		}
		x, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, err
		}
		samples = append(samples, hmc.Point{X: x, Y: y})
	}
	return samples, nil
}
