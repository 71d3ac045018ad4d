package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/hmclab/internal/hmc"
)

type ExportData struct {
	Meta    RunMetadata `json:"meta"`
	Samples []hmc.Point `json:"samples"`
}

// ExportJSON writes a stored run, metadata and samples together, to w.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	meta, err := s.LoadMeta(runID)
	if err != nil {
		return err
	}
	samples, err := s.LoadSamples(runID)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Meta: meta, Samples: samples})
}

// ExportCSV copies a stored run's samples.csv to the given path.
func (s *Store) ExportCSV(runID, path string) error {
	samples, err := s.LoadSamples(runID)
	if err != nil {
		return err
	}
	return writeSamplesCSV(path, samples)
}

// ExportJSONFile is ExportJSON to a file path.
func (s *Store) ExportJSONFile(runID, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.ExportJSON(runID, f)
}
