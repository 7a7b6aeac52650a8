package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/lox/internal/model"
)

const (
	reportFileExt   = ".yaml"
	indexFileName   = "_index.yaml"
	reportsDirPerm  = 0o750
	reportsFilePerm = 0o600
)

// ReportStore persists and retrieves evaluation runs.
type ReportStore interface {
	// SaveReports writes run to <dir>/<run-id>.yaml, creating dir if needed.
	SaveReports(dir m.Path, run m.Run) error
	// LoadReports reads every run stored in dir, oldest first.
	LoadReports(dir m.Path) ([]m.Run, error)
	// RegenerateIndex rewrites <dir>/_index.yaml from the stored runs.
	RegenerateIndex(dir m.Path) error
}

// LocalReportStore stores runs as YAML files on the local disk.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type runYAML struct {
	ID      string       `yaml:"id"`
	Started time.Time    `yaml:"started"`
	Reports []reportYAML `yaml:"reports"`
}

type reportYAML struct {
	ID        string         `yaml:"id"`
	Source    string         `yaml:"source"`
	Hash      string         `yaml:"hash,omitempty"`
	Type      string         `yaml:"type,omitempty"`
	Value     string         `yaml:"value,omitempty"`
	Elapsed   string         `yaml:"elapsed"`
	Diagnosis *diagnosisYAML `yaml:"diagnosis,omitempty"`
}

type diagnosisYAML struct {
	Kind       string `yaml:"kind"`
	Message    string `yaml:"message"`
	SourceID   string `yaml:"source_id"`
	Line       string `yaml:"line"`
	LineNumber int    `yaml:"line_number"`
	Column     int    `yaml:"column"`
}

type indexEntry struct {
	Runs   int        `yaml:"runs"`
	Passed int        `yaml:"passed"`
	Failed int        `yaml:"failed"`
	Result []runEntry `yaml:"result"`
}

type runEntry struct {
	ID      string    `yaml:"id"`
	File    string    `yaml:"file"`
	Started time.Time `yaml:"started"`
	Sources int       `yaml:"sources"`
	Failed  int       `yaml:"failed"`
}

// SaveReports writes one YAML document for the run.
func (rs *LocalReportStore) SaveReports(dir m.Path, run m.Run) error {
	if dir == "" {
		return errors.New("reports directory path is required")
	}

	if run.ID == "" {
		return errors.New("run id is required")
	}

	if err := os.MkdirAll(string(dir), reportsDirPerm); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	data, err := yaml.Marshal(toRunYAML(run))
	if err != nil {
		return fmt.Errorf("marshal run %s: %w", run.ID, err)
	}

	path := filepath.Join(string(dir), run.ID+reportFileExt)
	if err := os.WriteFile(path, data, reportsFilePerm); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReports decodes every run file of dir. A missing directory holds no
// runs.
func (rs *LocalReportStore) LoadReports(dir m.Path) ([]m.Run, error) {
	if dir == "" {
		return nil, errors.New("reports directory path is required")
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []m.Run{}, nil
		}

		return nil, fmt.Errorf("read reports directory: %w", err)
	}

	runs := []m.Run{}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == indexFileName || !strings.HasSuffix(name, reportFileExt) {
			continue
		}

		run, err := readRun(filepath.Join(string(dir), name))
		if err != nil {
			return nil, err
		}

		runs = append(runs, run)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Started.Before(runs[j].Started)
	})

	return runs, nil
}

// RegenerateIndex summarizes the stored runs in _index.yaml.
func (rs *LocalReportStore) RegenerateIndex(dir m.Path) error {
	runs, err := rs.LoadReports(dir)
	if err != nil {
		return err
	}

	idx := indexEntry{Runs: len(runs), Result: make([]runEntry, 0, len(runs))}

	for _, run := range runs {
		entry := runEntry{
			ID:      run.ID,
			File:    run.ID + reportFileExt,
			Started: run.Started,
			Sources: len(run.Reports),
		}

		for _, report := range run.Reports {
			if report.Failed() {
				entry.Failed++
				idx.Failed++
			} else {
				idx.Passed++
			}
		}

		idx.Result = append(idx.Result, entry)
	}

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	path := filepath.Join(string(dir), indexFileName)
	if err := os.WriteFile(path, data, reportsFilePerm); err != nil {
		return fmt.Errorf("write index %s: %w", path, err)
	}

	return nil
}

func readRun(path string) (m.Run, error) {
	// #nosec G304 - path is a report file listed from the reports directory
	data, err := os.ReadFile(path)
	if err != nil {
		return m.Run{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var decoded runYAML
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return m.Run{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return fromRunYAML(decoded), nil
}

func toRunYAML(run m.Run) runYAML {
	out := runYAML{ID: run.ID, Started: run.Started, Reports: make([]reportYAML, 0, len(run.Reports))}

	for _, report := range run.Reports {
		r := reportYAML{
			ID:      report.ID,
			Source:  string(report.Source),
			Hash:    report.Hash,
			Type:    report.Type,
			Value:   report.Value,
			Elapsed: report.Elapsed.String(),
		}

		if d := report.Diagnosis; d != nil {
			r.Diagnosis = &diagnosisYAML{
				Kind:       string(d.Kind),
				Message:    d.Message,
				SourceID:   d.SourceID,
				Line:       d.Line,
				LineNumber: d.LineNumber,
				Column:     d.Column,
			}
		}

		out.Reports = append(out.Reports, r)
	}

	return out
}

func fromRunYAML(run runYAML) m.Run {
	out := m.Run{ID: run.ID, Started: run.Started, Reports: make([]m.Report, 0, len(run.Reports))}

	for _, r := range run.Reports {
		// An unreadable duration only loses timing information.
		elapsed, _ := time.ParseDuration(r.Elapsed)

		report := m.Report{
			ID:      r.ID,
			Source:  m.Path(r.Source),
			Hash:    r.Hash,
			Type:    r.Type,
			Value:   r.Value,
			Elapsed: elapsed,
		}

		if d := r.Diagnosis; d != nil {
			report.Diagnosis = &m.Diagnosis{
				Kind:       m.DiagnosisKind(d.Kind),
				Message:    d.Message,
				SourceID:   d.SourceID,
				Line:       d.Line,
				LineNumber: d.LineNumber,
				Column:     d.Column,
			}
		}

		out.Reports = append(out.Reports, report)
	}

	return out
}
