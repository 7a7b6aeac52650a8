package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/lox/internal/model"
)

func sampleRun(id string, started time.Time) m.Run {
	return m.Run{
		ID:      id,
		Started: started,
		Reports: []m.Report{
			{
				ID:      id + "-1",
				Source:  m.Path("/abs/ok.lox"),
				Hash:    "abc123",
				Type:    "number",
				Value:   "7",
				Elapsed: 1500 * time.Microsecond,
			},
			{
				ID:     id + "-2",
				Source: m.Path("/abs/bad.lox"),
				Hash:   "def456",
				Diagnosis: &m.Diagnosis{
					Kind:       m.DiagnosisRuntime,
					Message:    "invalid operands for binary operator `+'",
					SourceID:   "/abs/bad.lox",
					Line:       `"a" + 1`,
					LineNumber: 1,
					Column:     4,
				},
			},
		},
	}
}

func TestLocalReportStore_SaveReports_WritesYAMLPerRun(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "reports")
	rs := &LocalReportStore{}

	run := sampleRun("run-1", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	if err := rs.SaveReports(m.Path(dir), run); err != nil {
		t.Fatalf("SaveReports returned error: %v", err)
	}

	expectedFile := filepath.Join(dir, "run-1.yaml")

	data, err := os.ReadFile(expectedFile)
	if err != nil {
		t.Fatalf("expected report file %s to exist: %v", expectedFile, err)
	}

	var decoded runYAML
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal YAML: %v", err)
	}

	if decoded.ID != "run-1" || len(decoded.Reports) != 2 {
		t.Fatalf("unexpected decoded run: %#v", decoded)
	}
	if decoded.Reports[0].Elapsed != "1.5ms" {
		t.Fatalf("unexpected elapsed: %q", decoded.Reports[0].Elapsed)
	}
	if decoded.Reports[0].Diagnosis != nil {
		t.Fatalf("expected no diagnosis for a passing report")
	}
	if decoded.Reports[1].Diagnosis == nil || decoded.Reports[1].Diagnosis.Kind != "runtime" {
		t.Fatalf("expected runtime diagnosis, got %#v", decoded.Reports[1].Diagnosis)
	}
}

func TestLocalReportStore_SaveReports_RequiresDirAndID(t *testing.T) {
	t.Parallel()

	rs := &LocalReportStore{}

	err := rs.SaveReports("", sampleRun("x", time.Now()))
	if err == nil || !strings.Contains(err.Error(), "reports directory path is required") {
		t.Fatalf("unexpected error: %v", err)
	}

	err = rs.SaveReports(m.Path(t.TempDir()), m.Run{})
	if err == nil || !strings.Contains(err.Error(), "run id is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLocalReportStore_LoadReports_RoundTripsSortedRuns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	later := sampleRun("b-later", base.Add(time.Hour))
	earlier := sampleRun("z-earlier", base)

	for _, run := range []m.Run{later, earlier} {
		if err := rs.SaveReports(m.Path(dir), run); err != nil {
			t.Fatalf("SaveReports returned error: %v", err)
		}
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	runs, err := rs.LoadReports(m.Path(dir))
	if err != nil {
		t.Fatalf("LoadReports returned error: %v", err)
	}

	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != "z-earlier" || runs[1].ID != "b-later" {
		t.Fatalf("runs not sorted by start time: %s, %s", runs[0].ID, runs[1].ID)
	}

	got := runs[0].Reports
	if got[0].Elapsed != 1500*time.Microsecond || got[0].Value != "7" || got[0].Type != "number" {
		t.Fatalf("unexpected first report: %#v", got[0])
	}
	if got[1].Diagnosis == nil || *got[1].Diagnosis != *earlier.Reports[1].Diagnosis {
		t.Fatalf("diagnosis not preserved: %#v", got[1].Diagnosis)
	}
}

func TestLocalReportStore_LoadReports_MissingDir(t *testing.T) {
	t.Parallel()

	rs := &LocalReportStore{}

	runs, err := rs.LoadReports(m.Path(filepath.Join(t.TempDir(), "does-not-exist")))
	if err != nil {
		t.Fatalf("LoadReports returned error: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}
}

func TestLocalReportStore_LoadReports_CorruptFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("reports: [\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rs := &LocalReportStore{}
	if _, err := rs.LoadReports(m.Path(dir)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestLocalReportStore_RegenerateIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second"} {
		if err := rs.SaveReports(m.Path(dir), sampleRun(id, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("SaveReports returned error: %v", err)
		}
	}

	indexPath := filepath.Join(dir, indexFileName)
	if _, err := os.Stat(indexPath); err == nil {
		t.Fatalf("expected %s to not exist until RegenerateIndex is called", indexFileName)
	}

	if err := rs.RegenerateIndex(m.Path(dir)); err != nil {
		t.Fatalf("RegenerateIndex returned error: %v", err)
	}

	data, err := os.ReadFile(indexPath)
	if err != nil {
		t.Fatalf("expected %s to exist: %v", indexFileName, err)
	}

	var idx indexEntry
	if err := yaml.Unmarshal(data, &idx); err != nil {
		t.Fatalf("unmarshal index: %v", err)
	}

	if idx.Runs != 2 || idx.Passed != 2 || idx.Failed != 2 {
		t.Fatalf("unexpected totals: %#v", idx)
	}
	if len(idx.Result) != 2 || idx.Result[0].File != "first.yaml" || idx.Result[1].Failed != 1 {
		t.Fatalf("unexpected entries: %#v", idx.Result)
	}

	// The index itself is not read back as a run.
	runs, err := rs.LoadReports(m.Path(dir))
	if err != nil {
		t.Fatalf("LoadReports returned error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs after indexing, got %d", len(runs))
	}
}
