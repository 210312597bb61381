package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/marie/subvention-scroller/internal/analysis"
	"github.com/marie/subvention-scroller/internal/linkcheck"
	"github.com/marie/subvention-scroller/internal/models"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"culture, patrimoine", "culture_patrimoine"},
		{"  Art & Design!  ", "art_design"},
		{"", "export"},
		{"___", "export"},
		{strings.Repeat("a", 40), strings.Repeat("a", 30)},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTimestampedName(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 5, 0, time.UTC)
	if got := timestampedName("culture", now); got != "culture_20260315_143005" {
		t.Errorf("timestampedName = %q", got)
	}
}

func TestEnsureDirs(t *testing.T) {
	base := t.TempDir()
	got, err := EnsureDirs(base)
	if err != nil {
		t.Fatalf("EnsureDirs: %v", err)
	}
	if got != base {
		t.Errorf("EnsureDirs returned %q", got)
	}
	for _, sub := range []string{ExcelDir, AnalysisDir, FixLogDir} {
		if _, err := os.Stat(filepath.Join(base, sub)); err != nil {
			t.Errorf("missing %s: %v", sub, err)
		}
	}
}

func sampleOpps() []models.Opportunity {
	return []models.Opportunity{
		{
			Origin: models.OriginFrench, Title: "Aide culture", Source: "AT",
			Amount: "€5,000", Deadline: "15/10/2026", DaysUntilDeadline: 45,
			URL: "https://example.org/a", LinkActive: true,
		},
		{
			Origin: models.OriginEuropean, Title: "Creative Europe", Source: "CE",
			Amount: "€60,000", DaysUntilDeadline: 12,
			URL: "https://example.org/b",
		},
		{
			Origin: models.OriginColombian, Title: "Beca IDARTES", Source: "IDARTES",
			Amount: "COP 30,000,000", DaysUntilDeadline: models.NoDeadline,
			URL: "https://example.org/c", LinkActive: true,
		},
	}
}

func TestWriteWorkbook(t *testing.T) {
	base := t.TempDir()
	path, err := WriteWorkbook(sampleOpps(), "test export", base)
	if err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "test_export_") || !strings.HasSuffix(path, ".xlsx") {
		t.Errorf("unexpected path %q", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(opportunitySheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 3", len(rows))
	}
	if rows[0][1] != "Title" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][1] != "Aide culture" {
		t.Errorf("first data row = %v", rows[1])
	}

	if idx, _ := f.GetSheetIndex("Summary"); idx < 0 {
		t.Error("Summary sheet missing")
	}
}

func TestWriteWorkbook_FilteredVariants(t *testing.T) {
	base := t.TempDir()

	workingPath, err := WriteWorkingURLsWorkbook(sampleOpps(), "filter", base)
	if err != nil {
		t.Fatalf("WriteWorkingURLsWorkbook: %v", err)
	}
	assertRowCount(t, workingPath, 2)

	urgentPath, err := WriteUrgentWorkbook(sampleOpps(), "filter", base)
	if err != nil {
		t.Fatalf("WriteUrgentWorkbook: %v", err)
	}
	assertRowCount(t, urgentPath, 1)
}

func assertRowCount(t *testing.T, path string, wantData int) {
	t.Helper()
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()
	rows, err := f.GetRows(opportunitySheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if got := len(rows) - 1; got != wantData {
		t.Errorf("%s has %d data rows, want %d", filepath.Base(path), got, wantData)
	}
}

func TestWriteReport_TwinFiles(t *testing.T) {
	base := t.TempDir()
	report := &analysis.Report{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Totals:      analysis.Totals{French: 2, Total: 2},
		Recommendations: []string{
			"HIGH PRIORITY: 1 opportunities close within 30 days",
		},
	}

	jsonPath, err := WriteReport(report, "analysis run", base)
	if err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("reading json: %v", err)
	}
	var decoded analysis.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding json: %v", err)
	}
	if decoded.Totals.French != 2 {
		t.Errorf("round-tripped totals = %+v", decoded.Totals)
	}

	txtPath := strings.TrimSuffix(jsonPath, ".json") + ".txt"
	txt, err := os.ReadFile(txtPath)
	if err != nil {
		t.Fatalf("txt twin missing: %v", err)
	}
	if !strings.Contains(string(txt), "HIGH PRIORITY") {
		t.Error("txt twin missing recommendations")
	}
}

func TestWriteFixLog(t *testing.T) {
	base := t.TempDir()
	results := []linkcheck.FixResult{
		{
			OriginalURL: "http://broken.example.org",
			FinalStatus: linkcheck.StatusFixed,
			WorkingURL:  "https://broken.example.org",
			FixStrategy: "Try HTTPS instead of HTTP",
		},
	}
	summary := linkcheck.FixSummary{TotalBroken: 1, Fixed: 1, SuccessRate: 100}

	jsonPath, err := WriteFixLog(results, summary, "repair run", base)
	if err != nil {
		t.Fatalf("WriteFixLog: %v", err)
	}
	txt, err := os.ReadFile(strings.TrimSuffix(jsonPath, ".json") + ".txt")
	if err != nil {
		t.Fatalf("txt twin missing: %v", err)
	}
	if !strings.Contains(string(txt), "Try HTTPS instead of HTTP") {
		t.Error("txt twin missing the applied strategy")
	}
}
