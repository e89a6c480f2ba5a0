package reports

import (
	"testing"
	"time"

	"github.com/castellodata/payroll_backend/quality"
)

func TestNewQualityScoreReportCarriesTimestamp(t *testing.T) {
	snapshot := quality.ComputeScore(quality.Counts{
		MissingIqamaNumbers:  2,
		TotalActiveEmployees: 10,
	})
	at := time.Date(2024, 6, 15, 9, 30, 0, 0, time.FixedZone("AST", 3*3600))

	report := newQualityScoreReport(snapshot, at)

	if report.LastUpdated.IsZero() {
		t.Fatalf("LastUpdated must be set")
	}
	if report.LastUpdated.Location() != time.UTC {
		t.Fatalf("LastUpdated location = %v, want UTC", report.LastUpdated.Location())
	}
	if !report.LastUpdated.Equal(at) {
		t.Fatalf("LastUpdated = %v, want %v", report.LastUpdated, at)
	}
	if report.Overall != snapshot.Overall {
		t.Fatalf("Overall = %d, want %d", report.Overall, snapshot.Overall)
	}
}
