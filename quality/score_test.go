package quality

import "testing"

func TestComputeScoreBuckets(t *testing.T) {
	counts := Counts{
		MissingIqamaNumbers:      2,
		MissingBankAccounts:      1,
		ExpiredRequiredDocuments: 0,
		ExpiringDocuments:        3,
		MissingRequiredDocuments: 0,
		PayrollValidationErrors:  4,
		TotalActiveEmployees:     50,
	}
	snapshot := ComputeScore(counts)

	if snapshot.CriticalIssues != 3 {
		t.Fatalf("critical: got %d, want 3", snapshot.CriticalIssues)
	}
	if snapshot.WarningIssues != 5 {
		t.Fatalf("warning: got %d, want 5", snapshot.WarningIssues)
	}
	if snapshot.InfoIssues != 2 {
		t.Fatalf("info: got %d, want 2", snapshot.InfoIssues)
	}
	if snapshot.TotalIssues != 10 {
		t.Fatalf("total: got %d, want 10", snapshot.TotalIssues)
	}
	// penalty = 3*5 + 5*2 + 2*0.5 = 26
	if snapshot.Overall != 74 {
		t.Fatalf("overall: got %d, want 74", snapshot.Overall)
	}
	// completeness = round(100 * (50-10)/50) = 80
	if snapshot.Completeness != 80 {
		t.Fatalf("completeness: got %d, want 80", snapshot.Completeness)
	}
	if snapshot.TotalEmployees != 50 {
		t.Fatalf("totalEmployees: got %d, want 50", snapshot.TotalEmployees)
	}
}

func TestComputeScorePayrollErrorSplitSumsBack(t *testing.T) {
	for errs := 0; errs <= 11; errs++ {
		snapshot := ComputeScore(Counts{PayrollValidationErrors: errs, TotalActiveEmployees: 100})
		got := (snapshot.WarningIssues) + snapshot.InfoIssues
		if got != errs {
			t.Fatalf("errs=%d: warning+info = %d", errs, got)
		}
		if snapshot.InfoIssues < snapshot.WarningIssues {
			// ceil goes to info, floor to warning
			t.Fatalf("errs=%d: info %d < warning %d", errs, snapshot.InfoIssues, snapshot.WarningIssues)
		}
	}
}

func TestComputeScorePenaltyCap(t *testing.T) {
	snapshot := ComputeScore(Counts{
		MissingIqamaNumbers:  40,
		MissingBankAccounts:  40,
		TotalActiveEmployees: 10,
	})
	if snapshot.Overall != 0 {
		t.Fatalf("overall: got %d, want 0", snapshot.Overall)
	}
}

func TestComputeScoreOverallBounds(t *testing.T) {
	empty := ComputeScore(Counts{TotalActiveEmployees: 10})
	if empty.Overall != 100 {
		t.Fatalf("no issues: overall got %d, want 100", empty.Overall)
	}
	if empty.TotalIssues != 0 {
		t.Fatalf("no issues: total got %d, want 0", empty.TotalIssues)
	}
	if len(empty.Issues) != 0 {
		t.Fatalf("no issues: breakdown should be empty, got %d entries", len(empty.Issues))
	}
}

func TestComputeScoreCompletenessCanGoNegative(t *testing.T) {
	snapshot := ComputeScore(Counts{
		MissingIqamaNumbers:  15,
		TotalActiveEmployees: 10,
	})
	if snapshot.Completeness != -50 {
		t.Fatalf("completeness: got %d, want -50", snapshot.Completeness)
	}
}

func TestComputeScoreZeroEmployees(t *testing.T) {
	snapshot := ComputeScore(Counts{MissingBankAccounts: 3})
	if snapshot.Completeness != 0 {
		t.Fatalf("completeness with zero employees: got %d, want 0", snapshot.Completeness)
	}
}

func TestComputeScoreBreakdownFiltersZeroCounts(t *testing.T) {
	snapshot := ComputeScore(Counts{
		ExpiredRequiredDocuments: 2,
		PayrollValidationErrors:  3,
		TotalActiveEmployees:     20,
	})
	for _, issue := range snapshot.Issues {
		if issue.Count <= 0 {
			t.Fatalf("issue %q has non-positive count %d", issue.Title, issue.Count)
		}
		switch issue.Severity {
		case SeverityTagCritical, SeverityTagWarning, SeverityTagInfo:
		default:
			t.Fatalf("issue %q has unknown severity %q", issue.Title, issue.Severity)
		}
	}
	// expired documents, payroll errors and the needs-review bucket.
	if len(snapshot.Issues) != 3 {
		t.Fatalf("expected 3 issue categories, got %d", len(snapshot.Issues))
	}
}
