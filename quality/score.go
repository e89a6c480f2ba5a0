// Package quality reduces raw data-defect counts to the 0-100 quality
// score and the categorized issue breakdown shown on the quality page.
// The package does no I/O; models/reports supplies the counts.
package quality

import "math"

// Counts are the raw defect tallies collected from the store.
type Counts struct {
	MissingIqamaNumbers      int
	MissingBankAccounts      int
	ExpiredRequiredDocuments int
	ExpiringDocuments        int
	MissingRequiredDocuments int
	PayrollValidationErrors  int
	TotalActiveEmployees     int
}

// Issue is one category of the breakdown list.
type Issue struct {
	Id                string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Severity          string `json:"severity"`
	Count             int    `json:"count"`
	AffectedEmployees int    `json:"affectedEmployees"`
}

// Snapshot is the aggregated quality picture. It is derived on demand and
// never persisted.
type Snapshot struct {
	Overall        int     `json:"overall"`
	TotalIssues    int     `json:"totalIssues"`
	CriticalIssues int     `json:"criticalIssues"`
	WarningIssues  int     `json:"warningIssues"`
	InfoIssues     int     `json:"infoIssues"`
	Completeness   int     `json:"completeness"`
	TotalEmployees int     `json:"totalEmployees"`
	Issues         []Issue `json:"issues"`
}

const (
	SeverityTagCritical = "critical"
	SeverityTagWarning  = "warning"
	SeverityTagInfo     = "info"
)

// ComputeScore reduces the raw counts to a Snapshot.
//
// Payroll validation errors are split half/half between the warning and
// info buckets (floor to warning, remainder to info) so the two always sum
// back to the raw count. The penalty weighs critical issues at 5 points,
// warnings at 2 and info at 0.5, capped at 100, so Overall stays in
// [0, 100].
//
// Completeness is intentionally not clamped: when issues outnumber active
// employees it goes negative, surfacing severe data problems instead of
// hiding them.
func ComputeScore(c Counts) Snapshot {
	criticalCount := c.MissingIqamaNumbers + c.MissingBankAccounts + c.ExpiredRequiredDocuments
	documentIssues := c.ExpiredRequiredDocuments + c.ExpiringDocuments + c.MissingRequiredDocuments
	warningCount := (documentIssues - c.ExpiredRequiredDocuments) + c.PayrollValidationErrors/2
	infoCount := c.PayrollValidationErrors - c.PayrollValidationErrors/2
	totalIssues := criticalCount + warningCount + infoCount

	penalty := float64(criticalCount)*5 + float64(warningCount)*2 + float64(infoCount)*0.5
	if penalty > 100 {
		penalty = 100
	}
	overall := int(math.Round(100 - penalty))
	if overall < 0 {
		overall = 0
	}

	completeness := 0
	if c.TotalActiveEmployees > 0 {
		completeness = int(math.Round(100 * float64(c.TotalActiveEmployees-totalIssues) / float64(c.TotalActiveEmployees)))
	}

	issues := []Issue{
		{
			Id:                "1",
			Title:             "قيم مفقودة",
			Description:       "بيانات ناقصة في سجلات الموظفين",
			Severity:          SeverityTagCritical,
			Count:             c.MissingIqamaNumbers + c.MissingBankAccounts,
			AffectedEmployees: c.MissingIqamaNumbers + c.MissingBankAccounts,
		},
		{
			Id:                "2",
			Title:             "مستندات منتهية",
			Description:       "مستندات منتهية الصلاحية",
			Severity:          SeverityTagCritical,
			Count:             c.ExpiredRequiredDocuments,
			AffectedEmployees: c.ExpiredRequiredDocuments,
		},
		{
			Id:                "3",
			Title:             "مستندات تنتهي قريباً",
			Description:       "مستندات ستنتهي خلال 30 يوم",
			Severity:          SeverityTagWarning,
			Count:             c.ExpiringDocuments + c.MissingRequiredDocuments,
			AffectedEmployees: c.ExpiringDocuments + c.MissingRequiredDocuments,
		},
		{
			Id:                "4",
			Title:             "أخطاء في حسابات الرواتب",
			Description:       "عدم تطابق في حسابات بعض الرواتب",
			Severity:          SeverityTagWarning,
			Count:             c.PayrollValidationErrors,
			AffectedEmployees: c.PayrollValidationErrors * 8 / 10,
		},
		{
			Id:                "5",
			Title:             "بيانات تحتاج مراجعة",
			Description:       "بيانات غير مؤكدة تحتاج مراجعة",
			Severity:          SeverityTagInfo,
			Count:             infoCount,
			AffectedEmployees: infoCount,
		},
	}

	kept := issues[:0]
	for _, issue := range issues {
		if issue.Count > 0 {
			kept = append(kept, issue)
		}
	}

	return Snapshot{
		Overall:        overall,
		TotalIssues:    totalIssues,
		CriticalIssues: criticalCount,
		WarningIssues:  warningCount,
		InfoIssues:     infoCount,
		Completeness:   completeness,
		TotalEmployees: c.TotalActiveEmployees,
		Issues:         kept,
	}
}
