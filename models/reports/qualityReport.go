package reports

import (
	"context"
	"time"

	"github.com/castellodata/payroll_backend/config"
	"github.com/castellodata/payroll_backend/models"
	"github.com/castellodata/payroll_backend/quality"
	_ "github.com/go-sql-driver/mysql"
)

// CollectQualityCounts tallies the raw data defects across active
// employees, their documents and the latest payroll entries. The
// quality package turns these into the scored snapshot.
func CollectQualityCounts(ctx context.Context) (quality.Counts, error) {

	db := config.GetDB()
	started := time.Now()
	var counts quality.Counts

	type countRow struct {
		TotalActive     int
		MissingIqama    int
		MissingBank     int
		ExpiredRequired int
		ExpiringSoon    int
		MissingRequired int
		PayrollErrors   int
	}

	sql := `
SELECT
    (SELECT COUNT(*) FROM employees WHERE status = 'ACTIVE') AS total_active,
    (SELECT COUNT(*) FROM employees
        WHERE status = 'ACTIVE'
        AND (iqama_number IS NULL OR iqama_number = '')) AS missing_iqama,
    (SELECT COUNT(*) FROM employees
        WHERE status = 'ACTIVE'
        AND (bank_account IS NULL OR bank_account = '')) AS missing_bank,
    (SELECT COUNT(*) FROM employee_documents
        WHERE status = ? AND is_required = true) AS expired_required,
    (SELECT COUNT(*) FROM employee_documents
        WHERE status = ?) AS expiring_soon,
    (SELECT COUNT(*) FROM employee_documents
        WHERE status = ? AND is_required = true) AS missing_required,
    (SELECT COUNT(*) FROM payroll_entries
        WHERE validation_status <> ?) AS payroll_errors;`

	var row countRow
	if err := db.WithContext(ctx).Raw(sql,
		models.DocumentStatusExpired,
		models.DocumentStatusExpiringSoon,
		models.DocumentStatusMissing,
		models.ValidationStatusOk,
	).Scan(&row).Error; err != nil {
		return counts, err
	}

	counts = quality.Counts{
		MissingIqamaNumbers:      row.MissingIqama,
		MissingBankAccounts:      row.MissingBank,
		ExpiredRequiredDocuments: row.ExpiredRequired,
		ExpiringDocuments:        row.ExpiringSoon,
		MissingRequiredDocuments: row.MissingRequired,
		PayrollValidationErrors:  row.PayrollErrors,
		TotalActiveEmployees:     row.TotalActive,
	}

	logSlowReport(ctx, "quality_counts", started, nil)
	return counts, nil
}

// QualityScoreReport is the snapshot plus the time it was computed, so a
// cached response still tells the caller how fresh its counts are.
type QualityScoreReport struct {
	quality.Snapshot
	LastUpdated time.Time `json:"lastUpdated"`
}

func newQualityScoreReport(snapshot quality.Snapshot, computedAt time.Time) QualityScoreReport {
	return QualityScoreReport{
		Snapshot:    snapshot,
		LastUpdated: computedAt.UTC(),
	}
}

// GetQualityScore collects the counts and reduces them to the snapshot,
// optionally served from the report cache.
func GetQualityScore(ctx context.Context) (*QualityScoreReport, error) {

	cacheKey := "Report:QualityScore"
	if reportCacheEnabled() {
		var cached QualityScoreReport
		if ok, err := cacheGet(cacheKey, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	counts, err := CollectQualityCounts(ctx)
	if err != nil {
		return nil, err
	}
	report := newQualityScoreReport(quality.ComputeScore(counts), time.Now())

	if reportCacheEnabled() {
		if err := cacheSet(cacheKey, report, reportCacheTTL()); err != nil {
			config.GetLogger().WithError(err).Warn("quality score cache set failed")
		}
	}
	return &report, nil
}
