package reports

import (
	"context"
	"math"
	"time"

	"github.com/castellodata/payroll_backend/config"
	"github.com/castellodata/payroll_backend/models"
	_ "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
)

type PayrollKpiResponse struct {
	TotalSalaries   decimal.Decimal `json:"totalSalaries"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	TotalAdvances   decimal.Decimal `json:"totalAdvances"`
	NetSalaries     decimal.Decimal `json:"netSalaries"`
	Changes         KpiChanges      `json:"changes"`
}

type KpiChanges struct {
	SalariesChange   float64 `json:"salariesChange"`
	DeductionsChange float64 `json:"deductionsChange"`
	AdvancesChange   float64 `json:"advancesChange"`
	NetChange        float64 `json:"netChange"`
}

type MonthlyTrendResponse struct {
	Month         string          `json:"month"`
	TotalSalaries decimal.Decimal `json:"totalSalaries"`
	NetSalaries   decimal.Decimal `json:"netSalaries"`
	Deductions    decimal.Decimal `json:"deductions"`
}

type NationalityShareResponse struct {
	Name       string `json:"name"`
	Value      int    `json:"value"`
	Percentage int    `json:"percentage"`
}

type BranchSalaryResponse struct {
	Branch        string          `json:"branch"`
	TotalSalary   decimal.Decimal `json:"totalSalary"`
	EmployeeCount int             `json:"employeeCount"`
}

// GetPayrollKpis compares the newest batch that reached at least VALIDATED
// against the one before it. Change percentages are rounded to one decimal
// and report zero when there is no previous batch to compare with.
func GetPayrollKpis(ctx context.Context) (*PayrollKpiResponse, error) {

	started := time.Now()

	current, previous, err := models.LatestProcessedBatches(ctx)
	if err != nil {
		return nil, err
	}

	curSalaries, curDeductions, curAdvances, curNet := sumEntries(current)
	prevSalaries, prevDeductions, prevAdvances, prevNet := sumEntries(previous)

	response := PayrollKpiResponse{
		TotalSalaries:   curSalaries,
		TotalDeductions: curDeductions,
		TotalAdvances:   curAdvances,
		NetSalaries:     curNet,
		Changes: KpiChanges{
			SalariesChange:   percentChange(curSalaries, prevSalaries),
			DeductionsChange: percentChange(curDeductions, prevDeductions),
			AdvancesChange:   percentChange(curAdvances, prevAdvances),
			NetChange:        percentChange(curNet, prevNet),
		},
	}

	logSlowReport(ctx, "payroll_kpis", started, nil)
	return &response, nil
}

func sumEntries(batch *models.PayrollBatch) (salaries, deductions, advances, net decimal.Decimal) {
	if batch == nil {
		return
	}
	for _, entry := range batch.Entries {
		salaries = salaries.Add(entry.GrossSalary)
		deductions = deductions.Add(entry.DeductionsTotal)
		advances = advances.Add(entry.LoansTotal)
		net = net.Add(entry.NetSalary)
	}
	return
}

func percentChange(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	ratio, _ := current.Sub(previous).Div(previous).Float64()
	return math.Round(ratio*100*10) / 10
}

// GetMonthlyTrends returns one point per batch for the last up-to-12
// months, oldest first, for the salary trend charts.
func GetMonthlyTrends(ctx context.Context) ([]*MonthlyTrendResponse, error) {

	db := config.GetDB()
	started := time.Now()

	cacheKey := "Report:MonthlyTrends"
	if reportCacheEnabled() {
		var cached []*MonthlyTrendResponse
		if ok, err := cacheGet(cacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	type trendRow struct {
		Month         time.Time
		TotalSalaries decimal.Decimal
		NetSalaries   decimal.Decimal
		Deductions    decimal.Decimal
	}

	sql := `
SELECT
    pb.month,
    COALESCE(SUM(pe.gross_salary), 0) AS total_salaries,
    COALESCE(SUM(pe.net_salary), 0) AS net_salaries,
    COALESCE(SUM(pe.deductions_total), 0) AS deductions
FROM
    (
        SELECT id, month
        FROM payroll_batches
        WHERE status IN ('VALIDATED', 'APPROVED', 'PROCESSED')
        ORDER BY month DESC
        LIMIT 12
    ) AS pb
    LEFT JOIN payroll_entries pe ON pe.batch_id = pb.id
GROUP BY
    pb.id, pb.month
ORDER BY
    pb.month ASC;`

	var rows []trendRow
	if err := db.WithContext(ctx).Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}

	trends := make([]*MonthlyTrendResponse, 0, len(rows))
	for _, row := range rows {
		trends = append(trends, &MonthlyTrendResponse{
			Month:         formatMonthArabic(row.Month),
			TotalSalaries: row.TotalSalaries,
			NetSalaries:   row.NetSalaries,
			Deductions:    row.Deductions,
		})
	}

	if reportCacheEnabled() {
		if err := cacheSet(cacheKey, trends, reportCacheTTL()); err != nil {
			config.GetLogger().WithError(err).Warn("monthly trends cache set failed")
		}
	}

	logSlowReport(ctx, "monthly_trends", started, map[string]any{"points": len(trends)})
	return trends, nil
}

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

func formatMonthArabic(t time.Time) string {
	return arabicMonths[t.Month()-1] + " " + t.Format("2006")
}

// GetNationalityDistribution returns the top 6 nationalities among active
// employees with each share of the active headcount.
func GetNationalityDistribution(ctx context.Context) ([]*NationalityShareResponse, error) {

	db := config.GetDB()
	started := time.Now()

	type nationalityRow struct {
		Nationality string
		Headcount   int
		Total       int
	}

	sql := `
SELECT
    nationality,
    COUNT(*) AS headcount,
    (SELECT COUNT(*) FROM employees WHERE status = 'ACTIVE') AS total
FROM
    employees
WHERE
    status = 'ACTIVE'
    AND nationality IS NOT NULL
    AND nationality <> ''
GROUP BY
    nationality
ORDER BY
    headcount DESC
LIMIT 6;`

	var rows []nationalityRow
	if err := db.WithContext(ctx).Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}

	distribution := make([]*NationalityShareResponse, 0, len(rows))
	for _, row := range rows {
		percentage := 0
		if row.Total > 0 {
			percentage = int(math.Round(100 * float64(row.Headcount) / float64(row.Total)))
		}
		distribution = append(distribution, &NationalityShareResponse{
			Name:       row.Nationality,
			Value:      row.Headcount,
			Percentage: percentage,
		})
	}

	logSlowReport(ctx, "nationality_distribution", started, nil)
	return distribution, nil
}

// GetBranchSalaries sums the basic salary of active employees per branch,
// ordered by branch name.
func GetBranchSalaries(ctx context.Context) ([]*BranchSalaryResponse, error) {

	db := config.GetDB()
	started := time.Now()

	sql := `
SELECT
    branches.name AS branch,
    COALESCE(SUM(e.basic_salary), 0) AS total_salary,
    COUNT(e.id) AS employee_count
FROM
    branches
    LEFT JOIN employees e ON e.branch_id = branches.id AND e.status = 'ACTIVE'
GROUP BY
    branches.id, branches.name
ORDER BY
    branches.name ASC;`

	var records []*BranchSalaryResponse
	if err := db.WithContext(ctx).Raw(sql).Scan(&records).Error; err != nil {
		return nil, err
	}

	logSlowReport(ctx, "branch_salaries", started, nil)
	return records, nil
}
