// seed-demo wipes the payroll tables and loads a deterministic demo
// dataset: 2 users, 5 branches, 55 employees with documents, 6 monthly
// payroll batches with entries, 25 alerts and 30 XP events. The data is
// generated from a fixed-seed LCG so repeated runs produce the same rows.
//
// Usage (from the backend directory):
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-demo
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/castellodata/payroll_backend/config"
	"github.com/castellodata/payroll_backend/models"
	"github.com/castellodata/payroll_backend/utils"
	"github.com/shopspring/decimal"
)

const demoPassword = "castello123"

// seededRandom is a tiny LCG so the dataset is reproducible without
// depending on math/rand's generator staying stable across Go versions.
type seededRandom struct {
	seed int64
}

func newSeededRandom(seed int64) *seededRandom {
	return &seededRandom{seed: seed}
}

func (r *seededRandom) next() float64 {
	r.seed = (r.seed*9301 + 49297) % 233280
	return float64(r.seed) / 233280
}

func (r *seededRandom) nextInt(min, max int) int {
	return int(math.Floor(r.next()*float64(max-min+1))) + min
}

func choice[T any](r *seededRandom, values []T) T {
	return values[int(math.Floor(r.next()*float64(len(values))))]
}

var arabicFirstNames = []string{
	"محمد", "أحمد", "علي", "حسن", "خالد", "عمر", "يوسف", "عبدالله", "سعيد", "فهد",
	"سلطان", "فيصل", "عبدالعزيز", "ماجد", "نواف", "بندر", "تركي", "سلمان", "راشد", "مشعل",
	"عبدالرحمن", "إبراهيم", "ناصر", "طارق", "وليد", "هاني", "عادل", "كريم", "جمال", "رامي",
	"فاطمة", "عائشة", "مريم", "نورة", "سارة", "هند", "ريم", "لينا", "أمل", "دانة",
}

var arabicLastNames = []string{
	"العتيبي", "الحربي", "الغامدي", "القحطاني", "العنزي", "السهلي", "المطيري", "الدوسري",
	"الشمري", "الزهراني", "العمري", "الأحمدي", "السبيعي", "الجهني", "البقمي", "الرويلي",
	"الشهري", "العوفي", "الثبيتي", "الخالدي",
}

var nationalities = []string{"Saudi", "Egyptian", "Filipino", "Indian", "Pakistani", "Syrian", "Bangladeshi", "Yemeni"}

var branchData = []struct{ name, city string }{
	{"Jeddah – Corniche", "Jeddah"},
	{"Makkah – Aziziyah", "Makkah"},
	{"Riyadh – Olaya", "Riyadh"},
	{"Dammam – Shatea", "Dammam"},
	{"Madinah – Quba", "Madinah"},
}

var documentStatuses = []models.DocumentStatus{
	models.DocumentStatusValid,
	models.DocumentStatusExpiringSoon,
	models.DocumentStatusExpired,
}

var alertTitles = map[models.AlertType]string{
	models.AlertTypeIqamaExpiry:     "انتهاء صلاحية الإقامة",
	models.AlertTypeMissingDocument: "مستند ناقص",
	models.AlertTypePayrollError:    "خطأ في معالجة الراتب",
	models.AlertTypeDataQuality:     "جودة البيانات منخفضة",
}

var alertDescriptions = map[models.AlertType]string{
	models.AlertTypeIqamaExpiry:     "إقامة الموظف ستنتهي قريباً - يجب التجديد",
	models.AlertTypeMissingDocument: "يوجد مستندات مطلوبة ناقصة",
	models.AlertTypePayrollError:    "تم اكتشاف خطأ في احتساب الراتب",
	models.AlertTypeDataQuality:     "البيانات تحتاج إلى مراجعة وتحديث",
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	ctx := context.Background()
	random := newSeededRandom(42)

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fatalf("database not initialized (config.GetDB returned nil). Set DB_* env vars.")
	}
	models.MigrateTable()

	// Delete children before parents.
	for _, model := range []interface{}{
		&models.History{},
		&models.XpEvent{},
		&models.Alert{},
		&models.PayrollEntry{},
		&models.PayrollBatch{},
		&models.EmployeeDocument{},
		&models.Employee{},
		&models.Branch{},
		&models.User{},
	} {
		if err := db.WithContext(ctx).Where("1 = 1").Delete(model).Error; err != nil {
			fatalf("failed to clear table: %v", err)
		}
	}
	fmt.Println("cleared existing data")

	hashed, err := utils.HashPassword(demoPassword)
	if err != nil {
		fatalf("failed to hash password: %v", err)
	}

	users := []models.User{
		{Name: "أحمد الرويلي - CEO", Email: "ceo@castello.com", Role: models.UserRoleAdmin, PasswordHash: string(hashed), IsActive: utils.NewTrue()},
		{Name: "فاطمة العتيبي - HR Manager", Email: "hr@castello.com", Role: models.UserRoleHR, PasswordHash: string(hashed), IsActive: utils.NewTrue()},
	}
	for i := range users {
		if err := db.WithContext(ctx).Create(&users[i]).Error; err != nil {
			fatalf("failed to create user %s: %v", users[i].Email, err)
		}
	}
	fmt.Printf("created %d users\n", len(users))

	branches := make([]models.Branch, 0, len(branchData))
	for _, b := range branchData {
		branch := models.Branch{Name: b.name, City: b.city, IsActive: utils.NewTrue()}
		if err := db.WithContext(ctx).Create(&branch).Error; err != nil {
			fatalf("failed to create branch %s: %v", b.name, err)
		}
		branches = append(branches, branch)
	}
	fmt.Printf("created %d branches\n", len(branches))

	employees := make([]models.Employee, 0, 55)
	for i := 1; i <= 55; i++ {
		firstName := choice(random, arabicFirstNames)
		lastName := choice(random, arabicLastNames)
		nationality := choice(random, nationalities)
		branch := choice(random, branches)
		hireDate := randomDate(random,
			time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC))

		employee := models.Employee{
			EmployeeCode: fmt.Sprintf("EMP%04d", i),
			FullName:     firstName + " " + lastName,
			Nationality:  nationality,
			BranchId:     branch.ID,
			BasicSalary:  decimal.NewFromInt(int64(random.nextInt(3500, 12000))),
			HireDate:     hireDate,
			Status:       models.EmployeeStatusActive,
		}
		if nationality != "Saudi" {
			iqama := fmt.Sprintf("2%09d", random.nextInt(100000000, 999999999))
			employee.IqamaNumber = &iqama
		}
		bank := fmt.Sprintf("SA%022d", random.nextInt(100000000, 999999999))
		employee.BankAccount = &bank

		if err := db.WithContext(ctx).Create(&employee).Error; err != nil {
			fatalf("failed to create employee %s: %v", employee.EmployeeCode, err)
		}
		employees = append(employees, employee)
	}
	fmt.Printf("created %d employees\n", len(employees))

	documentCount := 0
	for _, employee := range employees {
		for _, docType := range []models.DocumentType{models.DocumentTypeIqama, models.DocumentTypeContract, models.DocumentTypeInsurance} {
			createDocument(ctx, random, employee, docType, true, "")
			documentCount++
		}
		if random.next() > 0.5 {
			createDocument(ctx, random, employee, models.DocumentTypeLicense, false, "")
			documentCount++
		}
		if documentCount < 235 && random.next() > 0.3 {
			extraType := choice(random, []models.DocumentType{
				models.DocumentTypeIqama, models.DocumentTypeContract,
				models.DocumentTypeInsurance, models.DocumentTypeLicense,
			})
			createDocument(ctx, random, employee, extraType, false, "_extra")
			documentCount++
		}
	}
	fmt.Printf("created %d documents\n", documentCount)

	batches := make([]models.PayrollBatch, 0, 6)
	for i := 0; i < 6; i++ {
		status := models.PayrollBatchStatusProcessed
		if i == 5 {
			status = models.PayrollBatchStatusDraft
		}
		batch := models.PayrollBatch{
			Month:            time.Date(2024, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
			UploadedById:     choice(random, users).ID,
			Status:           status,
			DataQualityScore: random.nextInt(75, 98),
		}
		if err := db.WithContext(ctx).Create(&batch).Error; err != nil {
			fatalf("failed to create payroll batch: %v", err)
		}
		batches = append(batches, batch)
	}
	fmt.Printf("created %d payroll batches\n", len(batches))

	entryCount := 0
	for _, batch := range batches {
		for _, employee := range employees {
			overtime := 0
			if random.next() > 0.7 {
				overtime = random.nextInt(200, 800)
			}
			gross := employee.BasicSalary.Add(decimal.NewFromInt(int64(overtime)))
			deductions := decimal.NewFromInt(int64(random.nextInt(150, 600)))
			loans := decimal.Zero
			if random.next() > 0.8 {
				loans = decimal.NewFromInt(int64(random.nextInt(500, 2000)))
			}

			hasIssue := random.next() > 0.85
			validationStatus := models.ValidationStatusOk
			bankStatus := models.BankStatusActive
			var issues *string
			if hasIssue {
				validationStatus = choice(random, []models.ValidationStatus{
					models.ValidationStatusWarning, models.ValidationStatusError,
				})
				if random.next() > 0.7 {
					bankStatus = models.BankStatusInvalid
				}
				encoded, _ := json.Marshal([]string{"بيانات ناقصة", "خطأ في الحساب"})
				s := string(encoded)
				issues = &s
			}

			entry := models.PayrollEntry{
				BatchId:          batch.ID,
				EmployeeId:       employee.ID,
				GrossSalary:      gross,
				DeductionsTotal:  deductions,
				LoansTotal:       loans,
				NetSalary:        gross.Sub(deductions).Sub(loans),
				BankStatus:       bankStatus,
				ValidationStatus: validationStatus,
				Issues:           issues,
			}
			if err := db.WithContext(ctx).Create(&entry).Error; err != nil {
				fatalf("failed to create payroll entry: %v", err)
			}
			entryCount++
		}
	}
	fmt.Printf("created %d payroll entries\n", entryCount)

	alertTypes := []models.AlertType{
		models.AlertTypeIqamaExpiry, models.AlertTypeMissingDocument,
		models.AlertTypePayrollError, models.AlertTypeDataQuality,
	}
	severities := []models.AlertSeverity{
		models.AlertSeverityInfo, models.AlertSeverityWarning, models.AlertSeverityCritical,
	}
	for i := 0; i < 25; i++ {
		alertType := choice(random, alertTypes)
		employee := choice(random, employees)
		alert := models.Alert{
			Type:        alertType,
			Severity:    choice(random, severities),
			Title:       alertTitles[alertType],
			Description: alertDescriptions[alertType],
			EmployeeId:  &employee.ID,
			Status:      models.AlertStatusOpen,
		}
		if random.next() > 0.7 {
			now := time.Now()
			resolver := choice(random, users).ID
			alert.Status = models.AlertStatusResolved
			alert.ResolvedAt = &now
			alert.ResolvedById = &resolver
		}
		if err := db.WithContext(ctx).Create(&alert).Error; err != nil {
			fatalf("failed to create alert: %v", err)
		}
	}
	fmt.Println("created 25 alerts")

	for i := 0; i < 30; i++ {
		event := models.XpEvent{
			UserId:    choice(random, users).ID,
			EventType: models.XpEventTypeFixedAlert,
			XpPoints:  random.nextInt(10, 120),
		}
		if random.next() > 0.5 {
			employee := choice(random, employees)
			event.RelatedEmployeeId = &employee.ID
		}
		if err := db.WithContext(ctx).Create(&event).Error; err != nil {
			fatalf("failed to create xp event: %v", err)
		}
	}
	fmt.Println("created 30 xp events")

	fmt.Println("seed completed. login: ceo@castello.com / " + demoPassword)
}

func randomDate(r *seededRandom, start, end time.Time) time.Time {
	delta := end.Unix() - start.Unix()
	return time.Unix(start.Unix()+int64(r.next()*float64(delta)), 0).UTC()
}

func createDocument(ctx context.Context, r *seededRandom, employee models.Employee, docType models.DocumentType, required bool, suffix string) {
	db := config.GetDB()
	issueDate := randomDate(r,
		time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	expiryDate := issueDate.AddDate(0, r.nextInt(12, 36), 0)

	isRequired := utils.NewFalse()
	if required {
		isRequired = utils.NewTrue()
	}
	doc := models.EmployeeDocument{
		EmployeeId:   employee.ID,
		DocumentType: docType,
		FileUrl:      fmt.Sprintf("/documents/%s_%s%s.pdf", employee.EmployeeCode, docType, suffix),
		IssueDate:    &issueDate,
		ExpiryDate:   &expiryDate,
		IsRequired:   isRequired,
		Status:       choice(r, documentStatuses),
	}
	if err := db.WithContext(ctx).Create(&doc).Error; err != nil {
		fatalf("failed to create document for %s: %v", employee.EmployeeCode, err)
	}
}
