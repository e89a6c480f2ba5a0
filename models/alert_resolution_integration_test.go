package models_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/castellodata/payroll_backend/config"
	"github.com/castellodata/payroll_backend/models"
	"github.com/castellodata/payroll_backend/utils"
	"github.com/castellodata/payroll_backend/workflow"
	"github.com/shopspring/decimal"
)

// End-to-end check of the resolve transition: the status flip and the XP
// award commit together, a second resolve reports AlreadyResolved, and the
// derived total reflects exactly one award.
func TestResolveAlert_AwardsOnceAndRejectsSecondResolve(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires docker)")
	}

	ctx := context.Background()

	redisName, redisPort := startRedisContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(redisName) })

	mysqlName, mysqlPort := startMySQLContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(mysqlName) })

	t.Setenv("REDIS_ADDRESS", fmt.Sprintf("127.0.0.1:%s", redisPort))
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "testpw")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", mysqlPort)
	t.Setenv("DB_NAME", "payroll_test")

	config.ConnectDatabaseWithRetry()
	config.ConnectRedisWithRetry()
	if err := config.ClearRedis(ctx); err != nil {
		t.Fatalf("ClearRedis: %v", err)
	}
	models.MigrateTable()

	user, err := models.CreateUser(ctx, &models.NewUser{
		Name:     "Test HR",
		Email:    "hr@test.local",
		Role:     models.UserRoleHR,
		Password: "testpw123",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	ctx = utils.SetUserIdInContext(ctx, user.ID)
	ctx = utils.SetUserNameInContext(ctx, user.Name)
	ctx = utils.SetEmailInContext(ctx, user.Email)

	branch, err := models.CreateBranch(ctx, &models.NewBranch{Name: "Riyadh – Olaya", City: "Riyadh"})
	if err != nil {
		t.Fatalf("CreateBranch: %v", err)
	}
	if fetched, err := models.GetBranch(ctx, branch.ID); err != nil || fetched.Name != branch.Name {
		t.Fatalf("GetBranch: got %+v, %v", fetched, err)
	}

	employee, err := models.CreateEmployee(ctx, &models.NewEmployee{
		EmployeeCode: "EMP0001",
		FullName:     "Ali Hassan",
		BranchId:     branch.ID,
		BasicSalary:  decimal.NewFromInt(5000),
		HireDate:     time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateEmployee: %v", err)
	}

	// An already-expired required document must come back EXPIRED.
	expired := time.Now().AddDate(0, -2, 0)
	issued := expired.AddDate(-2, 0, 0)
	doc, err := models.CreateEmployeeDocument(ctx, &models.NewEmployeeDocument{
		EmployeeId:   employee.ID,
		DocumentType: models.DocumentTypeIqama,
		FileUrl:      "/documents/EMP0001_IQAMA.pdf",
		IssueDate:    &issued,
		ExpiryDate:   &expired,
		IsRequired:   utils.NewTrue(),
	})
	if err != nil {
		t.Fatalf("CreateEmployeeDocument: %v", err)
	}
	if doc.Status != models.DocumentStatusExpired {
		t.Fatalf("document status: got %s, want EXPIRED", doc.Status)
	}

	alert, err := models.CreateAlert(ctx, &models.NewAlert{
		Type:        models.AlertTypeIqamaExpiry,
		Severity:    models.AlertSeverityCritical,
		Title:       "انتهاء صلاحية الإقامة",
		Description: "إقامة الموظف ستنتهي قريباً",
		EmployeeId:  &employee.ID,
	})
	if err != nil {
		t.Fatalf("CreateAlert: %v", err)
	}

	resolution, err := workflow.ResolveAlert(ctx, alert.ID)
	if err != nil {
		t.Fatalf("ResolveAlert: %v", err)
	}
	if resolution.XpGained != 75 {
		t.Fatalf("xpGained: got %d, want 75", resolution.XpGained)
	}
	if resolution.Alert.Status != string(models.AlertStatusResolved) {
		t.Fatalf("alert status: got %s, want RESOLVED", resolution.Alert.Status)
	}

	stored, err := models.GetAlert(ctx, alert.ID)
	if err != nil {
		t.Fatalf("GetAlert: %v", err)
	}
	if stored.Status != models.AlertStatusResolved || stored.ResolvedAt == nil {
		t.Fatalf("stored alert: status=%s resolvedAt=%v, want RESOLVED with timestamp", stored.Status, stored.ResolvedAt)
	}

	if _, err := workflow.ResolveAlert(ctx, alert.ID); !errors.Is(err, utils.ErrorAlreadyResolved) {
		t.Fatalf("second resolve: got %v, want ErrorAlreadyResolved", err)
	}

	if _, err := workflow.ResolveAlert(ctx, alert.ID+1000); !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("missing alert: got %v, want ErrorRecordNotFound", err)
	}

	total, err := models.TotalXpForUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("TotalXpForUser: %v", err)
	}
	if total != 75 {
		t.Fatalf("total xp: got %d, want 75 (award must happen exactly once)", total)
	}
}

func startRedisContainer(t *testing.T) (containerName, hostPort string) {
	t.Helper()
	name := fmt.Sprintf("payroll-test-redis-%d", time.Now().UnixNano())
	out, err := dockerRun(
		"run", "-d", "--name", name,
		"-p", "127.0.0.1:0:6379",
		"redis:7-alpine",
	)
	if err != nil {
		t.Fatalf("start redis container: %v\n%s", err, out)
	}
	port, err := dockerHostPort(name, "6379/tcp")
	if err != nil {
		t.Fatalf("redis docker port: %v", err)
	}
	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		_, err := dockerRun("exec", name, "redis-cli", "ping")
		if err == nil {
			return name, port
		}
		time.Sleep(250 * time.Millisecond)
	}
	t.Fatalf("redis did not become ready")
	return "", ""
}

func startMySQLContainer(t *testing.T) (containerName, hostPort string) {
	t.Helper()
	name := fmt.Sprintf("payroll-test-mysql-%d", time.Now().UnixNano())
	out, err := dockerRun(
		"run", "-d", "--name", name,
		"-e", "MYSQL_ROOT_PASSWORD=testpw",
		"-e", "MYSQL_DATABASE=payroll_test",
		"-p", "127.0.0.1:0:3306",
		"mysql:8.0",
		"--default-authentication-plugin=mysql_native_password",
	)
	if err != nil {
		t.Fatalf("start mysql container: %v\n%s", err, out)
	}
	port, err := dockerHostPort(name, "3306/tcp")
	if err != nil {
		t.Fatalf("mysql docker port: %v", err)
	}
	deadline := time.Now().Add(120 * time.Second)
	for time.Now().Before(deadline) {
		_, err := dockerRun("exec", name, "mysqladmin", "ping", "-h", "127.0.0.1", "-ptestpw", "--silent")
		if err == nil {
			return name, port
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("mysql did not become ready")
	return "", ""
}

func dockerHostPort(container, portProto string) (string, error) {
	out, err := dockerRun("port", container, portProto)
	if err != nil {
		return "", fmt.Errorf("docker port: %w: %s", err, out)
	}
	re := regexp.MustCompile(`:(\d+)`)
	m := re.FindStringSubmatch(out)
	if len(m) != 2 {
		return "", fmt.Errorf("unexpected docker port output: %q", out)
	}
	return m[1], nil
}

func dockerRmForce(container string) error {
	if strings.TrimSpace(container) == "" {
		return nil
	}
	_, err := dockerRun("rm", "-f", container)
	return err
}

func dockerRun(args ...string) (string, error) {
	cmd := exec.Command("docker", args...)
	b, err := cmd.CombinedOutput()
	return string(b), err
}
