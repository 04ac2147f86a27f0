package service

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/ahmadqo/school-management-system/internal/config"
	"github.com/ahmadqo/school-management-system/internal/database"
	"github.com/ahmadqo/school-management-system/internal/model"
	"github.com/ahmadqo/school-management-system/internal/repository"
)

// testEnv wires every repository and service over one in-memory
// database, migrated and seeded like a fresh production store.
type testEnv struct {
	db *sqlx.DB

	userRepo      repository.UserRepository
	studentRepo   repository.StudentRepository
	hostelerRepo  repository.HostelerRepository
	busHolderRepo repository.BusHolderRepository
	employeeRepo  repository.EmployeeRepository
	feeRepo       repository.FeeRepository
	slipRepo      repository.SalarySlipRepository
	reportRepo    repository.ReportCardRepository
	logRepo       repository.SystemLogRepository

	audit     AuditService
	auth      AuthService
	students  StudentService
	transport TransportService
	employees EmployeeService
	fees      FeeService
	reports   ReportCardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	// The in-memory database lives and dies with its one connection.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db, "../../migrations"))
	require.NoError(t, database.NewSeeder(db).SeedDefaults(context.Background()))

	env := &testEnv{
		db:            db,
		userRepo:      repository.NewUserRepository(db),
		studentRepo:   repository.NewStudentRepository(db),
		hostelerRepo:  repository.NewHostelerRepository(db),
		busHolderRepo: repository.NewBusHolderRepository(db),
		employeeRepo:  repository.NewEmployeeRepository(db),
		feeRepo:       repository.NewFeeRepository(db),
		slipRepo:      repository.NewSalarySlipRepository(db),
		reportRepo:    repository.NewReportCardRepository(db),
		logRepo:       repository.NewSystemLogRepository(db),
	}

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireHours = 1
	cfg.JWT.RefreshExpHours = 2

	env.audit = NewAuditService(env.logRepo)
	env.auth = NewAuthService(env.userRepo, env.studentRepo, env.audit, cfg)
	env.students = NewStudentService(env.studentRepo, env.userRepo, env.reportRepo, env.audit)
	env.transport = NewTransportService(env.studentRepo, env.hostelerRepo, env.busHolderRepo, env.audit)
	env.employees = NewEmployeeService(env.employeeRepo, env.slipRepo, env.audit)
	env.fees = NewFeeService(env.feeRepo, env.studentRepo, env.audit, nil)
	env.reports = NewReportCardService(env.reportRepo, env.studentRepo, env.audit)

	return env
}

func (e *testEnv) createStudent(t *testing.T, name, class, hostel, bus string) *model.CreatedStudent {
	t.Helper()
	created, err := e.students.Create(context.Background(), "admin", model.CreateStudentRequest{
		Name:         name,
		Class:        class,
		HostelStatus: hostel,
		BusStatus:    bus,
	})
	require.NoError(t, err)
	return created
}

func (e *testEnv) recordPayment(t *testing.T, studentID, amount string) {
	t.Helper()
	_, err := e.fees.RecordPayment(context.Background(), "admin", model.CreateFeeTransactionRequest{
		StudentID: studentID,
		FeeType:   "Class",
		Amount:    amount,
	})
	require.NoError(t, err)
}

// lastAuditAction returns the most recent audit row's action text.
func (e *testEnv) lastAuditAction(t *testing.T) string {
	t.Helper()
	entries, err := e.audit.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	return entries[0].Action
}
