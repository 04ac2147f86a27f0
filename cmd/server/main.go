package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahmadqo/school-management-system/internal/config"
	"github.com/ahmadqo/school-management-system/internal/database"
	"github.com/ahmadqo/school-management-system/internal/handler"
	"github.com/ahmadqo/school-management-system/internal/repository"
	"github.com/ahmadqo/school-management-system/internal/service"
	"github.com/ahmadqo/school-management-system/internal/utils"
)

// @title           School Management System API
// @version         1.0
// @description     Backend server for school record management.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// ── Database ─────────────────────────────────────────
	db := database.Connect(&cfg.Database)
	defer db.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	log.Printf("Running migrations from: %s", migrationsPath)
	if err := database.RunMigrations(db, migrationsPath); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	seeder := database.NewSeeder(db)
	if err := seeder.SeedDefaults(context.Background()); err != nil {
		log.Printf("Warning: seed failed: %v", err)
	}

	// ── Archive (MinIO, optional) ────────────────────────
	var archive *utils.ArchiveService
	if cfg.Archive.Enabled() {
		var err error
		archive, err = utils.NewArchiveService(&cfg.Archive)
		if err != nil {
			log.Fatalf("Failed to connect to archive: %v", err)
		}
		log.Println("Archive connected successfully")
	}

	// ── Repositories ─────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	hostelerRepo := repository.NewHostelerRepository(db)
	busHolderRepo := repository.NewBusHolderRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	feeRepo := repository.NewFeeRepository(db)
	slipRepo := repository.NewSalarySlipRepository(db)
	reportRepo := repository.NewReportCardRepository(db)
	logRepo := repository.NewSystemLogRepository(db)

	// ── Services ─────────────────────────────────────────
	auditService := service.NewAuditService(logRepo)
	authService := service.NewAuthService(userRepo, studentRepo, auditService, cfg)
	studentService := service.NewStudentService(studentRepo, userRepo, reportRepo, auditService)
	transportService := service.NewTransportService(studentRepo, hostelerRepo, busHolderRepo, auditService)
	employeeService := service.NewEmployeeService(employeeRepo, slipRepo, auditService)
	feeService := service.NewFeeService(feeRepo, studentRepo, auditService, archive)
	reportService := service.NewReportCardService(reportRepo, studentRepo, auditService)
	backupService := service.NewBackupService(cfg.Database.Path, auditService, archive)

	// ── Handlers ─────────────────────────────────────────
	authHandler := handler.NewAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(studentService)
	transportHandler := handler.NewTransportHandler(transportService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	feeHandler := handler.NewFeeHandler(feeService, reportService)
	adminHandler := handler.NewAdminHandler(backupService, auditService)

	// ── Router ───────────────────────────────────────────
	router := handler.NewRouter(
		authHandler,
		studentHandler,
		transportHandler,
		employeeHandler,
		feeHandler,
		adminHandler,
		cfg.JWT.Secret,
	)

	// ── HTTP Server ──────────────────────────────────────
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server running on port %s (mode: %s)", cfg.App.Port, cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
