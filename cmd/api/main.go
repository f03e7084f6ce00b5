package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/workforcehq/workforce-backend-go/internal/bootstrap"
	"github.com/workforcehq/workforce-backend-go/internal/config"
	appHTTP "github.com/workforcehq/workforce-backend-go/internal/handler/http"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/jwt"
	"github.com/workforcehq/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workforcehq/workforce-backend-go/internal/service/attendance"
	authService "github.com/workforcehq/workforce-backend-go/internal/service/auth"
	departmentService "github.com/workforcehq/workforce-backend-go/internal/service/department"
	employeeService "github.com/workforcehq/workforce-backend-go/internal/service/employee"
	performanceService "github.com/workforcehq/workforce-backend-go/internal/service/performance"
	reportService "github.com/workforcehq/workforce-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	ctx := context.Background()
	dsn := cfg.DatabaseURL()

	if err := bootstrap.RunMigrations(cfg.App.MigrationsDir, dsn); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn, int32(cfg.Database.MaxConns))
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	if err := bootstrap.Seed(ctx, userRepo, departmentRepo, bootstrap.SeedOptions{
		AdminUsername: cfg.Seed.AdminUsername,
		AdminEmail:    cfg.Seed.AdminEmail,
		AdminPassword: cfg.Seed.AdminPassword,
	}); err != nil {
		log.Fatal("Error seeding database: ", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	txManager := postgresql.NewTxManager(db)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, txManager, nil)
	performanceSvc := performanceService.NewPerformanceService(performanceRepo)
	reportSvc := reportService.NewReportService(reportRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	performanceHandler := appHTTP.NewPerformanceHandler(performanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		departmentHandler,
		employeeHandler,
		attendanceHandler,
		performanceHandler,
		reportHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
