package main

import (
	"fmt"
	"net/http"

	"github.com/hrmslite/hrms-backend-go/internal/config"
	appHTTP "github.com/hrmslite/hrms-backend-go/internal/handler/http"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrmslite/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrmslite/hrms-backend-go/internal/service/attendance"
	authService "github.com/hrmslite/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/hrmslite/hrms-backend-go/internal/service/dashboard"
	departmentService "github.com/hrmslite/hrms-backend-go/internal/service/department"
	employeeService "github.com/hrmslite/hrms-backend-go/internal/service/employee"
	leaveService "github.com/hrmslite/hrms-backend-go/internal/service/leave"
	notificationService "github.com/hrmslite/hrms-backend-go/internal/service/notification"
	payrollService "github.com/hrmslite/hrms-backend-go/internal/service/payroll"
	performanceService "github.com/hrmslite/hrms-backend-go/internal/service/performance"
	reportService "github.com/hrmslite/hrms-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveTypeRepo, leaveRequestRepo, employeeRepo, notificationRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo)
	performanceSvc := performanceService.NewPerformanceService(performanceRepo, employeeRepo)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, leaveRequestRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo)

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Department:   appHTTP.NewDepartmentHandler(departmentSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Performance:  appHTTP.NewPerformanceHandler(performanceSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
