package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrmslite/hrms-backend-go/internal/handler/http/middleware"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Department   DepartmentHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Payroll      PayrollHandler
	Performance  PerformanceHandler
	Dashboard    DashboardHandler
	Notification NotificationHandler
	Report       ReportHandler
}

func NewRouter(jwtService jwt.Service, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Post("/bulk", h.Employee.BulkImport)
				r.Route("/{employeeID}", func(r chi.Router) {
					r.Get("/", h.Employee.Get)
					r.Put("/", h.Employee.Update)
					r.Delete("/", h.Employee.Delete)
					r.Get("/attendance-stats", h.Attendance.EmployeeStats)
					r.Get("/notifications", h.Notification.ListByEmployee)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.List)
				r.Post("/", h.Department.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Department.Get)
					r.Put("/", h.Department.Update)
					r.Delete("/", h.Department.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Post("/", h.Attendance.Mark)
				r.Get("/department-stats", h.Attendance.DepartmentStats)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Route("/types", func(r chi.Router) {
					r.Get("/", h.Leave.ListTypes)
					r.Post("/", h.Leave.CreateType)
				})

				r.Route("/requests", func(r chi.Router) {
					r.Get("/", h.Leave.ListRequests)
					r.Post("/", h.Leave.CreateRequest)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", h.Leave.GetRequest)
						r.Post("/cancel", h.Leave.CancelRequest)

						// Admin only
						r.Group(func(r chi.Router) {
							r.Use(middleware.AdminOnly)
							r.Post("/approve", h.Leave.ApproveRequest)
							r.Post("/reject", h.Leave.RejectRequest)
						})
					})
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", h.Payroll.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Payroll.Create)
				})
			})

			r.Route("/performance", func(r chi.Router) {
				r.Get("/", h.Performance.List)
				r.Post("/", h.Performance.Create)
			})

			r.Get("/dashboard/stats", h.Dashboard.Stats)
			r.Post("/notifications/{id}/read", h.Notification.MarkRead)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/employees/csv", h.Report.ExportEmployeesCSV)
				r.Get("/attendance/csv", h.Report.ExportAttendanceCSV)
				r.Get("/attendance/xlsx", h.Report.ExportAttendanceXLSX)
			})
		})
	})

	return r
}
