package http

import (
	"log/slog"
	"net/http"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/service/report"
)

type ReportHandler interface {
	ExportEmployeesCSV(w http.ResponseWriter, r *http.Request)
	ExportAttendanceCSV(w http.ResponseWriter, r *http.Request)
	ExportAttendanceXLSX(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

// ExportEmployeesCSV handles GET /reports/employees/csv
func (h *ReportHandlerImpl) ExportEmployeesCSV(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{
		Search:     queryParam(r, "search"),
		Department: queryParam(r, "department"),
		Status:     queryParam(r, "status"),
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.csv"`)

	if err := h.reportService.ExportEmployeesCSV(r.Context(), w, filter); err != nil {
		// Headers are already written; all we can do is log
		slog.Error("Employee CSV export failed", "error", err)
	}
}

// ExportAttendanceCSV handles GET /reports/attendance/csv
func (h *ReportHandlerImpl) ExportAttendanceCSV(w http.ResponseWriter, r *http.Request) {
	filter := attendanceFilterFromQuery(r)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="attendance.csv"`)

	if err := h.reportService.ExportAttendanceCSV(r.Context(), w, filter); err != nil {
		slog.Error("Attendance CSV export failed", "error", err)
	}
}

// ExportAttendanceXLSX handles GET /reports/attendance/xlsx
func (h *ReportHandlerImpl) ExportAttendanceXLSX(w http.ResponseWriter, r *http.Request) {
	filter := attendanceFilterFromQuery(r)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="attendance.xlsx"`)

	if err := h.reportService.ExportAttendanceXLSX(r.Context(), w, filter); err != nil {
		slog.Error("Attendance XLSX export failed", "error", err)
	}
}

func attendanceFilterFromQuery(r *http.Request) attendance.AttendanceFilter {
	return attendance.AttendanceFilter{
		EmployeeID: queryParam(r, "employee_id"),
		StartDate:  queryParam(r, "start_date"),
		EndDate:    queryParam(r, "end_date"),
		Status:     queryParam(r, "status"),
	}
}
