package attendance

import (
	"math"
	"sort"
	"strings"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
)

// UnknownDepartment buckets employees the directory does not know about, so
// rollup totals still reconcile with the per-employee summaries.
const UnknownDepartment = "Unknown"

// Summarize computes one attendance summary per distinct employee in
// records. A record with no employee ID or no date aborts the whole batch
// with a MalformedRecordError naming its position; data-quality gaps such as
// a name missing from the directory only degrade the affected summary.
func Summarize(records []attendance.Record, dir employee.Directory) ([]attendance.Stats, error) {
	byEmployee := make(map[string]*attendance.Stats)

	for i, rec := range records {
		if strings.TrimSpace(rec.EmployeeID) == "" {
			return nil, &attendance.MalformedRecordError{Index: i, Field: "employee_id"}
		}
		if rec.Date.IsZero() {
			return nil, &attendance.MalformedRecordError{Index: i, Field: "date"}
		}

		stats, ok := byEmployee[rec.EmployeeID]
		if !ok {
			stats = &attendance.Stats{EmployeeID: rec.EmployeeID}
			if emp, found := dir[rec.EmployeeID]; found {
				stats.EmployeeName = emp.FullName
			}
			byEmployee[rec.EmployeeID] = stats
		}

		stats.TotalDays++
		switch rec.Status {
		case attendance.StatusPresent:
			stats.PresentDays++
		case attendance.StatusAbsent:
			stats.AbsentDays++
		case attendance.StatusLate:
			stats.LateDays++
		case attendance.StatusHalfDay:
			stats.HalfDays++
		}
	}

	out := make([]attendance.Stats, 0, len(byEmployee))
	for _, stats := range byEmployee {
		stats.AttendancePercentage = attendanceRate(stats.PresentDays, stats.HalfDays, stats.TotalDays)
		out = append(out, *stats)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EmployeeID < out[j].EmployeeID
	})

	return out, nil
}

// DepartmentRollup groups per-employee summaries by department and computes
// the department rate from summed raw counts. Summing before dividing keeps
// employees with very few recorded days from skewing the rate, which an
// average of percentages would.
func DepartmentRollup(statsList []attendance.Stats, dir employee.Directory) []attendance.DepartmentStats {
	byDepartment := make(map[string]*attendance.DepartmentStats)

	for _, stats := range statsList {
		dept := UnknownDepartment
		if emp, found := dir[stats.EmployeeID]; found {
			dept = emp.Department
		}

		group, ok := byDepartment[dept]
		if !ok {
			group = &attendance.DepartmentStats{Department: dept}
			byDepartment[dept] = group
		}

		group.TotalDays += stats.TotalDays
		group.PresentDays += stats.PresentDays
		group.AbsentDays += stats.AbsentDays
		group.LateDays += stats.LateDays
		group.HalfDays += stats.HalfDays
	}

	out := make([]attendance.DepartmentStats, 0, len(byDepartment))
	for _, group := range byDepartment {
		group.AttendanceRate = attendanceRate(group.PresentDays, group.HalfDays, group.TotalDays)
		out = append(out, *group)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Department < out[j].Department
	})

	return out
}

// attendanceRate is (present + half) / total as a percentage, rounded to two
// decimals. Late days sit in the denominator only: a late arrival is not
// counted as attended.
func attendanceRate(presentDays, halfDays, totalDays int) float64 {
	if totalDays == 0 {
		return 0
	}
	rate := float64(presentDays+halfDays) / float64(totalDays) * 100
	return math.Round(rate*100) / 100
}
