package dashboard

import "github.com/asistencia/asistencia-backend-go/internal/domain/attendance"

// StatsResponse are the headline figures of the selected period.
type StatsResponse struct {
	TotalPersonnel        int                              `json:"total_personnel"`
	RegisteredPersonnel   int                              `json:"registered_personnel"`
	WorkingDays           int                              `json:"working_days"`
	TotalHours            float64                          `json:"total_hours"`
	AverageHours          float64                          `json:"average_hours"`
	PendingJustifications int                              `json:"pending_justifications"`
	StatusCounts          map[attendance.SummaryStatus]int `json:"status_counts"`
}

type DashboardResponse struct {
	Year    int                              `json:"year"`
	Month   int                              `json:"month"`
	Stats   StatsResponse                    `json:"stats"`
	Summary []attendance.MonthlySummaryEntry `json:"summary"`
}
