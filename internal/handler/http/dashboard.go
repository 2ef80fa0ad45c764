package http

import (
	"net/http"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia/asistencia-backend-go/internal/domain/dashboard"
	"github.com/asistencia/asistencia-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService  dashboard.DashboardService
	attendanceService attendance.AttendanceService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, attendanceService attendance.AttendanceService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService:  dashboardService,
		attendanceService: attendanceService,
	}
}

// GetDashboard handles GET /dashboard?year=&month=. Without a year the latest
// imported month is shown.
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	var (
		period attendance.Period
		err    error
	)
	if yearStr == "" {
		period, err = h.attendanceService.DefaultPeriod(r.Context())
	} else {
		period, err = attendance.ParsePeriod(yearStr, monthStr)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.GetDashboard(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
