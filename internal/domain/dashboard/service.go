package dashboard

import (
	"context"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns the period's stats and monthly summary, loading its parts concurrently
	GetDashboard(ctx context.Context, period attendance.Period) (*DashboardResponse, error)
}
