package dashboard

import (
	"context"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia/asistencia-backend-go/internal/domain/dashboard"
	"github.com/asistencia/asistencia-backend-go/internal/domain/justification"
	"github.com/asistencia/asistencia-backend-go/internal/domain/personnel"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	attendanceService    attendance.AttendanceService
	justificationService justification.JustificationService
	personnelRepo        personnel.PersonnelRepository
}

func NewDashboardService(
	attendanceService attendance.AttendanceService,
	justificationService justification.JustificationService,
	personnelRepo personnel.PersonnelRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		attendanceService:    attendanceService,
		justificationService: justificationService,
		personnelRepo:        personnelRepo,
	}
}

// GetDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, period attendance.Period) (*dashboard.DashboardResponse, error) {
	var (
		summary       attendance.MonthlySummary
		justStats     justification.StatsResponse
		registeredCnt int
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Monthly summary (records + working days)
	g.Go(func() error {
		var err error
		summary, err = s.attendanceService.MonthlySummary(gCtx, period)
		return err
	})

	// 2. Justification counts
	g.Go(func() error {
		var err error
		justStats, err = s.justificationService.Stats(gCtx, justification.Filter{})
		return err
	})

	// 3. Registered personnel
	g.Go(func() error {
		var err error
		registeredCnt, err = s.personnelRepo.Count(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := dashboard.StatsResponse{
		TotalPersonnel:        len(summary.Summary),
		RegisteredPersonnel:   registeredCnt,
		WorkingDays:           summary.WorkingDaysCount,
		PendingJustifications: justStats.Total,
		StatusCounts: map[attendance.SummaryStatus]int{
			attendance.OnTrack:  0,
			attendance.Warning:  0,
			attendance.Critical: 0,
		},
	}
	for _, entry := range summary.Summary {
		stats.TotalHours += entry.TotalHours
		stats.StatusCounts[entry.Status]++
	}
	if stats.TotalPersonnel > 0 {
		stats.AverageHours = stats.TotalHours / float64(stats.TotalPersonnel)
	}

	return &dashboard.DashboardResponse{
		Year:    period.Year,
		Month:   period.Month,
		Stats:   stats,
		Summary: summary.Summary,
	}, nil
}
