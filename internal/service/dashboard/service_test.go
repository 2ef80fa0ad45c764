package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia/asistencia-backend-go/internal/domain/justification"
	"github.com/asistencia/asistencia-backend-go/internal/domain/personnel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendance struct {
	attendance.AttendanceService
	summary attendance.MonthlySummary
	err     error
}

func (f *fakeAttendance) MonthlySummary(ctx context.Context, period attendance.Period) (attendance.MonthlySummary, error) {
	return f.summary, f.err
}

type fakeJustifications struct {
	justification.JustificationService
}

func (f *fakeJustifications) Stats(ctx context.Context, filter justification.Filter) (justification.StatsResponse, error) {
	return justification.StatsResponse{Total: 5}, nil
}

type fakePersonnel struct {
	personnel.PersonnelRepository
}

func (f *fakePersonnel) Count(ctx context.Context) (int, error) {
	return 12, nil
}

func TestGetDashboard(t *testing.T) {
	att := &fakeAttendance{summary: attendance.MonthlySummary{
		WorkingDaysCount: 21,
		Summary: []attendance.MonthlySummaryEntry{
			{ID: "101", TotalHours: 150, Status: attendance.OnTrack},
			{ID: "7", TotalHours: 90, Status: attendance.Warning},
			{ID: "9", TotalHours: 0, Status: attendance.Critical},
		},
	}}
	svc := NewDashboardService(att, &fakeJustifications{}, &fakePersonnel{})

	resp, err := svc.GetDashboard(context.Background(), attendance.MonthPeriod(2025, 3))
	require.NoError(t, err)

	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, 3, resp.Month)
	assert.Equal(t, 3, resp.Stats.TotalPersonnel)
	assert.Equal(t, 12, resp.Stats.RegisteredPersonnel)
	assert.Equal(t, 21, resp.Stats.WorkingDays)
	assert.InDelta(t, 240, resp.Stats.TotalHours, 1e-9)
	assert.InDelta(t, 80, resp.Stats.AverageHours, 1e-9)
	assert.Equal(t, 5, resp.Stats.PendingJustifications)
	assert.Equal(t, 1, resp.Stats.StatusCounts[attendance.Warning])
	assert.Len(t, resp.Summary, 3)
}

func TestGetDashboard_EmptyMonth(t *testing.T) {
	svc := NewDashboardService(&fakeAttendance{}, &fakeJustifications{}, &fakePersonnel{})

	resp, err := svc.GetDashboard(context.Background(), attendance.MonthPeriod(2025, 3))
	require.NoError(t, err)
	assert.Zero(t, resp.Stats.AverageHours)
	assert.Equal(t, 0, resp.Stats.StatusCounts[attendance.Critical])
}

func TestGetDashboard_PropagatesFailure(t *testing.T) {
	boom := errors.New("calendar unavailable")
	svc := NewDashboardService(&fakeAttendance{err: boom}, &fakeJustifications{}, &fakePersonnel{})

	_, err := svc.GetDashboard(context.Background(), attendance.MonthPeriod(2025, 3))
	assert.ErrorIs(t, err, boom)
}
