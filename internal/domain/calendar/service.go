package calendar

import (
	"context"
)

// CalendarService manages holidays and working-day overrides and resolves the
// expected working days of a period.
type CalendarService interface {
	ListHolidays(ctx context.Context) ([]HolidayResponse, error)
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error

	// GetWorkingDays returns nil when the month uses the default rule
	GetWorkingDays(ctx context.Context, year, month int) (*WorkingDaysResponse, error)
	SetWorkingDays(ctx context.Context, req SetWorkingDaysRequest) (WorkingDaysResponse, error)
	ClearWorkingDays(ctx context.Context, year, month int) error

	// WorkingDays resolves a month, or a whole year when month is 0
	WorkingDays(ctx context.Context, year, month int) ([]string, error)
}
