package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Import reconciles raw events of one month and replaces that month's stored records
	Import(ctx context.Context, req ImportRequest) (ImportResponse, error)

	// GetByPeriod returns the processed attendance map keyed by personnel ID
	GetByPeriod(ctx context.Context, period Period) (map[string]*PersonRecord, error)

	// GetPersonnelAttendance returns one person's days, statistics and gaps
	GetPersonnelAttendance(ctx context.Context, personnelID string, period Period) (PersonnelAttendanceResponse, error)

	// DeleteMonth removes a month's records and its import metadata
	DeleteMonth(ctx context.Context, year, month int) error

	// ImportedMonths lists the months with stored records
	ImportedMonths(ctx context.Context) ([]ImportedMonth, error)

	// DefaultPeriod is the latest imported month, or the current month
	DefaultPeriod(ctx context.Context) (Period, error)

	// MonthlySummary computes the per-person summary sorted by total hours
	MonthlySummary(ctx context.Context, period Period) (MonthlySummary, error)

	// Ranking is the monthly summary with 1-based positions
	Ranking(ctx context.Context, period Period) ([]RankingEntry, error)
}
