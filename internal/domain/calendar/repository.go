package calendar

import "context"

type HolidayRepository interface {
	List(ctx context.Context) ([]Holiday, error)
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
}

type WorkingDayRepository interface {
	// Get returns nil, nil when the month has no override
	Get(ctx context.Context, year, month int) (*WorkingDayOverride, error)

	// ListByYear returns the overrides of a year keyed by month
	ListByYear(ctx context.Context, year int) (map[int]*WorkingDayOverride, error)

	Upsert(ctx context.Context, override WorkingDayOverride) (WorkingDayOverride, error)
	Delete(ctx context.Context, year, month int) error
}
