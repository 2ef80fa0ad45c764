package calendar

import "errors"

// Calendar domain errors
var (
	ErrHolidayNotFound    = errors.New("holiday not found")
	ErrHolidayExists      = errors.New("a holiday is already registered for this date")
	ErrOverrideNotFound   = errors.New("no working-day configuration for this month")
	ErrDateOutsideOfMonth = errors.New("working date is outside of the configured month")
)
