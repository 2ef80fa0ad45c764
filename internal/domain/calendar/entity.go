package calendar

import "time"

// Holiday is a non-working date that applies every time the default calendar is used.
type Holiday struct {
	ID        string
	Date      string // YYYY-MM-DD
	Name      string
	CreatedAt time.Time
}

// WorkingDayOverride is an explicit list of working dates for one month. When
// present it replaces the weekday/holiday rule for that month entirely.
type WorkingDayOverride struct {
	Year         int
	Month        int
	WorkingDates []string
	UpdatedAt    time.Time
}

// HolidaySet indexes holiday dates.
type HolidaySet map[string]struct{}

func NewHolidaySet(holidays []Holiday) HolidaySet {
	set := make(HolidaySet, len(holidays))
	for _, h := range holidays {
		set[h.Date] = struct{}{}
	}
	return set
}

func (s HolidaySet) Contains(date string) bool {
	_, ok := s[date]
	return ok
}
