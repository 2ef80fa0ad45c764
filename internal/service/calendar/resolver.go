package calendar

import (
	"sort"
	"time"

	"github.com/asistencia/asistencia-backend-go/internal/domain/calendar"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/utils"
)

// ResolveMonth returns the working days of year/month in ascending order. An
// override replaces the rule and ignores holidays; otherwise every weekday that
// is not a holiday is a working day.
func ResolveMonth(year, month int, holidays calendar.HolidaySet, override *calendar.WorkingDayOverride) []string {
	if override != nil {
		dates := make([]string, len(override.WorkingDates))
		copy(dates, override.WorkingDates)
		sort.Strings(dates)
		return dates
	}

	days := []string{}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		date := utils.FormatDate(d)
		if holidays.Contains(date) {
			continue
		}
		days = append(days, date)
	}
	return days
}

// ResolveYear concatenates the twelve monthly resolutions of year.
func ResolveYear(year int, holidays calendar.HolidaySet, overrides map[int]*calendar.WorkingDayOverride) []string {
	days := []string{}
	for month := 1; month <= 12; month++ {
		days = append(days, ResolveMonth(year, month, holidays, overrides[month])...)
	}
	return days
}
