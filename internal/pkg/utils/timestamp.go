package utils

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

var (
	// D/M/YYYY at the start of the string, as exported by the clock devices.
	numericDatePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})`)
	// H:MM[:SS] with an optional "a. m." / "p. m." / am / pm marker.
	clockPattern    = regexp.MustCompile(`(?i)(\d{1,2}):(\d{1,2})(:(\d{1,2}))?(\s+([ap]\.?\s*m\.?|am|pm))?`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
	genericLayouts  = []string{time.RFC3339Nano, time.RFC3339, time.RFC1123Z, time.RFC1123, time.ANSIC}
	floatingLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		DateLayout,
		"Jan 2, 2006 15:04:05",
		"January 2, 2006",
	}
)

// TimestampParser resolves the locale formatted timestamps found in attendance
// exports. Parse never fails: input that cannot be read resolves to the current
// time, and every such fallback is counted and logged.
type TimestampParser struct {
	loc       *time.Location
	now       func() time.Time
	fallbacks atomic.Int64
}

// NewTimestampParser returns a parser that places calendar dates in loc.
func NewTimestampParser(loc *time.Location) *TimestampParser {
	if loc == nil {
		loc = time.Local
	}
	return &TimestampParser{loc: loc, now: time.Now}
}

// WithClock replaces the clock used for fallbacks.
func (p *TimestampParser) WithClock(now func() time.Time) *TimestampParser {
	p.now = now
	return p
}

// Location returns the zone used to derive calendar days.
func (p *TimestampParser) Location() *time.Location {
	return p.loc
}

// Fallbacks reports how many inputs resolved to "now" since the parser was built.
func (p *TimestampParser) Fallbacks() int64 {
	return p.fallbacks.Load()
}

// Parse converts raw into an absolute timestamp.
func (p *TimestampParser) Parse(raw string) time.Time {
	t, _ := p.Resolve(raw)
	return t
}

// Resolve is Parse that also reports whether raw fell back to the current time.
func (p *TimestampParser) Resolve(raw string) (time.Time, bool) {
	clean := whitespaceRun.ReplaceAllString(strings.TrimSpace(raw), " ")
	if clean == "" {
		return p.fallback(raw), true
	}

	if m := numericDatePattern.FindStringSubmatch(clean); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		hour, minute, second := parseClock(clean)

		// A month token above 12 can only be a day: the row was written M/D.
		if month > 12 {
			return time.Date(year, time.Month(day), month, hour, minute, second, 0, p.loc), false
		}
		return time.Date(year, time.Month(month), day, hour, minute, second, 0, p.loc), false
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return t, false
		}
	}
	for _, layout := range floatingLayouts {
		if t, err := time.ParseInLocation(layout, clean, p.loc); err == nil {
			return t, false
		}
	}

	return p.fallback(raw), true
}

func (p *TimestampParser) fallback(raw string) time.Time {
	count := p.fallbacks.Add(1)
	slog.Warn("unparseable attendance timestamp, using current time", "raw", raw, "fallback_count", count)
	return p.now().In(p.loc)
}

func parseClock(s string) (hour, minute, second int) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if m[4] != "" {
		second, _ = strconv.Atoi(m[4])
	}

	period := strings.ToLower(m[6])
	switch {
	case period == "":
	case strings.Contains(period, "p"):
		// Exports mix 24h clocks with a "p. m." suffix; only 1..11 shift.
		if hour < 12 {
			hour += 12
		}
	case strings.Contains(period, "a"):
		if hour == 12 {
			hour = 0
		}
	}
	return hour, minute, second
}

// FormatDate renders the calendar date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatClock renders the time of day of t as HH:MM:SS.
func FormatClock(t time.Time) string {
	return t.Format(TimeLayout)
}

// HoursBetween returns the span from start to end in hours, clamped at zero.
func HoursBetween(start, end time.Time) float64 {
	hours := end.Sub(start).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// Noon returns 12:00:00 of date (YYYY-MM-DD) in loc.
func Noon(date string, loc *time.Location) time.Time {
	d, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc)
}
