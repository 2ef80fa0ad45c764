package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedParser(t *testing.T) (*TimestampParser, time.Time) {
	t.Helper()
	loc := time.FixedZone("COT", -5*3600)
	now := time.Date(2030, time.June, 1, 9, 30, 0, 0, loc)
	return NewTimestampParser(loc).WithClock(func() time.Time { return now }), now
}

func TestParse_LocaleFormats(t *testing.T) {
	p, _ := fixedParser(t)
	loc := p.Location()

	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"morning marker", "05/03/2025 07:12:36 a. m.", time.Date(2025, 3, 5, 7, 12, 36, 0, loc)},
		{"24h clock with pm marker", "05/03/2025 17:45:10 p. m.", time.Date(2025, 3, 5, 17, 45, 10, 0, loc)},
		{"12h clock with pm marker", "05/03/2025 05:45:10 p. m.", time.Date(2025, 3, 5, 17, 45, 10, 0, loc)},
		{"noon pm", "05/03/2025 12:05:00 p. m.", time.Date(2025, 3, 5, 12, 5, 0, 0, loc)},
		{"midnight am", "05/03/2025 12:05:00 a. m.", time.Date(2025, 3, 5, 0, 5, 0, 0, loc)},
		{"compact marker", "5/3/2025 7:02 pm", time.Date(2025, 3, 5, 19, 2, 0, 0, loc)},
		{"no clock", "05/03/2025", time.Date(2025, 3, 5, 0, 0, 0, 0, loc)},
		{"day above twelve", "13/02/2025 08:00:00", time.Date(2025, 2, 13, 8, 0, 0, 0, loc)},
		{"month-first row", "02/13/2025 08:00:00", time.Date(2025, 2, 13, 8, 0, 0, 0, loc)},
		{"extra whitespace", "  05/03/2025   07:12:36  a.  m. ", time.Date(2025, 3, 5, 7, 12, 36, 0, loc)},
		{"iso without zone", "2025-03-05 07:12:36", time.Date(2025, 3, 5, 7, 12, 36, 0, loc)},
		{"rfc3339", "2025-03-05T12:12:36Z", time.Date(2025, 3, 5, 12, 12, 36, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fellBack := p.Resolve(tt.raw)
			assert.False(t, fellBack)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
		})
	}
	assert.Zero(t, p.Fallbacks())
}

func TestParse_AmbiguousDateIsNotMonthThirteen(t *testing.T) {
	p, _ := fixedParser(t)

	got := p.Parse("13/02/2025")
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.February, got.Month())
	assert.Equal(t, 13, got.Day())
}

func TestParse_FallbackToNow(t *testing.T) {
	p, now := fixedParser(t)

	for _, raw := range []string{"", "   ", "not a date", "ayer por la tarde"} {
		got, fellBack := p.Resolve(raw)
		assert.True(t, fellBack, raw)
		assert.True(t, now.Equal(got), raw)
	}
	assert.EqualValues(t, 4, p.Fallbacks())

	p.Parse("garbage")
	assert.EqualValues(t, 5, p.Fallbacks())
}

func TestHoursBetween(t *testing.T) {
	start := time.Date(2025, 3, 5, 7, 12, 36, 0, time.UTC)
	end := time.Date(2025, 3, 5, 17, 45, 10, 0, time.UTC)

	assert.InDelta(t, 10.5428, HoursBetween(start, end), 0.001)
	assert.Zero(t, HoursBetween(end, start))
	assert.Zero(t, HoursBetween(start, start))
}

func TestNoonAndFormatting(t *testing.T) {
	loc := time.FixedZone("COT", -5*3600)
	noon := Noon("2025-03-10", loc)

	assert.Equal(t, "2025-03-10", FormatDate(noon))
	assert.Equal(t, "12:00:00", FormatClock(noon))
	assert.True(t, Noon("10/03/2025", loc).IsZero())
}
