package attendance

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// RawEvent is a single check-in/check-out row as produced by the importer.
type RawEvent struct {
	PersonID   string `json:"person_id"`
	PersonName string `json:"person_name"`
	Timestamp  string `json:"timestamp"`
	EventLabel string `json:"event_label"`
}

// ParsedEvent is a RawEvent with its resolved timestamp.
type ParsedEvent struct {
	RawEvent
	ResolvedAt time.Time
}

// DayStatus is the completeness of one person-day.
type DayStatus string

const (
	DayComplete     DayStatus = "complete"
	DayMissingEntry DayStatus = "missing-entry"
	DayMissingExit  DayStatus = "missing-exit"
	DayIncomplete   DayStatus = "incomplete"
	DayAbsent       DayStatus = "absent"
)

// ParseDayStatus validates a stored status string.
func ParseDayStatus(s string) (DayStatus, error) {
	switch DayStatus(s) {
	case DayComplete, DayMissingEntry, DayMissingExit, DayIncomplete, DayAbsent:
		return DayStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDayStatus, s)
	}
}

// DayRecord is the reconciled attendance of one person on one calendar day.
// Entry and Exit are HH:MM:SS; Date is YYYY-MM-DD.
type DayRecord struct {
	Date       string    `json:"date"`
	Entry      string    `json:"entry"`
	Exit       string    `json:"exit"`
	Hours      float64   `json:"hours"`
	Status     DayStatus `json:"status"`
	EntryCount int       `json:"entryCount"`
	ExitCount  int       `json:"exitCount"`
}

// Statistics are the per-person aggregates over a set of day records.
type Statistics struct {
	TotalHours                float64 `json:"totalHours"`
	DaysWorked                int     `json:"daysWorked"`
	AverageHours              float64 `json:"averageHours"`
	DaysWithCompleteRecords   int     `json:"daysWithCompleteRecords"`
	DaysWithIncompleteRecords int     `json:"daysWithIncompleteRecords"`
}

// PersonRecord owns its DailyRecords; an aggregation pass may mutate it, so a
// PersonRecord must not be shared between concurrent callers.
type PersonRecord struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	DailyRecords []DayRecord `json:"dailyRecords"`
	Statistics
}

// SortPersonnel orders badge numbers numerically and everything else lexically.
func SortPersonnel(persons []*PersonRecord) {
	sort.SliceStable(persons, func(i, j int) bool {
		return lessPersonnelID(persons[i].ID, persons[j].ID)
	})
}

func lessPersonnelID(a, b string) bool {
	na, errA := strconv.ParseUint(a, 10, 64)
	nb, errB := strconv.ParseUint(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// SummaryStatus classifies a person's month.
type SummaryStatus string

const (
	OnTrack  SummaryStatus = "on-track"
	Warning  SummaryStatus = "warning"
	Critical SummaryStatus = "critical"
)

type MonthlySummaryEntry struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	TotalHours        float64       `json:"totalHours"`
	AccumulatedHours  float64       `json:"accumulatedHours"`
	DaysWorked        int           `json:"daysWorked"`
	DaysAbsent        int           `json:"daysAbsent"`
	AverageHours      float64       `json:"averageHours"`
	Status            SummaryStatus `json:"status"`
	IncompleteRecords int           `json:"incompleteRecords"`
}

type MonthlySummary struct {
	Summary          []MonthlySummaryEntry `json:"summary"`
	WorkingDaysCount int                   `json:"workingDaysCount"`
}

type RankingEntry struct {
	Position int `json:"position"`
	MonthlySummaryEntry
}

// FlatRecord is the storage shape of one reconciled day.
type FlatRecord struct {
	PersonnelID   string    `json:"personnelId"`
	PersonnelName string    `json:"personnelName"`
	Date          string    `json:"date"`
	Entry         string    `json:"entry"`
	Exit          string    `json:"exit"`
	Hours         float64   `json:"hours"`
	Status        DayStatus `json:"status"`
	EntryCount    int       `json:"entryCount"`
	ExitCount     int       `json:"exitCount"`
}

// ImportedMonth describes one stored import batch.
type ImportedMonth struct {
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	RecordCount int       `json:"record_count"`
	SourceFile  *string   `json:"source_file,omitempty"`
	SourceURL   string    `json:"source_url,omitempty"`
	ImportedAt  time.Time `json:"imported_at"`
}

// Period selects a month, or a whole year when Month is 0.
type Period struct {
	Year  int
	Month int
}

func MonthPeriod(year, month int) Period { return Period{Year: year, Month: month} }

func YearPeriod(year int) Period { return Period{Year: year} }

func (p Period) IsYear() bool { return p.Month == 0 }

// Range returns the half-open [start, end) date range covered by the period.
func (p Period) Range(loc *time.Location) (time.Time, time.Time) {
	if p.IsYear() {
		start := time.Date(p.Year, time.January, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(1, 0, 0)
	}
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// Contains reports whether t falls inside the period in its own location.
func (p Period) Contains(t time.Time) bool {
	if t.Year() != p.Year {
		return false
	}
	return p.IsYear() || int(t.Month()) == p.Month
}

func (p Period) String() string {
	if p.IsYear() {
		return fmt.Sprintf("%04d", p.Year)
	}
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// DefaultPeriod picks the latest imported month, or the month of now when
// nothing has been imported yet.
func DefaultPeriod(months []ImportedMonth, now time.Time) Period {
	if len(months) == 0 {
		return MonthPeriod(now.Year(), int(now.Month()))
	}
	latest := months[0]
	for _, m := range months[1:] {
		if m.Year > latest.Year || (m.Year == latest.Year && m.Month > latest.Month) {
			latest = m
		}
	}
	return MonthPeriod(latest.Year, latest.Month)
}
