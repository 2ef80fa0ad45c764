package attendance

import (
	"sort"
	"strings"
	"time"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/utils"
)

// Processor turns raw clock events into reconciled person records.
type Processor struct {
	parser *utils.TimestampParser
}

func NewProcessor(parser *utils.TimestampParser) *Processor {
	return &Processor{parser: parser}
}

// Location is the zone calendar days are derived in.
func (p *Processor) Location() *time.Location {
	return p.parser.Location()
}

// Fallbacks exposes the parser's fallback counter.
func (p *Processor) Fallbacks() int64 {
	return p.parser.Fallbacks()
}

// Parse resolves the timestamp of every event and returns how many of them
// fell back to the current time.
func (p *Processor) Parse(events []attendance.RawEvent) ([]attendance.ParsedEvent, int) {
	parsed := make([]attendance.ParsedEvent, 0, len(events))
	fallbacks := 0
	for _, e := range events {
		t, fellBack := p.parser.Resolve(e.Timestamp)
		if fellBack {
			fallbacks++
		}
		parsed = append(parsed, attendance.ParsedEvent{
			RawEvent:   e,
			ResolvedAt: t,
		})
	}
	return parsed, fallbacks
}

// Process groups, reconciles and aggregates parsed events. Persons are ordered
// by ID and each person's days by date.
func (p *Processor) Process(events []attendance.ParsedEvent) []*attendance.PersonRecord {
	loc := p.Location()
	grouped := GroupEvents(events, loc)

	names := make(map[string]string, len(grouped))
	for _, e := range events {
		if _, ok := names[e.PersonID]; !ok {
			names[e.PersonID] = strings.TrimSpace(e.PersonName)
		}
	}

	persons := make([]*attendance.PersonRecord, 0, len(grouped))
	for personID, days := range grouped {
		dates := make([]string, 0, len(days))
		for date := range days {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		records := make([]attendance.DayRecord, 0, len(dates))
		for _, date := range dates {
			records = append(records, ReconcileDay(date, days[date], loc))
		}

		persons = append(persons, &attendance.PersonRecord{
			ID:           personID,
			Name:         names[personID],
			DailyRecords: records,
			Statistics:   CalculateStatistics(records),
		})
	}

	attendance.SortPersonnel(persons)
	return persons
}

// GroupEvents clusters events by person and then by the calendar day of the
// resolved timestamp in loc. Duplicates are kept.
func GroupEvents(events []attendance.ParsedEvent, loc *time.Location) map[string]map[string][]attendance.ParsedEvent {
	grouped := make(map[string]map[string][]attendance.ParsedEvent)
	for _, e := range events {
		days, ok := grouped[e.PersonID]
		if !ok {
			days = make(map[string][]attendance.ParsedEvent)
			grouped[e.PersonID] = days
		}
		date := utils.FormatDate(e.ResolvedAt.In(loc))
		days[date] = append(days[date], e)
	}
	return grouped
}

func isEntry(label string) bool {
	l := strings.ToLower(label)
	return strings.Contains(l, "entrada") || strings.Contains(l, "entry")
}

func isExit(label string) bool {
	l := strings.ToLower(label)
	return strings.Contains(l, "salida") || strings.Contains(l, "exit")
}

// ReconcileDay picks the earliest entry and the latest exit of one person-day.
// Missing sides default to noon of date so hours stay computable; the status
// records what was actually observed.
func ReconcileDay(date string, events []attendance.ParsedEvent, loc *time.Location) attendance.DayRecord {
	var (
		entry, exit           time.Time
		entryCount, exitCount int
		haveEntry, haveExit   bool
	)

	for _, e := range events {
		if isEntry(e.EventLabel) {
			entryCount++
			if !haveEntry || e.ResolvedAt.Before(entry) {
				entry = e.ResolvedAt
				haveEntry = true
			}
		}
		if isExit(e.EventLabel) {
			exitCount++
			if !haveExit || e.ResolvedAt.After(exit) {
				exit = e.ResolvedAt
				haveExit = true
			}
		}
	}

	var status attendance.DayStatus
	switch {
	case !haveEntry && !haveExit:
		status = attendance.DayIncomplete
	case !haveEntry:
		status = attendance.DayMissingEntry
	case !haveExit:
		status = attendance.DayMissingExit
	default:
		status = attendance.DayComplete
	}

	noon := utils.Noon(date, loc)
	if !haveEntry {
		entry = noon
	}
	if !haveExit {
		exit = noon
	}

	return attendance.DayRecord{
		Date:       date,
		Entry:      utils.FormatClock(entry.In(loc)),
		Exit:       utils.FormatClock(exit.In(loc)),
		Hours:      utils.HoursBetween(entry, exit),
		Status:     status,
		EntryCount: entryCount,
		ExitCount:  exitCount,
	}
}

// Flatten converts person records into the storage shape.
func Flatten(persons []*attendance.PersonRecord) []attendance.FlatRecord {
	var flat []attendance.FlatRecord
	for _, person := range persons {
		for _, day := range person.DailyRecords {
			flat = append(flat, attendance.FlatRecord{
				PersonnelID:   person.ID,
				PersonnelName: person.Name,
				Date:          day.Date,
				Entry:         day.Entry,
				Exit:          day.Exit,
				Hours:         day.Hours,
				Status:        day.Status,
				EntryCount:    day.EntryCount,
				ExitCount:     day.ExitCount,
			})
		}
	}
	return flat
}
