package attendance

import (
	"log/slog"
	"sort"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
)

const (
	absentTime = "12:00:00"

	warningAbsences  = 2
	criticalAbsences = 5
)

// CalculateStatistics aggregates hours and completeness over days.
func CalculateStatistics(days []attendance.DayRecord) attendance.Statistics {
	var stats attendance.Statistics

	for _, day := range days {
		if day.Hours > 0 {
			stats.TotalHours += day.Hours
			stats.DaysWorked++
		}

		switch day.Status {
		case attendance.DayComplete:
			stats.DaysWithCompleteRecords++
		case attendance.DayIncomplete:
			// zero observed events; not counted as a trackable gap
		case attendance.DayMissingEntry, attendance.DayMissingExit, attendance.DayAbsent:
			stats.DaysWithIncompleteRecords++
		default:
			slog.Warn("skipping day with unknown status", "date", day.Date, "status", day.Status)
		}
	}

	if stats.DaysWorked > 0 {
		stats.AverageHours = stats.TotalHours / float64(stats.DaysWorked)
	}

	return stats
}

// InjectAbsences appends an absent record for every working day the person has
// no record for, then re-sorts the days by date. Running it twice is a no-op
// beyond the sort.
func InjectAbsences(person *attendance.PersonRecord, workingDays []string) {
	present := make(map[string]struct{}, len(person.DailyRecords))
	for _, day := range person.DailyRecords {
		present[day.Date] = struct{}{}
	}

	for _, date := range workingDays {
		if _, ok := present[date]; ok {
			continue
		}
		present[date] = struct{}{}
		person.DailyRecords = append(person.DailyRecords, attendance.DayRecord{
			Date:   date,
			Entry:  absentTime,
			Exit:   absentTime,
			Hours:  0,
			Status: attendance.DayAbsent,
		})
	}

	sort.SliceStable(person.DailyRecords, func(i, j int) bool {
		return person.DailyRecords[i].Date < person.DailyRecords[j].Date
	})
}

// ClassifyMonth applies the absence thresholds; first match wins.
func ClassifyMonth(daysWorked, daysAbsent int) attendance.SummaryStatus {
	switch {
	case daysWorked == 0:
		return attendance.Critical
	case daysAbsent > criticalAbsences:
		return attendance.Critical
	case daysAbsent > warningAbsences:
		return attendance.Warning
	default:
		return attendance.OnTrack
	}
}

func countAbsent(days []attendance.DayRecord) int {
	n := 0
	for _, day := range days {
		if day.Status == attendance.DayAbsent {
			n++
		}
	}
	return n
}

// CalculateMonthlySummary injects absences into every person (mutating them),
// computes their statistics and returns the entries sorted by total hours,
// keeping input order between equal totals.
func CalculateMonthlySummary(personnel []*attendance.PersonRecord, workingDays []string) attendance.MonthlySummary {
	summary := make([]attendance.MonthlySummaryEntry, 0, len(personnel))

	for _, person := range personnel {
		InjectAbsences(person, workingDays)

		stats := CalculateStatistics(person.DailyRecords)
		person.Statistics = stats
		daysAbsent := countAbsent(person.DailyRecords)

		summary = append(summary, attendance.MonthlySummaryEntry{
			ID:                person.ID,
			Name:              person.Name,
			TotalHours:        stats.TotalHours,
			AccumulatedHours:  stats.TotalHours,
			DaysWorked:        stats.DaysWorked,
			DaysAbsent:        daysAbsent,
			AverageHours:      stats.AverageHours,
			Status:            ClassifyMonth(stats.DaysWorked, daysAbsent),
			IncompleteRecords: stats.DaysWithIncompleteRecords,
		})
	}

	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].TotalHours > summary[j].TotalHours
	})

	return attendance.MonthlySummary{
		Summary:          summary,
		WorkingDaysCount: len(workingDays),
	}
}

// CalculateRanking numbers the monthly summary from 1.
func CalculateRanking(personnel []*attendance.PersonRecord, workingDays []string) []attendance.RankingEntry {
	summary := CalculateMonthlySummary(personnel, workingDays).Summary

	ranking := make([]attendance.RankingEntry, len(summary))
	for i, entry := range summary {
		ranking[i] = attendance.RankingEntry{
			Position:            i + 1,
			MonthlySummaryEntry: entry,
		}
	}
	return ranking
}

// MissingDays lists the working days inside period with no stored record.
func MissingDays(person *attendance.PersonRecord, workingDays []string, period attendance.Period) []string {
	worked := make(map[string]struct{}, len(person.DailyRecords))
	for _, day := range person.DailyRecords {
		if inPeriod(day.Date, period) {
			worked[day.Date] = struct{}{}
		}
	}

	missing := []string{}
	for _, date := range workingDays {
		if _, ok := worked[date]; !ok {
			missing = append(missing, date)
		}
	}
	return missing
}

// IncompleteRecords returns the days inside period that are not complete.
func IncompleteRecords(person *attendance.PersonRecord, period attendance.Period) []attendance.DayRecord {
	days := []attendance.DayRecord{}
	for _, day := range person.DailyRecords {
		if inPeriod(day.Date, period) && day.Status != attendance.DayComplete {
			days = append(days, day)
		}
	}
	return days
}

func inPeriod(date string, period attendance.Period) bool {
	if period.IsYear() {
		return len(date) >= 4 && date[:4] == period.String()
	}
	return len(date) >= 7 && date[:7] == period.String()
}
