package attendance

import (
	"fmt"
	"testing"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(date string, hours float64, status attendance.DayStatus) attendance.DayRecord {
	return attendance.DayRecord{Date: date, Entry: "08:00:00", Exit: "16:00:00", Hours: hours, Status: status}
}

func marchWorkingDays(n int) []string {
	days := make([]string, n)
	for i := range days {
		days[i] = fmt.Sprintf("2025-03-%02d", i+1)
	}
	return days
}

func TestCalculateStatistics_Empty(t *testing.T) {
	assert.Equal(t, attendance.Statistics{}, CalculateStatistics(nil))
	assert.Equal(t, attendance.Statistics{}, CalculateStatistics([]attendance.DayRecord{}))
}

func TestCalculateStatistics(t *testing.T) {
	stats := CalculateStatistics([]attendance.DayRecord{
		day("2025-03-03", 8, attendance.DayComplete),
		day("2025-03-04", 6, attendance.DayMissingExit),
		day("2025-03-05", 0, attendance.DayIncomplete),
		day("2025-03-06", 0, attendance.DayAbsent),
		day("2025-03-07", 4, attendance.DayMissingEntry),
	})

	assert.InDelta(t, 18, stats.TotalHours, 1e-9)
	assert.Equal(t, 3, stats.DaysWorked)
	assert.InDelta(t, 6, stats.AverageHours, 1e-9)
	assert.Equal(t, 1, stats.DaysWithCompleteRecords)
	// incomplete (zero events) is not a trackable gap
	assert.Equal(t, 3, stats.DaysWithIncompleteRecords)
}

func TestCalculateStatistics_UnknownStatusNotCountedAsGap(t *testing.T) {
	stats := CalculateStatistics([]attendance.DayRecord{
		day("2025-03-03", 8, attendance.DayComplete),
		day("2025-03-04", 5, attendance.DayStatus("half-day")),
	})

	assert.Equal(t, 1, stats.DaysWithCompleteRecords)
	assert.Equal(t, 0, stats.DaysWithIncompleteRecords)
	assert.Equal(t, 2, stats.DaysWorked)
}

func TestInjectAbsences(t *testing.T) {
	person := &attendance.PersonRecord{
		ID: "101",
		DailyRecords: []attendance.DayRecord{
			day("2025-03-12", 8, attendance.DayComplete),
		},
	}
	workingDays := []string{"2025-03-10", "2025-03-11", "2025-03-12"}

	InjectAbsences(person, workingDays)

	require.Len(t, person.DailyRecords, 3)
	injected := person.DailyRecords[0]
	assert.Equal(t, attendance.DayRecord{
		Date: "2025-03-10", Entry: "12:00:00", Exit: "12:00:00", Hours: 0, Status: attendance.DayAbsent,
	}, injected)
	assert.Equal(t, "2025-03-12", person.DailyRecords[2].Date)
	assert.Equal(t, attendance.DayComplete, person.DailyRecords[2].Status)
}

func TestInjectAbsences_IdempotentAndSuperset(t *testing.T) {
	person := &attendance.PersonRecord{
		DailyRecords: []attendance.DayRecord{
			day("2025-03-05", 8, attendance.DayComplete),
			day("2025-03-01", 3, attendance.DayMissingExit),
		},
	}
	workingDays := marchWorkingDays(10)

	InjectAbsences(person, workingDays)
	once := append([]attendance.DayRecord(nil), person.DailyRecords...)
	InjectAbsences(person, workingDays)

	assert.Equal(t, once, person.DailyRecords)

	dates := map[string]bool{}
	for _, d := range person.DailyRecords {
		dates[d.Date] = true
	}
	for _, wd := range workingDays {
		assert.True(t, dates[wd], wd)
	}
}

func TestClassifyMonth(t *testing.T) {
	tests := []struct {
		worked, absent int
		want           attendance.SummaryStatus
	}{
		{0, 0, attendance.Critical},
		{10, 6, attendance.Critical},
		{0, 6, attendance.Critical},
		{10, 5, attendance.Warning},
		{10, 3, attendance.Warning},
		{10, 2, attendance.OnTrack},
		{20, 0, attendance.OnTrack},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyMonth(tt.worked, tt.absent), "worked=%d absent=%d", tt.worked, tt.absent)
	}
}

func TestCalculateMonthlySummary_FourteenAbsencesIsCritical(t *testing.T) {
	workingDays := marchWorkingDays(20)
	records := []attendance.DayRecord{}
	for _, d := range workingDays[:6] {
		records = append(records, day(d, 8, attendance.DayComplete))
	}
	person := &attendance.PersonRecord{ID: "101", Name: "Juan Pérez", DailyRecords: records}

	summary := CalculateMonthlySummary([]*attendance.PersonRecord{person}, workingDays)

	require.Len(t, summary.Summary, 1)
	entry := summary.Summary[0]
	assert.Equal(t, 14, entry.DaysAbsent)
	assert.Equal(t, 6, entry.DaysWorked)
	assert.Equal(t, attendance.Critical, entry.Status)
	assert.Equal(t, 20, summary.WorkingDaysCount)
	assert.Equal(t, entry.TotalHours, entry.AccumulatedHours)
	assert.Equal(t, 14, entry.IncompleteRecords)
}

func TestCalculateMonthlySummary_NoRecordsIsCritical(t *testing.T) {
	person := &attendance.PersonRecord{ID: "9", Name: "Nadie"}
	summary := CalculateMonthlySummary([]*attendance.PersonRecord{person}, nil)

	entry := summary.Summary[0]
	assert.Equal(t, 0, entry.DaysWorked)
	assert.Zero(t, entry.AverageHours)
	assert.Equal(t, attendance.Critical, entry.Status)
}

func TestCalculateRanking_SortedAndNumbered(t *testing.T) {
	workingDays := []string{"2025-03-03", "2025-03-04"}
	persons := []*attendance.PersonRecord{
		{ID: "1", Name: "Uno", DailyRecords: []attendance.DayRecord{day("2025-03-03", 4, attendance.DayComplete)}},
		{ID: "2", Name: "Dos", DailyRecords: []attendance.DayRecord{day("2025-03-03", 9, attendance.DayComplete)}},
		{ID: "3", Name: "Tres", DailyRecords: []attendance.DayRecord{day("2025-03-03", 4, attendance.DayComplete)}},
		{ID: "4", Name: "Cuatro"},
	}

	ranking := CalculateRanking(persons, workingDays)

	require.Len(t, ranking, 4)
	for i, r := range ranking {
		assert.Equal(t, i+1, r.Position)
		if i > 0 {
			assert.LessOrEqual(t, r.TotalHours, ranking[i-1].TotalHours)
		}
	}
	assert.Equal(t, "2", ranking[0].ID)
	// ties keep input order
	assert.Equal(t, "1", ranking[1].ID)
	assert.Equal(t, "3", ranking[2].ID)
	assert.Equal(t, "4", ranking[3].ID)
}

func TestMissingDaysAndIncompleteRecords(t *testing.T) {
	person := &attendance.PersonRecord{
		DailyRecords: []attendance.DayRecord{
			day("2025-02-28", 8, attendance.DayMissingExit),
			day("2025-03-03", 8, attendance.DayComplete),
			day("2025-03-04", 3, attendance.DayMissingExit),
		},
	}
	period := attendance.MonthPeriod(2025, 3)

	missing := MissingDays(person, []string{"2025-03-03", "2025-03-04", "2025-03-05"}, period)
	assert.Equal(t, []string{"2025-03-05"}, missing)

	incomplete := IncompleteRecords(person, period)
	require.Len(t, incomplete, 1)
	assert.Equal(t, "2025-03-04", incomplete[0].Date)

	assert.Len(t, IncompleteRecords(person, attendance.YearPeriod(2025)), 2)
}
