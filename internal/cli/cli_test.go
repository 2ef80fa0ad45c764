package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHolidays(t *testing.T) {
	doc := `
holidays:
  - date: 2025-01-01
    name: Año Nuevo
  - date: "2025-05-01"
    name: Día del Trabajo
`
	holidays, err := decodeHolidays(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, "2025-01-01", holidays[0].Date)
	assert.Equal(t, "Día del Trabajo", holidays[1].Name)
}

func TestDecodeHolidays_Empty(t *testing.T) {
	holidays, err := decodeHolidays(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, holidays)
}

func TestDecodeHolidays_InvalidDate(t *testing.T) {
	_, err := decodeHolidays(strings.NewReader("holidays:\n  - date: 01/01/2025\n    name: Año Nuevo\n"))
	assert.ErrorContains(t, err, "holiday #1")
}

func TestPrintRanking_UsesOrdinals(t *testing.T) {
	var buf bytes.Buffer
	printRanking(&buf, attendance.MonthPeriod(2025, 3), []attendance.RankingEntry{
		{Position: 1, MonthlySummaryEntry: attendance.MonthlySummaryEntry{ID: "101", Name: "Juan Pérez", TotalHours: 40.24}},
		{Position: 2, MonthlySummaryEntry: attendance.MonthlySummaryEntry{ID: "7", Name: "Ana", TotalHours: 8}},
	})

	out := buf.String()
	assert.Contains(t, out, "Ranking 2025-03")
	assert.Contains(t, out, "1st")
	assert.Contains(t, out, "2nd")
	assert.Contains(t, out, "40.2 h")
}

func TestPrintImportResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printImportResult(&buf, attendance.ImportResponse{
		Year: 2025, Month: 3, RecordsImported: 1200, PersonnelCount: 12, TimestampFallbacks: 1,
	}))
	assert.Equal(t, "Imported 2025-03: 1,200 records for 12 personnel (0 events skipped, 1 timestamps fell back)\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Ana", truncate("Ana", 5))
	assert.Equal(t, "José…", truncate("José Martínez", 5))
}
