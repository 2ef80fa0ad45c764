package postgresql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/database"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recordColumns = []string{
	"personnel_id", "personnel_name", "date", "entry_time", "exit_time",
	"hours", "status", "entry_count", "exit_count",
}

func newMockDB(t *testing.T) (pgxmock.PgxPoolIface, *database.DB) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, database.New(mock)
}

func marchRange() (time.Time, time.Time) {
	return attendance.MonthPeriod(2024, 3).Range(time.UTC)
}

func TestAttendanceRepository_ListByRange_GroupsAndOrdersPersonnel(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewAttendanceRepository(db)
	start, end := marchRange()

	rows := pgxmock.NewRows(recordColumns).
		AddRow("10", "Diez", "2024-03-04", "08:00:00", "17:00:00", 9.0, "complete", 1, 1).
		AddRow("2", "Dos", "2024-03-04", "12:00:00", "18:00:00", 6.0, "missing-entry", 0, 1).
		AddRow("2", "Dos", "2024-03-05", "08:30:00", "12:00:00", 0.0, "missing-exit", 1, 0)

	mock.ExpectQuery(regexp.QuoteMeta("FROM attendance_records WHERE date >= $1 AND date < $2 ORDER BY personnel_id, date")).
		WithArgs(start, end).
		WillReturnRows(rows)

	persons, err := repo.ListByRange(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, persons, 2)

	assert.Equal(t, "2", persons[0].ID)
	assert.Equal(t, "10", persons[1].ID)
	require.Len(t, persons[0].DailyRecords, 2)
	assert.Equal(t, attendance.DayMissingEntry, persons[0].DailyRecords[0].Status)
	assert.Equal(t, "2024-03-05", persons[0].DailyRecords[1].Date)
	assert.Equal(t, 9.0, persons[1].DailyRecords[0].Hours)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_ListByRange_UnknownStatus(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewAttendanceRepository(db)
	start, end := marchRange()

	mock.ExpectQuery(regexp.QuoteMeta("FROM attendance_records")).
		WithArgs(start, end).
		WillReturnRows(pgxmock.NewRows(recordColumns).
			AddRow("1", "Uno", "2024-03-04", "08:00:00", "17:00:00", 9.0, "late", 1, 1))

	_, err := repo.ListByRange(context.Background(), start, end)
	assert.True(t, errors.Is(err, attendance.ErrUnknownDayStatus))
}

func TestAttendanceRepository_GetPersonnelByRange_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewAttendanceRepository(db)
	start, end := marchRange()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE personnel_id = $1 AND date >= $2 AND date < $3")).
		WithArgs("99", start, end).
		WillReturnRows(pgxmock.NewRows(recordColumns))

	_, err := repo.GetPersonnelByRange(context.Background(), "99", start, end)
	assert.True(t, errors.Is(err, attendance.ErrPersonnelAttendanceNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_InsertRecords(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewAttendanceRepository(db)

	records := []attendance.FlatRecord{
		{PersonnelID: "1", PersonnelName: "Uno", Date: "2024-03-04", Entry: "08:00:00", Exit: "17:00:00", Hours: 9, Status: attendance.DayComplete, EntryCount: 1, ExitCount: 1},
		{PersonnelID: "1", PersonnelName: "Uno", Date: "2024-03-05", Entry: "12:00:00", Exit: "12:00:00", Hours: 0, Status: attendance.DayIncomplete},
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO attendance_records")).
		WithArgs(
			"1", "Uno", "2024-03-04", "08:00:00", "17:00:00", 9.0, "complete", 1, 1,
			"1", "Uno", "2024-03-05", "12:00:00", "12:00:00", 0.0, "incomplete", 0, 0,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	require.NoError(t, repo.InsertRecords(context.Background(), records))
	require.NoError(t, repo.InsertRecords(context.Background(), nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_DeleteByRange(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewAttendanceRepository(db)
	start, end := marchRange()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM attendance_records WHERE date >= $1 AND date < $2")).
		WithArgs(start, end).
		WillReturnResult(pgxmock.NewResult("DELETE", 42))

	n, err := repo.DeleteByRange(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_ListImportedMonths(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewAttendanceRepository(db)
	importedAt := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	source := "imports/2024/03/x.csv"

	mock.ExpectQuery(regexp.QuoteMeta("FROM attendance_imports ORDER BY year, month")).
		WillReturnRows(pgxmock.NewRows([]string{"year", "month", "record_count", "source_file", "imported_at"}).
			AddRow(2024, 2, 10, &source, importedAt).
			AddRow(2024, 3, 12, &source, importedAt))

	months, err := repo.ListImportedMonths(context.Background())
	require.NoError(t, err)
	require.Len(t, months, 2)
	assert.Equal(t, 3, months[1].Month)
	assert.Equal(t, 12, months[1].RecordCount)
	require.NoError(t, mock.ExpectationsWereMet())
}
