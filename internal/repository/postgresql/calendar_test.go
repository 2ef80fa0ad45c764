package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/asistencia/asistencia-backend-go/internal/domain/calendar"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkingDayRepository_Get_NoOverride(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewWorkingDayRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM working_day_overrides WHERE year = $1 AND month = $2")).
		WithArgs(2024, 3).
		WillReturnError(pgx.ErrNoRows)

	o, err := repo.Get(context.Background(), 2024, 3)
	require.NoError(t, err)
	assert.Nil(t, o)
}

func TestWorkingDayRepository_ListByYear(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewWorkingDayRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM working_day_overrides WHERE year = $1 ORDER BY month")).
		WithArgs(2024).
		WillReturnRows(pgxmock.NewRows([]string{"year", "month", "working_dates", "updated_at"}).
			AddRow(2024, 3, []string{"2024-03-04", "2024-03-05"}, now).
			AddRow(2024, 8, []string{}, now))

	overrides, err := repo.ListByYear(context.Background(), 2024)
	require.NoError(t, err)
	require.Len(t, overrides, 2)
	assert.Equal(t, []string{"2024-03-04", "2024-03-05"}, overrides[3].WorkingDates)
	assert.NotNil(t, overrides[8])
	assert.Empty(t, overrides[8].WorkingDates)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHolidayRepository_Create_Duplicate(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewHolidayRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO holidays (id, date, name)")).
		WithArgs("h1", "2024-05-01", "Día del Trabajo").
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err := repo.Create(context.Background(), calendar.Holiday{ID: "h1", Date: "2024-05-01", Name: "Día del Trabajo"})
	assert.ErrorIs(t, err, calendar.ErrHolidayExists)
}

func TestWorkingDayRepository_Delete_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewWorkingDayRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM working_day_overrides")).
		WithArgs(2024, 3).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 2024, 3), calendar.ErrOverrideNotFound)
}
