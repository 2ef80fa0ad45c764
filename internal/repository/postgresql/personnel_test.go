package postgresql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/asistencia/asistencia-backend-go/internal/domain/personnel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonnelRepository_Create_Duplicate(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPersonnelRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO personnel (id, name, start_date, end_date)")).
		WithArgs("7", "Siete", (*string)(nil), (*string)(nil)).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err := repo.Create(context.Background(), personnel.Personnel{ID: "7", Name: "Siete"})
	assert.True(t, errors.Is(err, personnel.ErrPersonnelExists))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonnelRepository_GetByID_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPersonnelRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM personnel WHERE id = $1")).
		WithArgs("404").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "404")
	assert.True(t, errors.Is(err, personnel.ErrPersonnelNotFound))
}

func TestPersonnelRepository_List_Search(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPersonnelRepository(db)
	now := time.Now().UTC()
	start := "2023-01-09"

	mock.ExpectQuery(regexp.QuoteMeta("WHERE name ILIKE $1 OR id ILIKE $1 ORDER BY name, id")).
		WithArgs("%ana%").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "start_date", "end_date", "created_at", "updated_at"}).
			AddRow("1", "Ana", &start, nil, now, now))

	people, err := repo.List(context.Background(), "ana")
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "Ana", people[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonnelRepository_UpsertNames(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPersonnelRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (id) DO UPDATE")).
		WithArgs("1", "Uno", "2", "Dos").
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	err := repo.UpsertNames(context.Background(), []personnel.Personnel{{ID: "1", Name: "Uno"}, {ID: "2", Name: "Dos"}})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonnelRepository_Delete_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPersonnelRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM personnel WHERE id = $1")).
		WithArgs("1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "1")
	assert.True(t, errors.Is(err, personnel.ErrPersonnelNotFound))
}
