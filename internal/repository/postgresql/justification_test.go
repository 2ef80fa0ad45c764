package postgresql

import (
	"context"
	"regexp"
	"testing"

	"github.com/asistencia/asistencia-backend-go/internal/domain/justification"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFilter(t *testing.T) {
	sick := justification.TypeSick
	from, to := "2024-03-01", "2024-03-31"

	where, args := buildFilter(justification.Filter{
		Search:   "gripe",
		Type:     &sick,
		DateFrom: &from,
		DateTo:   &to,
	})

	assert.Equal(t,
		" WHERE (personnel_name ILIKE $1 OR personnel_id ILIKE $1 OR description ILIKE $1) AND type = $2 AND date >= $3 AND date <= $4",
		where)
	assert.Equal(t, []interface{}{"%gripe%", "Enfermo", from, to}, args)

	where, args = buildFilter(justification.Filter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestJustificationRepository_CountByType(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewJustificationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT type, COUNT(*) FROM justifications WHERE personnel_id = $1 GROUP BY type")).
		WithArgs("5").
		WillReturnRows(pgxmock.NewRows([]string{"type", "count"}).
			AddRow("Enfermo", 2).
			AddRow("Vacación", 1))

	counts, err := repo.CountByType(context.Background(), justification.Filter{PersonnelID: "5"})
	require.NoError(t, err)
	assert.Equal(t, 2, counts[justification.TypeSick])
	assert.Equal(t, 1, counts[justification.TypeVacation])
	assert.Equal(t, 0, counts[justification.TypePersonal])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJustificationRepository_Delete_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewJustificationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM justifications WHERE id = $1")).
		WithArgs("x").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "x"), justification.ErrJustificationNotFound)
}
