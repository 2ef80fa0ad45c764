package justification

import (
	"context"
	"testing"

	"github.com/asistencia/asistencia-backend-go/internal/domain/justification"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	justification.JustificationRepository
	created *justification.Justification
	counts  map[justification.Type]int
}

func (f *fakeRepo) Create(ctx context.Context, j justification.Justification) (justification.Justification, error) {
	f.created = &j
	return j, nil
}

func (f *fakeRepo) CountByType(ctx context.Context, filter justification.Filter) (map[justification.Type]int, error) {
	return f.counts, nil
}

func TestCreate_AssignsUUIDv7AndTrims(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewJustificationService(repo)

	resp, err := svc.Create(context.Background(), justification.CreateJustificationRequest{
		PersonnelID:   " 101 ",
		PersonnelName: "Juan Pérez",
		Date:          "2025-03-10",
		Type:          "Enfermo",
		Description:   "  gripe ",
	})
	require.NoError(t, err)

	assert.True(t, validator.IsValidUUID(resp.ID))
	assert.Equal(t, "101", repo.created.PersonnelID)
	assert.Equal(t, "gripe", repo.created.Description)
	assert.Equal(t, justification.TypeSick, repo.created.Type)
}

func TestCreate_RejectsUnknownType(t *testing.T) {
	repo := &fakeRepo{}
	_, err := NewJustificationService(repo).Create(context.Background(), justification.CreateJustificationRequest{
		PersonnelID: "101", PersonnelName: "Juan", Date: "2025-03-10", Type: "Feriado",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "type")
	assert.Nil(t, repo.created)
}

func TestStats_FillsEveryType(t *testing.T) {
	repo := &fakeRepo{counts: map[justification.Type]int{justification.TypeSick: 3, justification.TypePersonal: 1}}

	stats, err := NewJustificationService(repo).Stats(context.Background(), justification.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, map[justification.Type]int{
		justification.TypeSick:     3,
		justification.TypeVacation: 0,
		justification.TypePersonal: 1,
	}, stats.ByType)
}
