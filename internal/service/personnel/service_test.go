package personnel

import (
	"context"
	"testing"

	"github.com/asistencia/asistencia-backend-go/internal/domain/personnel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	personnel.PersonnelRepository
	stored  map[string]personnel.Personnel
	search  string
	updated *personnel.UpdatePersonnelRequest
}

func (f *fakeRepo) List(ctx context.Context, search string) ([]personnel.Personnel, error) {
	f.search = search
	out := []personnel.Personnel{}
	for _, p := range f.stored {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (personnel.Personnel, error) {
	p, ok := f.stored[id]
	if !ok {
		return personnel.Personnel{}, personnel.ErrPersonnelNotFound
	}
	return p, nil
}

func (f *fakeRepo) Create(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	if _, ok := f.stored[p.ID]; ok {
		return personnel.Personnel{}, personnel.ErrPersonnelExists
	}
	f.stored[p.ID] = p
	return p, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, req personnel.UpdatePersonnelRequest) (personnel.Personnel, error) {
	f.updated = &req
	p := f.stored[id]
	if req.Name != nil {
		p.Name = *req.Name
	}
	return p, nil
}

func strPtr(s string) *string { return &s }

func newService() (*fakeRepo, personnel.PersonnelService) {
	repo := &fakeRepo{stored: map[string]personnel.Personnel{
		"101": {ID: "101", Name: "Juan Pérez", StartDate: strPtr("2024-01-10")},
	}}
	return repo, NewPersonnelService(repo)
}

func TestList_TrimsSearch(t *testing.T) {
	repo, svc := newService()

	people, err := svc.List(context.Background(), "  juan ")
	require.NoError(t, err)
	assert.Len(t, people, 1)
	assert.Equal(t, "juan", repo.search)
}

func TestCreate(t *testing.T) {
	_, svc := newService()

	created, err := svc.Create(context.Background(), personnel.CreatePersonnelRequest{ID: "7", Name: "  Ana  "})
	require.NoError(t, err)
	assert.Equal(t, "Ana", created.Name)

	_, err = svc.Create(context.Background(), personnel.CreatePersonnelRequest{ID: "101", Name: "Otro"})
	assert.ErrorIs(t, err, personnel.ErrPersonnelExists)
}

func TestUpdate_ChecksRangeAgainstStoredStart(t *testing.T) {
	repo, svc := newService()

	_, err := svc.Update(context.Background(), personnel.UpdatePersonnelRequest{ID: "101", EndDate: strPtr("2023-12-31")})
	assert.ErrorIs(t, err, personnel.ErrInvalidDateRange)
	assert.Nil(t, repo.updated)

	updated, err := svc.Update(context.Background(), personnel.UpdatePersonnelRequest{ID: "101", Name: strPtr(" Juan P. "), EndDate: strPtr("2025-06-30")})
	require.NoError(t, err)
	assert.Equal(t, "Juan P.", updated.Name)
}

func TestUpdate_NotFound(t *testing.T) {
	_, svc := newService()

	_, err := svc.Update(context.Background(), personnel.UpdatePersonnelRequest{ID: "999", Name: strPtr("X")})
	assert.ErrorIs(t, err, personnel.ErrPersonnelNotFound)
}
