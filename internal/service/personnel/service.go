package personnel

import (
	"context"
	"fmt"
	"strings"

	"github.com/asistencia/asistencia-backend-go/internal/domain/personnel"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/validator"
)

type PersonnelServiceImpl struct {
	personnel.PersonnelRepository
}

func NewPersonnelService(repo personnel.PersonnelRepository) personnel.PersonnelService {
	return &PersonnelServiceImpl{PersonnelRepository: repo}
}

// List implements personnel.PersonnelService.
func (s *PersonnelServiceImpl) List(ctx context.Context, search string) ([]personnel.PersonnelResponse, error) {
	people, err := s.PersonnelRepository.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("failed to list personnel: %w", err)
	}

	resp := make([]personnel.PersonnelResponse, 0, len(people))
	for _, p := range people {
		resp = append(resp, personnel.ToResponse(p))
	}
	return resp, nil
}

// Get implements personnel.PersonnelService.
func (s *PersonnelServiceImpl) Get(ctx context.Context, id string) (personnel.PersonnelResponse, error) {
	p, err := s.PersonnelRepository.GetByID(ctx, id)
	if err != nil {
		return personnel.PersonnelResponse{}, err
	}
	return personnel.ToResponse(p), nil
}

// Create implements personnel.PersonnelService.
func (s *PersonnelServiceImpl) Create(ctx context.Context, req personnel.CreatePersonnelRequest) (personnel.PersonnelResponse, error) {
	if err := req.Validate(); err != nil {
		return personnel.PersonnelResponse{}, err
	}

	created, err := s.PersonnelRepository.Create(ctx, personnel.Personnel{
		ID:        req.ID,
		Name:      strings.TrimSpace(req.Name),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return personnel.PersonnelResponse{}, err
	}
	return personnel.ToResponse(created), nil
}

// Update implements personnel.PersonnelService.
func (s *PersonnelServiceImpl) Update(ctx context.Context, req personnel.UpdatePersonnelRequest) (personnel.PersonnelResponse, error) {
	if err := req.Validate(); err != nil {
		return personnel.PersonnelResponse{}, err
	}

	current, err := s.PersonnelRepository.GetByID(ctx, req.ID)
	if err != nil {
		return personnel.PersonnelResponse{}, err
	}

	// only one side may change; check the range against the stored other side
	start, end := current.StartDate, current.EndDate
	if req.StartDate != nil {
		start = req.StartDate
	}
	if req.EndDate != nil {
		end = req.EndDate
	}
	if start != nil && end != nil {
		startDate, _ := validator.ParseDate(*start)
		endDate, _ := validator.ParseDate(*end)
		if endDate.Before(startDate) {
			return personnel.PersonnelResponse{}, personnel.ErrInvalidDateRange
		}
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}

	updated, err := s.PersonnelRepository.Update(ctx, req.ID, req)
	if err != nil {
		return personnel.PersonnelResponse{}, err
	}
	return personnel.ToResponse(updated), nil
}

// Delete implements personnel.PersonnelService.
func (s *PersonnelServiceImpl) Delete(ctx context.Context, id string) error {
	return s.PersonnelRepository.Delete(ctx, id)
}
