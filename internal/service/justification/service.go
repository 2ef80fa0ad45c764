package justification

import (
	"context"
	"fmt"
	"strings"

	"github.com/asistencia/asistencia-backend-go/internal/domain/justification"
	"github.com/google/uuid"
)

type JustificationServiceImpl struct {
	justification.JustificationRepository
}

func NewJustificationService(repo justification.JustificationRepository) justification.JustificationService {
	return &JustificationServiceImpl{JustificationRepository: repo}
}

// List implements justification.JustificationService.
func (s *JustificationServiceImpl) List(ctx context.Context, filter justification.Filter) ([]justification.JustificationResponse, error) {
	filter.Search = strings.TrimSpace(filter.Search)

	items, err := s.JustificationRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list justifications: %w", err)
	}

	resp := make([]justification.JustificationResponse, 0, len(items))
	for _, j := range items {
		resp = append(resp, justification.ToResponse(j))
	}
	return resp, nil
}

// Get implements justification.JustificationService.
func (s *JustificationServiceImpl) Get(ctx context.Context, id string) (justification.JustificationResponse, error) {
	j, err := s.JustificationRepository.GetByID(ctx, id)
	if err != nil {
		return justification.JustificationResponse{}, err
	}
	return justification.ToResponse(j), nil
}

// Create implements justification.JustificationService.
func (s *JustificationServiceImpl) Create(ctx context.Context, req justification.CreateJustificationRequest) (justification.JustificationResponse, error) {
	if err := req.Validate(); err != nil {
		return justification.JustificationResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return justification.JustificationResponse{}, fmt.Errorf("failed to generate justification id: %w", err)
	}

	created, err := s.JustificationRepository.Create(ctx, justification.Justification{
		ID:            id.String(),
		PersonnelID:   strings.TrimSpace(req.PersonnelID),
		PersonnelName: strings.TrimSpace(req.PersonnelName),
		Date:          req.Date,
		Type:          justification.Type(req.Type),
		Description:   strings.TrimSpace(req.Description),
	})
	if err != nil {
		return justification.JustificationResponse{}, fmt.Errorf("failed to create justification: %w", err)
	}
	return justification.ToResponse(created), nil
}

// Update implements justification.JustificationService.
func (s *JustificationServiceImpl) Update(ctx context.Context, req justification.UpdateJustificationRequest) (justification.JustificationResponse, error) {
	if err := req.Validate(); err != nil {
		return justification.JustificationResponse{}, err
	}

	updated, err := s.JustificationRepository.Update(ctx, req)
	if err != nil {
		return justification.JustificationResponse{}, err
	}
	return justification.ToResponse(updated), nil
}

// Delete implements justification.JustificationService.
func (s *JustificationServiceImpl) Delete(ctx context.Context, id string) error {
	return s.JustificationRepository.Delete(ctx, id)
}

// Stats implements justification.JustificationService.
func (s *JustificationServiceImpl) Stats(ctx context.Context, filter justification.Filter) (justification.StatsResponse, error) {
	counts, err := s.JustificationRepository.CountByType(ctx, filter)
	if err != nil {
		return justification.StatsResponse{}, fmt.Errorf("failed to count justifications: %w", err)
	}

	stats := justification.StatsResponse{ByType: make(map[justification.Type]int, len(justification.Types))}
	for _, t := range justification.Types {
		stats.ByType[t] = counts[t]
		stats.Total += counts[t]
	}
	return stats, nil
}
