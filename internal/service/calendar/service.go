package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/asistencia/asistencia-backend-go/internal/domain/calendar"
	"github.com/google/uuid"
)

type CalendarServiceImpl struct {
	calendar.HolidayRepository
	calendar.WorkingDayRepository
}

func NewCalendarService(holidayRepo calendar.HolidayRepository, workingDayRepo calendar.WorkingDayRepository) calendar.CalendarService {
	return &CalendarServiceImpl{
		HolidayRepository:    holidayRepo,
		WorkingDayRepository: workingDayRepo,
	}
}

// ListHolidays implements calendar.CalendarService.
func (s *CalendarServiceImpl) ListHolidays(ctx context.Context) ([]calendar.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	resp := make([]calendar.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		resp = append(resp, toHolidayResponse(h))
	}
	return resp, nil
}

// CreateHoliday implements calendar.CalendarService.
func (s *CalendarServiceImpl) CreateHoliday(ctx context.Context, req calendar.CreateHolidayRequest) (calendar.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.HolidayResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return calendar.HolidayResponse{}, fmt.Errorf("failed to generate holiday id: %w", err)
	}

	created, err := s.HolidayRepository.Create(ctx, calendar.Holiday{
		ID:   id.String(),
		Date: req.Date,
		Name: req.Name,
	})
	if err != nil {
		return calendar.HolidayResponse{}, err
	}

	return toHolidayResponse(created), nil
}

// DeleteHoliday implements calendar.CalendarService.
func (s *CalendarServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}

// GetWorkingDays implements calendar.CalendarService.
func (s *CalendarServiceImpl) GetWorkingDays(ctx context.Context, year, month int) (*calendar.WorkingDaysResponse, error) {
	override, err := s.WorkingDayRepository.Get(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get working days: %w", err)
	}
	if override == nil {
		return nil, nil
	}

	return &calendar.WorkingDaysResponse{
		Year:         override.Year,
		Month:        override.Month,
		WorkingDates: override.WorkingDates,
	}, nil
}

// SetWorkingDays implements calendar.CalendarService.
func (s *CalendarServiceImpl) SetWorkingDays(ctx context.Context, req calendar.SetWorkingDaysRequest) (calendar.WorkingDaysResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.WorkingDaysResponse{}, err
	}

	dates := dedupeSorted(req.WorkingDates)
	saved, err := s.WorkingDayRepository.Upsert(ctx, calendar.WorkingDayOverride{
		Year:         req.Year,
		Month:        req.Month,
		WorkingDates: dates,
		UpdatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return calendar.WorkingDaysResponse{}, fmt.Errorf("failed to save working days: %w", err)
	}

	return calendar.WorkingDaysResponse{
		Year:         saved.Year,
		Month:        saved.Month,
		WorkingDates: saved.WorkingDates,
	}, nil
}

// ClearWorkingDays implements calendar.CalendarService.
func (s *CalendarServiceImpl) ClearWorkingDays(ctx context.Context, year, month int) error {
	return s.WorkingDayRepository.Delete(ctx, year, month)
}

// WorkingDays implements calendar.CalendarService.
func (s *CalendarServiceImpl) WorkingDays(ctx context.Context, year, month int) ([]string, error) {
	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	set := calendar.NewHolidaySet(holidays)

	if month == 0 {
		overrides, err := s.WorkingDayRepository.ListByYear(ctx, year)
		if err != nil {
			return nil, fmt.Errorf("failed to list working-day overrides: %w", err)
		}
		return ResolveYear(year, set, overrides), nil
	}

	override, err := s.WorkingDayRepository.Get(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get working-day override: %w", err)
	}
	return ResolveMonth(year, month, set, override), nil
}

func toHolidayResponse(h calendar.Holiday) calendar.HolidayResponse {
	return calendar.HolidayResponse{
		ID:   h.ID,
		Date: h.Date,
		Name: h.Name,
	}
}

func dedupeSorted(dates []string) []string {
	seen := make(map[string]struct{}, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
