package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/asistencia/asistencia-backend-go/internal/domain/calendar"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRepository struct {
	db *database.DB
}

// List implements calendar.HolidayRepository.
func (r *holidayRepository) List(ctx context.Context) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, to_char(date, 'YYYY-MM-DD'), name, created_at
		FROM holidays
		ORDER BY date
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	holidays := []calendar.Holiday{}
	for rows.Next() {
		var h calendar.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}

// Create implements calendar.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, holiday calendar.Holiday) (calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, date, name)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	if err := q.QueryRow(ctx, query, holiday.ID, holiday.Date, holiday.Name).Scan(&holiday.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return calendar.Holiday{}, calendar.ErrHolidayExists
		}
		return calendar.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return holiday, nil
}

// Delete implements calendar.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrHolidayNotFound
	}
	return nil
}

func NewHolidayRepository(db *database.DB) calendar.HolidayRepository {
	return &holidayRepository{db: db}
}

type workingDayRepository struct {
	db *database.DB
}

// Get implements calendar.WorkingDayRepository.
func (r *workingDayRepository) Get(ctx context.Context, year, month int) (*calendar.WorkingDayOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT year, month, working_dates, updated_at
		FROM working_day_overrides
		WHERE year = $1 AND month = $2
	`

	var o calendar.WorkingDayOverride
	err := q.QueryRow(ctx, query, year, month).Scan(&o.Year, &o.Month, &o.WorkingDates, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get working-day override: %w", err)
	}
	if o.WorkingDates == nil {
		o.WorkingDates = []string{}
	}
	return &o, nil
}

// ListByYear implements calendar.WorkingDayRepository.
func (r *workingDayRepository) ListByYear(ctx context.Context, year int) (map[int]*calendar.WorkingDayOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT year, month, working_dates, updated_at
		FROM working_day_overrides
		WHERE year = $1
		ORDER BY month
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list working-day overrides: %w", err)
	}
	defer rows.Close()

	overrides := make(map[int]*calendar.WorkingDayOverride)
	for rows.Next() {
		var o calendar.WorkingDayOverride
		if err := rows.Scan(&o.Year, &o.Month, &o.WorkingDates, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan working-day override: %w", err)
		}
		if o.WorkingDates == nil {
			o.WorkingDates = []string{}
		}
		overrides[o.Month] = &o
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate working-day overrides: %w", err)
	}

	return overrides, nil
}

// Upsert implements calendar.WorkingDayRepository.
func (r *workingDayRepository) Upsert(ctx context.Context, override calendar.WorkingDayOverride) (calendar.WorkingDayOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO working_day_overrides (year, month, working_dates, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (year, month) DO UPDATE
		SET working_dates = EXCLUDED.working_dates, updated_at = EXCLUDED.updated_at
	`

	if _, err := q.Exec(ctx, query, override.Year, override.Month, override.WorkingDates, override.UpdatedAt); err != nil {
		return calendar.WorkingDayOverride{}, fmt.Errorf("failed to save working-day override: %w", err)
	}
	return override, nil
}

// Delete implements calendar.WorkingDayRepository.
func (r *workingDayRepository) Delete(ctx context.Context, year, month int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM working_day_overrides WHERE year = $1 AND month = $2`, year, month)
	if err != nil {
		return fmt.Errorf("failed to delete working-day override: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrOverrideNotFound
	}
	return nil
}

func NewWorkingDayRepository(db *database.DB) calendar.WorkingDayRepository {
	return &workingDayRepository{db: db}
}
