package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/asistencia/asistencia-backend-go/internal/domain/justification"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type justificationRepository struct {
	db *database.DB
}

const selectJustifications = `
		SELECT id, personnel_id, personnel_name, to_char(date, 'YYYY-MM-DD'), type, description, created_at, updated_at
		FROM justifications
`

func scanJustification(row pgx.Row) (justification.Justification, error) {
	var (
		j       justification.Justification
		rawType string
	)
	if err := row.Scan(&j.ID, &j.PersonnelID, &j.PersonnelName, &j.Date, &rawType, &j.Description, &j.CreatedAt, &j.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return justification.Justification{}, justification.ErrJustificationNotFound
		}
		return justification.Justification{}, fmt.Errorf("failed to scan justification: %w", err)
	}

	t, err := justification.ParseType(rawType)
	if err != nil {
		return justification.Justification{}, fmt.Errorf("justification %s: %w", j.ID, err)
	}
	j.Type = t
	return j, nil
}

// buildFilter renders the WHERE clause for filter, numbering parameters from 1.
func buildFilter(filter justification.Filter) (string, []interface{}) {
	conds := []string{}
	args := []interface{}{}
	add := func(cond string, value interface{}) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Search != "" {
		add("(personnel_name ILIKE $%[1]d OR personnel_id ILIKE $%[1]d OR description ILIKE $%[1]d)", "%"+filter.Search+"%")
	}
	if filter.Type != nil {
		add("type = $%d", string(*filter.Type))
	}
	if filter.PersonnelID != "" {
		add("personnel_id = $%d", filter.PersonnelID)
	}
	if filter.DateFrom != nil {
		add("date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		add("date <= $%d", *filter.DateTo)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List implements justification.JustificationRepository.
func (r *justificationRepository) List(ctx context.Context, filter justification.Filter) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	where, args := buildFilter(filter)
	query := selectJustifications + where + ` ORDER BY date DESC, created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list justifications: %w", err)
	}
	defer rows.Close()

	items := []justification.Justification{}
	for rows.Next() {
		j, err := scanJustification(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate justifications: %w", err)
	}

	return items, nil
}

// GetByID implements justification.JustificationRepository.
func (r *justificationRepository) GetByID(ctx context.Context, id string) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)
	return scanJustification(q.QueryRow(ctx, selectJustifications+` WHERE id = $1`, id))
}

// Create implements justification.JustificationRepository.
func (r *justificationRepository) Create(ctx context.Context, j justification.Justification) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO justifications (id, personnel_id, personnel_name, date, type, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, j.ID, j.PersonnelID, j.PersonnelName, j.Date, string(j.Type), j.Description).
		Scan(&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return justification.Justification{}, fmt.Errorf("failed to create justification: %w", err)
	}
	return j, nil
}

// Update implements justification.JustificationRepository.
func (r *justificationRepository) Update(ctx context.Context, req justification.UpdateJustificationRequest) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if req.Date != nil {
		add("date", *req.Date)
	}
	if req.Type != nil {
		add("type", *req.Type)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(`
		UPDATE justifications
		SET %s, updated_at = NOW()
		WHERE id = $%d
		RETURNING id, personnel_id, personnel_name, to_char(date, 'YYYY-MM-DD'), type, description, created_at, updated_at
	`, strings.Join(sets, ", "), len(args))

	return scanJustification(q.QueryRow(ctx, query, args...))
}

// Delete implements justification.JustificationRepository.
func (r *justificationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM justifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete justification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return justification.ErrJustificationNotFound
	}
	return nil
}

// CountByType implements justification.JustificationRepository.
func (r *justificationRepository) CountByType(ctx context.Context, filter justification.Filter) (map[justification.Type]int, error) {
	q := GetQuerier(ctx, r.db)

	where, args := buildFilter(filter)
	query := `SELECT type, COUNT(*) FROM justifications` + where + ` GROUP BY type`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count justifications: %w", err)
	}
	defer rows.Close()

	counts := make(map[justification.Type]int)
	for rows.Next() {
		var (
			rawType string
			n       int
		)
		if err := rows.Scan(&rawType, &n); err != nil {
			return nil, fmt.Errorf("failed to scan justification count: %w", err)
		}
		t, err := justification.ParseType(rawType)
		if err != nil {
			return nil, err
		}
		counts[t] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate justification counts: %w", err)
	}

	return counts, nil
}

func NewJustificationRepository(db *database.DB) justification.JustificationRepository {
	return &justificationRepository{db: db}
}
