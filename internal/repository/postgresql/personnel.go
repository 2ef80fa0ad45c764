package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/asistencia/asistencia-backend-go/internal/domain/personnel"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type personnelRepository struct {
	db *database.DB
}

const selectPersonnel = `
		SELECT id, name, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), created_at, updated_at
		FROM personnel
`

func scanPersonnel(row pgx.Row) (personnel.Personnel, error) {
	var p personnel.Personnel
	if err := row.Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return personnel.Personnel{}, personnel.ErrPersonnelNotFound
		}
		return personnel.Personnel{}, fmt.Errorf("failed to scan personnel: %w", err)
	}
	return p, nil
}

// List implements personnel.PersonnelRepository.
func (r *personnelRepository) List(ctx context.Context, search string) ([]personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := selectPersonnel
	args := []interface{}{}
	if search != "" {
		query += ` WHERE name ILIKE $1 OR id ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY name, id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list personnel: %w", err)
	}
	defer rows.Close()

	people := []personnel.Personnel{}
	for rows.Next() {
		p, err := scanPersonnel(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate personnel: %w", err)
	}

	return people, nil
}

// GetByID implements personnel.PersonnelRepository.
func (r *personnelRepository) GetByID(ctx context.Context, id string) (personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)
	return scanPersonnel(q.QueryRow(ctx, selectPersonnel+` WHERE id = $1`, id))
}

// Create implements personnel.PersonnelRepository.
func (r *personnelRepository) Create(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO personnel (id, name, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	if err := q.QueryRow(ctx, query, p.ID, p.Name, p.StartDate, p.EndDate).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return personnel.Personnel{}, personnel.ErrPersonnelExists
		}
		return personnel.Personnel{}, fmt.Errorf("failed to create personnel: %w", err)
	}
	return p, nil
}

// Update implements personnel.PersonnelRepository.
func (r *personnelRepository) Update(ctx context.Context, id string, req personnel.UpdatePersonnelRequest) (personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.StartDate != nil {
		add("start_date", *req.StartDate)
	}
	if req.EndDate != nil {
		add("end_date", *req.EndDate)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE personnel
		SET %s, updated_at = NOW()
		WHERE id = $%d
		RETURNING id, name, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), created_at, updated_at
	`, strings.Join(sets, ", "), len(args))

	return scanPersonnel(q.QueryRow(ctx, query, args...))
}

// Delete implements personnel.PersonnelRepository.
func (r *personnelRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM personnel WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete personnel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return personnel.ErrPersonnelNotFound
	}
	return nil
}

// Count implements personnel.PersonnelRepository.
func (r *personnelRepository) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM personnel`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count personnel: %w", err)
	}
	return n, nil
}

// UpsertNames implements personnel.PersonnelRepository.
func (r *personnelRepository) UpsertNames(ctx context.Context, people []personnel.Personnel) error {
	if len(people) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	valueStrings := make([]string, 0, len(people))
	valueArgs := make([]interface{}, 0, len(people)*2)
	for i, p := range people {
		valueStrings = append(valueStrings, fmt.Sprintf("($%d, $%d)", i*2+1, i*2+2))
		valueArgs = append(valueArgs, p.ID, p.Name)
	}

	query := fmt.Sprintf(`
		INSERT INTO personnel (id, name)
		VALUES %s
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, updated_at = NOW()
		WHERE personnel.name IS DISTINCT FROM EXCLUDED.name
	`, strings.Join(valueStrings, ", "))

	if _, err := q.Exec(ctx, query, valueArgs...); err != nil {
		return fmt.Errorf("failed to upsert personnel: %w", err)
	}
	return nil
}

func NewPersonnelRepository(db *database.DB) personnel.PersonnelRepository {
	return &personnelRepository{db: db}
}
