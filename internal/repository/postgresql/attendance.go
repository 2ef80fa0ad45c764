package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// Postgres caps a statement at 65535 bind parameters.
const insertChunkSize = 1000

type attendanceRepository struct {
	db *database.DB
}

// InsertRecords implements attendance.AttendanceRepository.
func (a *attendanceRepository) InsertRecords(ctx context.Context, records []attendance.FlatRecord) error {
	if len(records) == 0 {
		return nil
	}

	q := GetQuerier(ctx, a.db)

	for offset := 0; offset < len(records); offset += insertChunkSize {
		end := offset + insertChunkSize
		if end > len(records) {
			end = len(records)
		}
		chunk := records[offset:end]

		valueStrings := make([]string, 0, len(chunk))
		valueArgs := make([]interface{}, 0, len(chunk)*9)
		for i, r := range chunk {
			base := i * 9
			valueStrings = append(valueStrings, fmt.Sprintf(
				"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9,
			))
			valueArgs = append(valueArgs,
				r.PersonnelID,
				r.PersonnelName,
				r.Date,
				r.Entry,
				r.Exit,
				r.Hours,
				string(r.Status),
				r.EntryCount,
				r.ExitCount,
			)
		}

		query := fmt.Sprintf(`
		INSERT INTO attendance_records (personnel_id, personnel_name, date, entry_time, exit_time, hours, status, entry_count, exit_count)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

		if _, err := q.Exec(ctx, query, valueArgs...); err != nil {
			return fmt.Errorf("failed to insert attendance records: %w", err)
		}
	}

	return nil
}

// DeleteByRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteByRange(ctx context.Context, start, end time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `DELETE FROM attendance_records WHERE date >= $1 AND date < $2`

	tag, err := q.Exec(ctx, query, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance records: %w", err)
	}
	return tag.RowsAffected(), nil
}

const selectRecords = `
		SELECT personnel_id, personnel_name, to_char(date, 'YYYY-MM-DD'),
			   to_char(entry_time, 'HH24:MI:SS'), to_char(exit_time, 'HH24:MI:SS'),
			   hours, status, entry_count, exit_count
		FROM attendance_records
`

// ListByRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByRange(ctx context.Context, start, end time.Time) ([]*attendance.PersonRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := selectRecords + `
		WHERE date >= $1 AND date < $2
		ORDER BY personnel_id, date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	persons, err := scanPersonRecords(rows)
	if err != nil {
		return nil, err
	}
	attendance.SortPersonnel(persons)
	return persons, nil
}

// GetPersonnelByRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetPersonnelByRange(ctx context.Context, personnelID string, start, end time.Time) (*attendance.PersonRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := selectRecords + `
		WHERE personnel_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, personnelID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get personnel attendance: %w", err)
	}
	defer rows.Close()

	persons, err := scanPersonRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(persons) == 0 {
		return nil, attendance.ErrPersonnelAttendanceNotFound
	}
	return persons[0], nil
}

// scanPersonRecords folds rows ordered by personnel_id into one record per person.
func scanPersonRecords(rows pgx.Rows) ([]*attendance.PersonRecord, error) {
	var (
		persons []*attendance.PersonRecord
		current *attendance.PersonRecord
	)

	for rows.Next() {
		var (
			personnelID, name, status string
			day                       attendance.DayRecord
		)
		if err := rows.Scan(
			&personnelID, &name, &day.Date,
			&day.Entry, &day.Exit,
			&day.Hours, &status, &day.EntryCount, &day.ExitCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}

		parsed, err := attendance.ParseDayStatus(status)
		if err != nil {
			return nil, fmt.Errorf("record %s/%s: %w", personnelID, day.Date, err)
		}
		day.Status = parsed

		if current == nil || current.ID != personnelID {
			current = &attendance.PersonRecord{ID: personnelID, Name: name}
			persons = append(persons, current)
		}
		current.DailyRecords = append(current.DailyRecords, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return persons, nil
}

// UpsertImport implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpsertImport(ctx context.Context, month attendance.ImportedMonth) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_imports (year, month, record_count, source_file, imported_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (year, month) DO UPDATE
		SET record_count = EXCLUDED.record_count,
			source_file = EXCLUDED.source_file,
			imported_at = EXCLUDED.imported_at
	`

	if _, err := q.Exec(ctx, query, month.Year, month.Month, month.RecordCount, month.SourceFile, month.ImportedAt); err != nil {
		return fmt.Errorf("failed to upsert import: %w", err)
	}
	return nil
}

// DeleteImport implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteImport(ctx context.Context, year, month int) error {
	q := GetQuerier(ctx, a.db)

	query := `DELETE FROM attendance_imports WHERE year = $1 AND month = $2`

	if _, err := q.Exec(ctx, query, year, month); err != nil {
		return fmt.Errorf("failed to delete import: %w", err)
	}
	return nil
}

// ListImportedMonths implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListImportedMonths(ctx context.Context) ([]attendance.ImportedMonth, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT year, month, record_count, source_file, imported_at
		FROM attendance_imports
		ORDER BY year, month
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list imports: %w", err)
	}
	defer rows.Close()

	months := []attendance.ImportedMonth{}
	for rows.Next() {
		var m attendance.ImportedMonth
		if err := rows.Scan(&m.Year, &m.Month, &m.RecordCount, &m.SourceFile, &m.ImportedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import: %w", err)
		}
		months = append(months, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate imports: %w", err)
	}

	return months, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
