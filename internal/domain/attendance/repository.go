package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for reconciled day records.
// Ranges are half-open: start <= date < end.
type AttendanceRepository interface {
	// InsertRecords stores reconciled day records
	InsertRecords(ctx context.Context, records []FlatRecord) error

	// DeleteByRange removes every stored day record in the range
	DeleteByRange(ctx context.Context, start, end time.Time) (int64, error)

	// ListByRange returns one PersonRecord per personnel, ordered by personnel ID,
	// each with its day records in ascending date order
	ListByRange(ctx context.Context, start, end time.Time) ([]*PersonRecord, error)

	// GetPersonnelByRange returns ErrPersonnelAttendanceNotFound when no row matches
	GetPersonnelByRange(ctx context.Context, personnelID string, start, end time.Time) (*PersonRecord, error)

	// UpsertImport records the import batch metadata for a month
	UpsertImport(ctx context.Context, month ImportedMonth) error

	DeleteImport(ctx context.Context, year, month int) error

	// ListImportedMonths returns import batches in ascending year/month order
	ListImportedMonths(ctx context.Context) ([]ImportedMonth, error)
}
