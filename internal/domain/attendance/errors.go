package attendance

import "errors"

// Attendance domain errors
var (
	// Import errors
	ErrNoRecordsForPeriod = errors.New("no attendance records found for the selected period")
	ErrEmptyImport        = errors.New("import contains no events")

	// General errors
	ErrPersonnelAttendanceNotFound = errors.New("no attendance found for personnel in this period")
	ErrPeriodNotImported           = errors.New("no attendance imported for this period")
	ErrUnknownDayStatus            = errors.New("unknown day status")
)
