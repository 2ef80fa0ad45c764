package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia/asistencia-backend-go/internal/domain/calendar"
	"github.com/asistencia/asistencia-backend-go/internal/domain/justification"
	"github.com/asistencia/asistencia-backend-go/internal/domain/personnel"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/spreadsheet"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoRecordsForPeriod):
		UnprocessableEntity(w, "NO_RECORDS_FOR_PERIOD", "No attendance records found for the selected period")
	case errors.Is(err, attendance.ErrEmptyImport):
		BadRequest(w, "Import contains no events", nil)
	case errors.Is(err, attendance.ErrPersonnelAttendanceNotFound):
		NotFound(w, "No attendance found for personnel in this period")
	case errors.Is(err, attendance.ErrPeriodNotImported):
		NotFound(w, "No attendance imported for this period")

	// Spreadsheet errors
	case errors.Is(err, spreadsheet.ErrMissingColumn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, spreadsheet.ErrEmptyFile):
		BadRequest(w, "File has no rows", nil)
	case errors.Is(err, spreadsheet.ErrUnreadableFile):
		BadRequest(w, "File is not a readable spreadsheet", nil)

	// Personnel domain errors
	case errors.Is(err, personnel.ErrPersonnelNotFound):
		NotFound(w, "Personnel not found")
	case errors.Is(err, personnel.ErrPersonnelExists):
		Conflict(w, "Personnel id already registered")
	case errors.Is(err, personnel.ErrInvalidDateRange):
		BadRequest(w, err.Error(), map[string]string{"end_date": err.Error()})

	// Justification domain errors
	case errors.Is(err, justification.ErrJustificationNotFound):
		NotFound(w, "Justification not found")
	case errors.Is(err, justification.ErrInvalidType):
		BadRequest(w, err.Error(), map[string]string{"type": err.Error()})

	// Calendar domain errors
	case errors.Is(err, calendar.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, calendar.ErrHolidayExists):
		Conflict(w, "A holiday already exists on that date")
	case errors.Is(err, calendar.ErrOverrideNotFound):
		NotFound(w, "No working-day override for this month")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
