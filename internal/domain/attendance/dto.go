package attendance

import (
	"strconv"

	"github.com/asistencia/asistencia-backend-go/internal/pkg/validator"
)

// ========================================
// IMPORT DTOs
// ========================================

type ImportRequest struct {
	Year       int        `json:"year"`
	Month      int        `json:"month"`
	Events     []RawEvent `json:"events"`
	SourceFile *string    `json:"-"`
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(r.Events) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "events",
			Message: "at least one event is required",
		})
	}

	for i, e := range r.Events {
		if validator.IsEmpty(e.PersonID) {
			errs = append(errs, validator.ValidationError{
				Field:   "events[" + strconv.Itoa(i) + "].person_id",
				Message: "person_id is required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ImportResponse struct {
	Year               int `json:"year"`
	Month              int `json:"month"`
	RecordsImported    int `json:"records_imported"`
	PersonnelCount     int `json:"personnel_count"`
	EventsSkipped      int `json:"events_skipped"`
	TimestampFallbacks int `json:"timestamp_fallbacks"`
}

// ========================================
// QUERY DTOs
// ========================================

type PersonnelAttendanceResponse struct {
	Person            *PersonRecord `json:"person"`
	WorkingDaysCount  int           `json:"working_days_count"`
	MissingDays       []string      `json:"missing_days"`
	IncompleteRecords []DayRecord   `json:"incomplete_records"`
}

// ParsePeriod validates path parameters. An empty month selects the whole year.
func ParsePeriod(yearStr, monthStr string) (Period, error) {
	var errs validator.ValidationErrors

	year, err := strconv.Atoi(yearStr)
	if err != nil || !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a number between 2000 and 2100",
		})
	}

	month := 0
	if monthStr != "" {
		month, err = strconv.Atoi(monthStr)
		if err != nil || !validator.IsValidMonth(month) {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be a number between 1 and 12",
			})
		}
	}

	if len(errs) > 0 {
		return Period{}, errs
	}

	return Period{Year: year, Month: month}, nil
}
