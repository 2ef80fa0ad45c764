package calendar

import (
	"fmt"

	"github.com/asistencia/asistencia-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date string `json:"date" yaml:"date"`
	Name string `json:"name" yaml:"name"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

type SetWorkingDaysRequest struct {
	Year         int      `json:"-"`
	Month        int      `json:"-"`
	WorkingDates []string `json:"working_dates"`
}

func (r *SetWorkingDaysRequest) Validate() error {
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

	if r.WorkingDates == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "working_dates",
			Message: "working_dates is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	for i, d := range r.WorkingDates {
		if !validator.InMonth(d, r.Year, r.Month) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("working_dates[%d]", i),
				Message: fmt.Sprintf("%q: %v (%04d-%02d)", d, ErrDateOutsideOfMonth, r.Year, r.Month),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkingDaysResponse struct {
	Year         int      `json:"year"`
	Month        int      `json:"month"`
	WorkingDates []string `json:"working_dates"`
}
