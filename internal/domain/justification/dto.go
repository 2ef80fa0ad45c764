package justification

import (
	"github.com/asistencia/asistencia-backend-go/internal/pkg/validator"
)

type CreateJustificationRequest struct {
	PersonnelID   string `json:"personnel_id"`
	PersonnelName string `json:"personnel_name"`
	Date          string `json:"date"`
	Type          string `json:"type"`
	Description   string `json:"description"`
}

func (r *CreateJustificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelID) {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_id",
			Message: "personnel_id is required",
		})
	}

	if validator.IsEmpty(r.PersonnelName) {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_name",
			Message: "personnel_name is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if _, err := ParseType(r.Type); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: ErrInvalidType.Error(),
		})
	}

	if len(r.Description) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateJustificationRequest struct {
	ID          string  `json:"-"`
	Date        *string `json:"date,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateJustificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Type != nil {
		if _, err := ParseType(*r.Type); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "type",
				Message: ErrInvalidType.Error(),
			})
		}
	}

	if r.Description != nil && len(*r.Description) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Filter narrows a justification listing. Search matches name, personnel ID or
// description case-insensitively; DateFrom/DateTo are inclusive.
type Filter struct {
	Search      string
	Type        *Type
	PersonnelID string
	DateFrom    *string
	DateTo      *string
}

type JustificationResponse struct {
	ID            string `json:"id"`
	PersonnelID   string `json:"personnel_id"`
	PersonnelName string `json:"personnel_name"`
	Date          string `json:"date"`
	Type          Type   `json:"type"`
	Description   string `json:"description"`
	CreatedAt     string `json:"created_at"`
}

func ToResponse(j Justification) JustificationResponse {
	return JustificationResponse{
		ID:            j.ID,
		PersonnelID:   j.PersonnelID,
		PersonnelName: j.PersonnelName,
		Date:          j.Date,
		Type:          j.Type,
		Description:   j.Description,
		CreatedAt:     j.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type StatsResponse struct {
	Total  int          `json:"total"`
	ByType map[Type]int `json:"by_type"`
}
