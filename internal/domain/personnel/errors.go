package personnel

import "errors"

var (
	ErrPersonnelNotFound = errors.New("personnel not found")
	ErrPersonnelExists   = errors.New("personnel id already registered")
	ErrInvalidDateRange  = errors.New("end_date must not be before start_date")
)
