package justification

import "errors"

var (
	ErrJustificationNotFound = errors.New("justification not found")
	ErrInvalidType           = errors.New("justification type must be Enfermo, Vacación or Personal")
)
