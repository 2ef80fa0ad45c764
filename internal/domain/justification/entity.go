package justification

import (
	"fmt"
	"time"
)

// Type is the reason recorded for an absence.
type Type string

const (
	TypeSick     Type = "Enfermo"
	TypeVacation Type = "Vacación"
	TypePersonal Type = "Personal"
)

// Types lists every justification type in display order.
var Types = []Type{TypeSick, TypeVacation, TypePersonal}

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeSick, TypeVacation, TypePersonal:
		return Type(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
}

// Justification explains why a person was absent on a date.
type Justification struct {
	ID            string
	PersonnelID   string
	PersonnelName string
	Date          string // YYYY-MM-DD
	Type          Type
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
