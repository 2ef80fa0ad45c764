package personnel

import "time"

// Personnel is a person known to the clock device. ID is the badge number.
type Personnel struct {
	ID        string
	Name      string
	StartDate *string // YYYY-MM-DD
	EndDate   *string // YYYY-MM-DD
	CreatedAt time.Time
	UpdatedAt time.Time
}
