package models

import (
	"time"
)

// DateLayout is the wire format for calendar dates (fromDate, toDate)
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date, accepting either the plain date layout
// or a full RFC3339 timestamp
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Trip represents a planned trip saved by a user.
// Accommodation, transport and activities come from the planner form's fixed
// option lists but are stored as plain strings; the API does not police
// membership.
// Email references the owning User by value only; there is no foreign key,
// and a trip may outlive (or predate) its user record.
type Trip struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Email         string    `gorm:"index" json:"email"`
	TripName      string    `json:"tripName"`
	Destination   string    `json:"destination"`
	FromDate      time.Time `json:"fromDate"`
	ToDate        time.Time `json:"toDate"`
	People        int       `json:"people"`
	Accommodation string    `json:"accommodation"`
	Transport     string    `json:"transport"`
	Budget        float64   `gorm:"default:0" json:"budget"`
	Activities    []string  `gorm:"serializer:json" json:"activities"`
	CreatedAt     time.Time `json:"createdAt"`
}
