package entities

import "time"

// Event is a persisted catering event. ID and CreatedAt are assigned by the
// repository at insertion time.
type Event struct {
	ID            int64
	ClientName    string
	CompanyName   string
	TINNumber     string
	ContactNumber string
	EventName     string
	EventDate     string
	EventTime     string
	Participants  int
	Location      string
	Duration      string
	Services      string
	CreatedAt     time.Time
}
