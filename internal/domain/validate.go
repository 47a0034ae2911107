package domain

import (
	"regexp"
	"strconv"
	"strings"

	"cateringbot/internal/domain/entities"
)

var eventDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks a collected draft before it may become a persisted event.
// Checks run in a fixed precedence order; the first failure is the reported
// reason. Passing validation is required before repository insertion.
func Validate(d entities.Draft) error {
	if d.ClientName == "" {
		return &ValidationError{Reason: "Client name is required"}
	}
	if d.CompanyName == "" {
		return &ValidationError{Reason: "Company name is required"}
	}
	if d.ContactNumber == "" {
		return &ValidationError{Reason: "Contact number is required"}
	}
	if d.EventName == "" {
		return &ValidationError{Reason: "Event name is required"}
	}
	if d.EventDate == "" {
		return &ValidationError{Reason: "Event date is required"}
	}
	if !eventDatePattern.MatchString(d.EventDate) {
		return &ValidationError{Reason: "Date must be in YYYY-MM-DD format"}
	}
	if _, err := strconv.Atoi(strings.TrimSpace(d.Participants)); err != nil {
		return &ValidationError{Reason: "Number of participants is required and must be a number"}
	}
	return nil
}
