package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"cateringbot/internal/domain/entities"
	"cateringbot/internal/ports/output"
	"cateringbot/pkg/markdown"
)

// Delivery is the outcome of one recipient's send attempt.
type Delivery struct {
	Department string
	ChatID     int64
	Err        error
}

// DeliveryReport collects per-recipient outcomes of one broadcast.
type DeliveryReport struct {
	Deliveries []Delivery
}

// Failed counts the deliveries that errored.
func (r DeliveryReport) Failed() int {
	n := 0
	for _, d := range r.Deliveries {
		if d.Err != nil {
			n++
		}
	}
	return n
}

// Dispatcher fans an event out to every registered department chat.
type Dispatcher struct {
	courier output.Courier
}

func NewDispatcher(courier output.Courier) *Dispatcher {
	return &Dispatcher{courier: courier}
}

// Broadcast sends the summary message and the rendered document to every
// chat in every department. Delivery is best-effort and exhaustive: a failed
// recipient is logged and recorded in the report, never aborts the rest, and
// never fails the call. No retries within a single broadcast.
func (d *Dispatcher) Broadcast(ctx context.Context, registry *DepartmentRegistry, event *entities.Event, documentPath string) DeliveryReport {
	summary := FormatSummary(event)
	caption := fmt.Sprintf("Event %d Details", event.ID)

	var report DeliveryReport
	for _, department := range registry.Names() {
		for _, chatID := range registry.Members(department) {
			err := d.deliver(ctx, chatID, summary, documentPath, caption)
			if err != nil {
				log.Error().
					Err(err).
					Str("department", department).
					Int64("chat_id", chatID).
					Int64("event_id", event.ID).
					Msg("broadcast delivery failed")
			}
			report.Deliveries = append(report.Deliveries, Delivery{
				Department: department,
				ChatID:     chatID,
				Err:        err,
			})
		}
	}
	return report
}

func (d *Dispatcher) deliver(ctx context.Context, chatID int64, summary, documentPath, caption string) error {
	if err := d.courier.SendMarkdown(ctx, chatID, summary); err != nil {
		return fmt.Errorf("send summary: %w", err)
	}
	if err := d.courier.SendDocument(ctx, chatID, documentPath, caption); err != nil {
		return fmt.Errorf("send document: %w", err)
	}
	return nil
}

// FormatSummary renders the Markdown broadcast message for an event.
// Free-text field values are escaped so they cannot break the formatting.
func FormatSummary(event *entities.Event) string {
	var b strings.Builder
	b.WriteString("*NEW CATERING EVENT*\n")
	fmt.Fprintf(&b, "*Event*: %s\n", markdown.Escape(event.EventName))
	fmt.Fprintf(&b, "*Client*: %s\n", markdown.Escape(event.ClientName))
	fmt.Fprintf(&b, "*Company*: %s\n", markdown.Escape(event.CompanyName))
	fmt.Fprintf(&b, "*Contact*: %s\n", markdown.Escape(event.ContactNumber))
	fmt.Fprintf(&b, "*Date*: %s\n", event.EventDate)
	fmt.Fprintf(&b, "*Time*: %s\n", orNotSpecified(event.EventTime))
	fmt.Fprintf(&b, "*Participants*: %d\n", event.Participants)
	fmt.Fprintf(&b, "*Location*: %s\n", markdown.Escape(orNotSpecified(event.Location)))
	fmt.Fprintf(&b, "*Duration*: %s\n", markdown.Escape(orNotSpecified(event.Duration)))
	fmt.Fprintf(&b, "*Services*: %s\n", markdown.Escape(orNotSpecified(event.Services)))
	b.WriteString("\nPlease prepare accordingly.")
	return b.String()
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}
