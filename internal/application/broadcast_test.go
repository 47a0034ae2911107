package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cateringbot/internal/domain/entities"
)

func broadcastEvent() *entities.Event {
	return &entities.Event{
		ID:            5,
		ClientName:    "John Doe",
		CompanyName:   "Acme Ltd",
		ContactNumber: "+251911223344",
		EventName:     "Annual Gala",
		EventDate:     "2025-06-01",
		Participants:  120,
		Duration:      "Full Day",
		Services:      "Catering, Sound",
	}
}

func TestDispatcher_BestEffortDelivery(t *testing.T) {
	registry := NewDepartmentRegistry([]string{"A", "B"})
	registry.Register(1, "A")
	registry.Register(2, "A")
	registry.Register(3, "B")

	courier := &fakeCourier{failFor: map[int64]bool{2: true}}
	dispatcher := NewDispatcher(courier)

	report := dispatcher.Broadcast(context.Background(), registry, broadcastEvent(), "/tmp/event.pdf")

	// Recipient 2 failing must not stop delivery to 1 and 3.
	require.Len(t, report.Deliveries, 3)
	assert.Equal(t, 1, report.Failed())
	assert.Contains(t, courier.sent, "markdown:1")
	assert.Contains(t, courier.sent, "document:1")
	assert.Contains(t, courier.sent, "markdown:3")
	assert.Contains(t, courier.sent, "document:3")
	assert.NotContains(t, courier.sent, "markdown:2")

	for _, d := range report.Deliveries {
		if d.ChatID == 2 {
			assert.Equal(t, "A", d.Department)
			assert.Error(t, d.Err)
		} else {
			assert.NoError(t, d.Err)
		}
	}
}

func TestDispatcher_EmptyRegistry(t *testing.T) {
	courier := &fakeCourier{}
	report := NewDispatcher(courier).Broadcast(
		context.Background(), NewDepartmentRegistry([]string{"A"}), broadcastEvent(), "x.pdf")
	assert.Empty(t, report.Deliveries)
	assert.Empty(t, courier.sent)
}

func TestFormatSummary(t *testing.T) {
	got := FormatSummary(broadcastEvent())

	assert.Contains(t, got, "*NEW CATERING EVENT*")
	assert.Contains(t, got, "*Event*: Annual Gala")
	assert.Contains(t, got, "*Date*: 2025-06-01")
	assert.Contains(t, got, "*Participants*: 120")
	assert.Contains(t, got, "*Time*: Not specified")
	assert.Contains(t, got, "*Location*: Not specified")
	assert.Contains(t, got, "Please prepare accordingly.")
}

func TestFormatSummary_EscapesControlCharacters(t *testing.T) {
	ev := broadcastEvent()
	ev.EventName = "Gala *2025* [VIP]"
	got := FormatSummary(ev)
	assert.Contains(t, got, `*Event*: Gala \*2025\* \[VIP\]`)
}
