package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cateringbot/internal/domain/entities"
)

var testDepartments = []string{"Kitchen", "Housekeeping", "Front Office"}

func TestAdvance_RegistrationFromIdleAndRegistering(t *testing.T) {
	for _, current := range []State{Idle{}, Registering{}} {
		t.Run(fmt.Sprintf("%T", current), func(t *testing.T) {
			d := Advance(current, " Kitchen ", testDepartments)
			assert.Equal(t, Idle{}, d.Next)
			assert.Equal(t, "Kitchen", d.Register)
			assert.Nil(t, d.Publish)
		})
	}
}

func TestAdvance_InvalidDepartmentKeepsState(t *testing.T) {
	for _, current := range []State{Idle{}, Registering{}} {
		d := Advance(current, "Laundry", testDepartments)
		assert.Equal(t, current, d.Next)
		assert.Empty(t, d.Register)
		assert.Equal(t, "RegisterInvalid", d.Prompt.Key)
		assert.Equal(t, "Kitchen, Housekeeping, Front Office", d.Prompt.Data["Departments"])
	}
}

func TestAdvance_WizardWalksFieldsInOrder(t *testing.T) {
	inputs := []string{
		"John Doe", "Acme Ltd", "TIN-001", "+251911223344", "Annual Gala",
		"2025-06-01", "18:00", "120", "Grand Ballroom", "Full Day",
	}
	wantPrompts := []string{
		"PromptCompanyName", "PromptTINNumber", "PromptContactNumber",
		"PromptEventName", "PromptEventDate", "PromptEventTime",
		"PromptParticipants", "PromptLocation", "PromptDuration", "PromptServices",
	}

	state := State(CreatingEvent{})
	for i, input := range inputs {
		d := Advance(state, input, testDepartments)
		require.Nil(t, d.Publish, "step %d should not publish", i)
		assert.Equal(t, wantPrompts[i], d.Prompt.Key, "step %d", i)
		state = d.Next
	}

	// The populated fields always form a contiguous prefix of the sequence.
	creating, ok := state.(CreatingEvent)
	require.True(t, ok)
	assert.Equal(t, "John Doe", creating.Draft.ClientName)
	assert.Equal(t, "Full Day", creating.Draft.Duration)
	assert.Empty(t, creating.Draft.Services)

	// The final field completes the draft and hands it over for publishing.
	d := Advance(state, "Catering, Decoration, Sound", testDepartments)
	assert.Equal(t, Idle{}, d.Next)
	require.NotNil(t, d.Publish)
	assert.Equal(t, entities.Draft{
		ClientName:    "John Doe",
		CompanyName:   "Acme Ltd",
		TINNumber:     "TIN-001",
		ContactNumber: "+251911223344",
		EventName:     "Annual Gala",
		EventDate:     "2025-06-01",
		EventTime:     "18:00",
		Participants:  "120",
		Location:      "Grand Ballroom",
		Duration:      "Full Day",
		Services:      "Catering, Decoration, Sound",
	}, *d.Publish)
}

func TestAdvance_CompleteDraftPublishesImmediately(t *testing.T) {
	full := entities.Draft{
		ClientName: "a", CompanyName: "b", TINNumber: "c", ContactNumber: "d",
		EventName: "e", EventDate: "2025-01-01", EventTime: "f",
		Participants: "1", Location: "g", Duration: "h", Services: "i",
	}
	d := Advance(CreatingEvent{Draft: full}, "ignored", testDepartments)
	assert.Equal(t, Idle{}, d.Next)
	require.NotNil(t, d.Publish)
	assert.Equal(t, full, *d.Publish)
}
