package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cateringbot/internal/domain"
)

func newConversationFixture(departments ...string) (*ConversationService, *memStates, *memDepartments, *fakePublisher, *DepartmentRegistry) {
	states := newMemStates()
	repo := &memDepartments{}
	registry := NewDepartmentRegistry(departments)
	publisher := &fakePublisher{}
	svc := NewConversationService(states, repo, registry, publisher, keyTranslator{})
	return svc, states, repo, publisher, registry
}

func TestConversation_RegistrationFlow(t *testing.T) {
	svc, states, repo, _, registry := newConversationFixture("Kitchen", "Bar")
	ctx := context.Background()

	require.NoError(t, svc.BeginRegistration(ctx, 7))
	token, found, _ := states.Get(ctx, 7)
	require.True(t, found)
	assert.Equal(t, "registering", token)

	reply, err := svc.HandleText(ctx, 7, 700, "Kitchen")
	require.NoError(t, err)
	assert.Equal(t, "RegisterSuccess", reply)
	assert.Equal(t, []string{"Kitchen"}, registry.DepartmentsOf(700))
	assert.Equal(t, []string{"Kitchen:700"}, repo.added)

	// Completing registration clears the state.
	_, found, _ = states.Get(ctx, 7)
	assert.False(t, found)
}

func TestConversation_InvalidDepartmentKeepsStateAndRegistry(t *testing.T) {
	svc, states, repo, _, registry := newConversationFixture("Kitchen")
	ctx := context.Background()

	require.NoError(t, svc.BeginRegistration(ctx, 7))
	reply, err := svc.HandleText(ctx, 7, 700, "Laundry")
	require.NoError(t, err)
	assert.Equal(t, "RegisterInvalid", reply)

	token, found, _ := states.Get(ctx, 7)
	require.True(t, found)
	assert.Equal(t, "registering", token)
	assert.Empty(t, registry.DepartmentsOf(700))
	assert.Empty(t, repo.added)
}

func TestConversation_AlreadyRegistered(t *testing.T) {
	svc, _, repo, _, registry := newConversationFixture("Kitchen")
	ctx := context.Background()
	registry.Register(700, "Kitchen")

	reply, err := svc.HandleText(ctx, 7, 700, "Kitchen")
	require.NoError(t, err)
	assert.Equal(t, "RegisterAlready", reply)
	assert.Empty(t, repo.added, "no duplicate row is written")
}

func TestConversation_FullWizard(t *testing.T) {
	svc, states, _, publisher, _ := newConversationFixture("Kitchen")
	ctx := context.Background()

	require.NoError(t, svc.BeginCreation(ctx, 9))
	token, found, _ := states.Get(ctx, 9)
	require.True(t, found)
	assert.Equal(t, "creating_event:{}", token)

	steps := []struct {
		input string
		reply string
	}{
		{"John Doe", "PromptCompanyName"},
		{"Acme Ltd", "PromptTINNumber"},
		{"TIN-001", "PromptContactNumber"},
		{"+251911223344", "PromptEventName"},
		{"Annual Gala", "PromptEventDate"},
		{"2025-06-01", "PromptEventTime"},
		{"18:00", "PromptParticipants"},
		{"120", "PromptLocation"},
		{"Grand Ballroom", "PromptDuration"},
		{"Full Day", "PromptServices"},
		{"Catering, Sound", "EventCreated"},
	}
	for i, step := range steps {
		reply, err := svc.HandleText(ctx, 9, 900, step.input)
		require.NoError(t, err, "step %d", i)
		assert.Equal(t, step.reply, reply, "step %d", i)
	}

	require.Len(t, publisher.drafts, 1)
	draft := publisher.drafts[0]
	assert.Equal(t, "John Doe", draft.ClientName)
	assert.Equal(t, "2025-06-01", draft.EventDate)
	assert.Equal(t, "120", draft.Participants)
	assert.Equal(t, "Catering, Sound", draft.Services)

	_, found, _ = states.Get(ctx, 9)
	assert.False(t, found, "wizard completion clears the state")
}

func TestConversation_MalformedStateRecoversAsEmptyDraft(t *testing.T) {
	svc, states, _, _, _ := newConversationFixture("Kitchen")
	ctx := context.Background()

	require.NoError(t, states.Set(ctx, 9, `creating_event:{"clientName": oops`))

	reply, err := svc.HandleText(ctx, 9, 900, "John Doe")
	require.NoError(t, err)
	assert.Equal(t, "PromptCompanyName", reply, "corrupt draft restarts from the first field")

	token, _, _ := states.Get(ctx, 9)
	assert.Equal(t, `creating_event:{"clientName":"John Doe"}`, token)
}

func TestConversation_ValidationFailureReportsReason(t *testing.T) {
	svc, states, _, publisher, _ := newConversationFixture("Kitchen")
	ctx := context.Background()
	publisher.err = &domain.ValidationError{Reason: "Event date is required"}

	full := `creating_event:{"clientName":"a","companyName":"b","tinNumber":"c","contactNumber":"d",` +
		`"eventName":"e","eventDate":"2025-01-01","eventTime":"f","participants":"1","location":"g","duration":"h"}`
	require.NoError(t, states.Set(ctx, 9, full))

	reply, err := svc.HandleText(ctx, 9, 900, "Catering")
	require.NoError(t, err)
	assert.Equal(t, "EventRejected", reply)

	// State is cleared before the pipeline runs, success or not.
	_, found, _ := states.Get(ctx, 9)
	assert.False(t, found)
}

func TestConversation_PlainChatterFromIdleReprompts(t *testing.T) {
	svc, states, _, _, _ := newConversationFixture("Kitchen")
	ctx := context.Background()

	reply, err := svc.HandleText(ctx, 3, 300, "hello there")
	require.NoError(t, err)
	assert.Equal(t, "RegisterInvalid", reply)

	_, found, _ := states.Get(ctx, 3)
	assert.False(t, found, "idle stays idle")
}
