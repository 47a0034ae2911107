package application

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"cateringbot/internal/domain"
	"cateringbot/internal/ports/input"
	"cateringbot/internal/ports/output"
)

var _ input.ConversationUseCase = (*ConversationService)(nil)

// ConversationService advances the per-user conversation state machine.
// The state store is the only source of truth between messages; the service
// keeps no in-process memory of wizard progress. Two near-simultaneous
// messages from the same user race on read-modify-write of state with
// last-write-wins semantics; this is a documented limitation.
type ConversationService struct {
	states      output.StateStore
	departments output.DepartmentRepository
	registry    *DepartmentRegistry
	events      input.EventUseCase
	tr          output.T
}

func NewConversationService(
	states output.StateStore,
	departments output.DepartmentRepository,
	registry *DepartmentRegistry,
	events input.EventUseCase,
	tr output.T,
) *ConversationService {
	return &ConversationService{
		states:      states,
		departments: departments,
		registry:    registry,
		events:      events,
		tr:          tr,
	}
}

// HandleText runs one conversation step: load state, decide, persist the next
// state, execute the decided side effect, return the reply.
func (s *ConversationService) HandleText(ctx context.Context, userID, chatID int64, text string) (string, error) {
	token, found, err := s.states.Get(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load state for user %d: %w", userID, err)
	}

	state := domain.State(domain.Idle{})
	if found {
		var derr error
		state, derr = domain.DecodeState(token)
		if derr != nil {
			// Corrupt state recovers as an empty draft / Idle, never fatal.
			log.Warn().Err(derr).Int64("user_id", userID).Msg("recovered malformed conversation state")
		}
	}

	decision := domain.Advance(state, text, s.registry.Names())

	// The next state is committed before any side effect runs, so a failed
	// publish still leaves the user out of the wizard.
	if err := s.saveState(ctx, userID, decision.Next); err != nil {
		return "", err
	}

	switch {
	case decision.Register != "":
		return s.register(ctx, chatID, decision.Register)
	case decision.Publish != nil:
		return s.publish(ctx, chatID, decision)
	case decision.Prompt.Key != "":
		return s.tr.T("", decision.Prompt.Key, decision.Prompt.Data), nil
	default:
		return "", nil
	}
}

func (s *ConversationService) register(ctx context.Context, chatID int64, department string) (string, error) {
	if !s.registry.Register(chatID, department) {
		return s.tr.T("", "RegisterAlready", map[string]any{"Department": department}), nil
	}
	if err := s.departments.Add(ctx, chatID, department); err != nil {
		return "", fmt.Errorf("persist registration: %w", err)
	}
	return s.tr.T("", "RegisterSuccess", map[string]any{"Department": department}), nil
}

func (s *ConversationService) publish(ctx context.Context, chatID int64, decision domain.Decision) (string, error) {
	if _, err := s.events.Publish(ctx, *decision.Publish, chatID); err != nil {
		if verr, ok := domain.AsValidation(err); ok {
			return s.tr.T("", "EventRejected", map[string]any{"Reason": verr.Reason}), nil
		}
		log.Error().Err(err).Int64("chat_id", chatID).Msg("event publish failed")
		return s.tr.T("", "EventCreateFailed", nil), nil
	}
	return s.tr.T("", "EventCreated", nil), nil
}

// BeginRegistration puts the user into the Registering state.
func (s *ConversationService) BeginRegistration(ctx context.Context, userID int64) error {
	return s.states.Set(ctx, userID, domain.EncodeState(domain.Registering{}))
}

// BeginCreation puts the user at the first step of the event wizard.
func (s *ConversationService) BeginCreation(ctx context.Context, userID int64) error {
	return s.states.Set(ctx, userID, domain.EncodeState(domain.CreatingEvent{}))
}

func (s *ConversationService) saveState(ctx context.Context, userID int64, next domain.State) error {
	if _, idle := next.(domain.Idle); idle {
		if err := s.states.Clear(ctx, userID); err != nil {
			return fmt.Errorf("clear state for user %d: %w", userID, err)
		}
		return nil
	}
	if err := s.states.Set(ctx, userID, domain.EncodeState(next)); err != nil {
		return fmt.Errorf("save state for user %d: %w", userID, err)
	}
	return nil
}
