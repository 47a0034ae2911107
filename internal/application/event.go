package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"cateringbot/internal/domain"
	"cateringbot/internal/domain/entities"
	"cateringbot/internal/ports/input"
	"cateringbot/internal/ports/output"
)

var _ input.EventUseCase = (*EventService)(nil)

// EventService owns the publish pipeline: validate, persist, render, deliver
// to the creator, broadcast.
type EventService struct {
	repo       output.EventRepository
	renderer   output.DocumentRenderer
	courier    output.Courier
	dispatcher *Dispatcher
	registry   *DepartmentRegistry
}

func NewEventService(
	repo output.EventRepository,
	renderer output.DocumentRenderer,
	courier output.Courier,
	dispatcher *Dispatcher,
	registry *DepartmentRegistry,
) *EventService {
	return &EventService{
		repo:       repo,
		renderer:   renderer,
		courier:    courier,
		dispatcher: dispatcher,
		registry:   registry,
	}
}

// Publish runs a completed draft through the whole pipeline. A validation
// failure returns a domain.ValidationError and nothing is persisted.
// Per-recipient broadcast failures are logged by the dispatcher and do not
// fail the call; the creator has already received their own copy.
func (s *EventService) Publish(ctx context.Context, draft entities.Draft, creatorChatID int64) (*entities.Event, error) {
	if err := domain.Validate(draft); err != nil {
		return nil, err
	}

	participants, err := strconv.Atoi(strings.TrimSpace(draft.Participants))
	if err != nil {
		return nil, &domain.ValidationError{Reason: "Number of participants is required and must be a number"}
	}

	event := &entities.Event{
		ClientName:    draft.ClientName,
		CompanyName:   draft.CompanyName,
		TINNumber:     draft.TINNumber,
		ContactNumber: draft.ContactNumber,
		EventName:     draft.EventName,
		EventDate:     draft.EventDate,
		EventTime:     draft.EventTime,
		Participants:  participants,
		Location:      draft.Location,
		Duration:      draft.Duration,
		Services:      draft.Services,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("persist event: %w", err)
	}

	path, err := s.renderer.Render(event, s.registry.Names())
	if err != nil {
		return nil, fmt.Errorf("render event %d: %w", event.ID, err)
	}

	if err := s.courier.SendDocument(ctx, creatorChatID, path, ""); err != nil {
		return nil, fmt.Errorf("send document to creator: %w", err)
	}

	report := s.dispatcher.Broadcast(ctx, s.registry, event, path)
	log.Info().
		Int64("event_id", event.ID).
		Int("recipients", len(report.Deliveries)).
		Int("failed", report.Failed()).
		Msg("event broadcast complete")

	return event, nil
}

func (s *EventService) ListAll(ctx context.Context) ([]entities.Event, error) {
	return s.repo.FindAll(ctx)
}

func (s *EventService) GetByID(ctx context.Context, id int64) (*entities.Event, error) {
	return s.repo.FindByID(ctx, id)
}
