package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"cateringbot/internal/domain/entities"
)

// State is the conversation state attached to a user between messages.
// Exactly one of Idle, Registering or CreatingEvent. The in-memory
// representation is a tagged union; the string token format exists only at
// the storage boundary (EncodeState / DecodeState).
type State interface {
	conversationState()
}

// Idle means no conversation is in progress.
type Idle struct{}

// Registering means the user was asked to reply with a department name.
type Registering struct{}

// CreatingEvent means the user is inside the event-creation wizard.
type CreatingEvent struct {
	Draft entities.Draft
}

func (Idle) conversationState()          {}
func (Registering) conversationState()   {}
func (CreatingEvent) conversationState() {}

const (
	tokenRegistering   = "registering"
	tokenCreatingEvent = "creating_event:"
)

// EncodeState serializes a state to its storage token. Idle encodes to the
// empty string, meaning the row can simply be cleared.
func EncodeState(s State) string {
	switch s := s.(type) {
	case Registering:
		return tokenRegistering
	case CreatingEvent:
		payload, err := json.Marshal(s.Draft)
		if err != nil {
			// Draft is a flat string struct; Marshal cannot fail on it.
			return tokenCreatingEvent + "{}"
		}
		return tokenCreatingEvent + string(payload)
	default:
		return ""
	}
}

// DecodeState parses a storage token back into a State. A corrupt draft
// payload or an unknown tag is never fatal: the returned state is still
// usable (an empty draft, resp. Idle) and the error wraps ErrMalformedState
// so the caller can log it.
func DecodeState(token string) (State, error) {
	token = strings.TrimSpace(token)
	switch {
	case token == "":
		return Idle{}, nil
	case token == tokenRegistering:
		return Registering{}, nil
	case strings.HasPrefix(token, tokenCreatingEvent):
		var draft entities.Draft
		payload := strings.TrimSpace(strings.TrimPrefix(token, tokenCreatingEvent))
		if payload == "" {
			return CreatingEvent{}, nil
		}
		if err := json.Unmarshal([]byte(payload), &draft); err != nil {
			return CreatingEvent{}, fmt.Errorf("%w: draft payload: %v", ErrMalformedState, err)
		}
		return CreatingEvent{Draft: draft}, nil
	default:
		return Idle{}, fmt.Errorf("%w: unknown tag %q", ErrMalformedState, token)
	}
}
