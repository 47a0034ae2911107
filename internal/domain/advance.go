package domain

import (
	"strings"

	"cateringbot/internal/domain/entities"
)

// Prompt is an outbound message identified by its catalog key plus template
// data. An empty Key means nothing should be sent.
type Prompt struct {
	Key  string
	Data map[string]any
}

// Decision is the outcome of one conversation step: the state to persist,
// the prompt to send, and at most one side effect for the caller to execute.
type Decision struct {
	Next   State
	Prompt Prompt

	// Register names the department the user's chat should be added to.
	Register string

	// Publish carries a completed draft ready for the publish pipeline.
	Publish *entities.Draft
}

// Advance decides the next conversation step for one incoming message. It is
// pure: all persistence and delivery happens in the caller based on the
// returned Decision. departments is the configured department list; input is
// the raw message text (commands never reach this function).
func Advance(current State, input string, departments []string) Decision {
	input = strings.TrimSpace(input)

	switch st := current.(type) {
	case Idle, Registering:
		if !containsName(departments, input) {
			// Invalid department: re-prompt, state unchanged.
			return Decision{
				Next: current,
				Prompt: Prompt{
					Key:  "RegisterInvalid",
					Data: map[string]any{"Departments": strings.Join(departments, ", ")},
				},
			}
		}
		return Decision{Next: Idle{}, Register: input}

	case CreatingEvent:
		draft := st.Draft
		field, ok := nextEmptyField(&draft)
		if !ok {
			// A complete draft should have been published and the state
			// cleared; recover by publishing it now.
			return Decision{Next: Idle{}, Publish: &draft}
		}
		field.Set(&draft, input)

		if next, ok := nextEmptyField(&draft); ok {
			return Decision{
				Next:   CreatingEvent{Draft: draft},
				Prompt: Prompt{Key: next.PromptKey},
			}
		}
		return Decision{Next: Idle{}, Publish: &draft}

	default:
		return Decision{Next: current}
	}
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
