package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cateringbot/internal/domain/entities"
)

func TestEncodeState(t *testing.T) {
	assert.Equal(t, "", EncodeState(Idle{}))
	assert.Equal(t, "registering", EncodeState(Registering{}))
	assert.Equal(t, "creating_event:{}", EncodeState(CreatingEvent{}))

	token := EncodeState(CreatingEvent{Draft: entities.Draft{ClientName: "John", CompanyName: "Acme"}})
	assert.Equal(t, `creating_event:{"clientName":"John","companyName":"Acme"}`, token)
}

func TestDecodeState_RoundTrip(t *testing.T) {
	states := []State{
		Idle{},
		Registering{},
		CreatingEvent{},
		CreatingEvent{Draft: entities.Draft{ClientName: "John", EventDate: "2025-01-15"}},
	}
	for _, want := range states {
		got, err := DecodeState(EncodeState(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDecodeState_MalformedDraftRecoversEmpty(t *testing.T) {
	got, err := DecodeState(`creating_event:{"clientName": oops`)
	require.ErrorIs(t, err, ErrMalformedState)
	assert.Equal(t, CreatingEvent{}, got)
}

func TestDecodeState_EmptyPayloadIsEmptyDraft(t *testing.T) {
	got, err := DecodeState("creating_event: ")
	require.NoError(t, err)
	assert.Equal(t, CreatingEvent{}, got)
}

func TestDecodeState_UnknownTagIsIdle(t *testing.T) {
	got, err := DecodeState("banana")
	require.ErrorIs(t, err, ErrMalformedState)
	assert.Equal(t, Idle{}, got)
}
