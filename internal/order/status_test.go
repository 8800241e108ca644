package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusProcessing, StatusShipped, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusShipped, StatusDelivered, true},
		{StatusProcessing, StatusDelivered, false},
		{StatusShipped, StatusCancelled, false},
		{StatusShipped, StatusProcessing, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusProcessing, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTerminal(t *testing.T) {
	assert.False(t, StatusProcessing.Terminal())
	assert.False(t, StatusShipped.Terminal())
	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("shipped")
	assert.NoError(t, err)
	assert.Equal(t, StatusShipped, s)

	_, err = ParseStatus("lost")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
