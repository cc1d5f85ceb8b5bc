package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to confirmed", BookingStatusPending, BookingStatusConfirmed, true},
		{"pending to completed", BookingStatusPending, BookingStatusCompleted, true},
		{"pending to cancelled", BookingStatusPending, BookingStatusCancelled, true},
		{"confirmed to completed", BookingStatusConfirmed, BookingStatusCompleted, true},
		{"confirmed to cancelled", BookingStatusConfirmed, BookingStatusCancelled, true},
		{"confirmed back to pending", BookingStatusConfirmed, BookingStatusPending, false},
		{"completed to cancelled", BookingStatusCompleted, BookingStatusCancelled, false},
		{"cancelled to pending", BookingStatusCancelled, BookingStatusPending, false},
		{"cancelled to cancelled", BookingStatusCancelled, BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, BookingStatusPending.Terminal())
	assert.False(t, BookingStatusConfirmed.Terminal())
	assert.True(t, BookingStatusCompleted.Terminal())
	assert.True(t, BookingStatusCancelled.Terminal())
}
