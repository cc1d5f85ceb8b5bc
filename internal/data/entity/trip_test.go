package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripRemainingSeats(t *testing.T) {
	trip := Trip{MaxParticipants: 20, BookedParticipants: 17}
	assert.Equal(t, 3, trip.RemainingSeats())

	full := Trip{MaxParticipants: 20, BookedParticipants: 20}
	assert.Equal(t, 0, full.RemainingSeats())
}

func TestTripBookable(t *testing.T) {
	trip := Trip{
		Status:         TripStatusPublished,
		ApprovalStatus: ApprovalApproved,
	}
	assert.True(t, trip.Bookable())

	draft := trip
	draft.Status = TripStatusDraft
	assert.False(t, draft.Bookable())

	unapproved := trip
	unapproved.ApprovalStatus = ApprovalPending
	assert.False(t, unapproved.Bookable())

	deleted := trip
	deleted.IsDeleted = true
	assert.False(t, deleted.Bookable())
}
