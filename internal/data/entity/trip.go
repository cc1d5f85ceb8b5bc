package entity

import (
	"time"
)

type TripStatus string

const (
	TripStatusDraft     TripStatus = "draft"
	TripStatusPublished TripStatus = "published"
	TripStatusArchived  TripStatus = "archived"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type Trip struct {
	Base
	ProviderID         int64          `db:"provider_id"`
	Title              string         `db:"title"`
	Description        *string        `db:"description"`
	Duration           *string        `db:"duration"`
	Location           string         `db:"location"`
	GatheringPointName *string        `db:"gathering_point_name"`
	GatheringPointURL  *string        `db:"gathering_point_url"`
	Price              float64        `db:"price"`
	DiscountPrice      float64        `db:"discount_price"`
	MaxParticipants    int            `db:"max_participants"`
	BookedParticipants int            `db:"booked_participants"`
	StartDate          *time.Time     `db:"start_date"`
	EndDate            *time.Time     `db:"end_date"`
	DepartureTime      *string        `db:"departure_time"`
	ReturnTime         *string        `db:"return_time"`
	Status             TripStatus     `db:"status"`
	ApprovalStatus     ApprovalStatus `db:"approval_status"`
	MainImageURL       *string        `db:"main_image_url"`
	IsDeleted          bool           `db:"is_deleted"`
}

// RemainingSeats is the capacity a trip can still accept.
func (t *Trip) RemainingSeats() int {
	return t.MaxParticipants - t.BookedParticipants
}

// Bookable reports whether the trip may accept bookings. Callers treat a
// non-bookable trip the same as an absent one.
func (t *Trip) Bookable() bool {
	return !t.IsDeleted &&
		t.Status == TripStatusPublished &&
		t.ApprovalStatus == ApprovalApproved
}

// TripSummary is the joined row for list/search endpoints.
type TripSummary struct {
	UUID               string
	Title              string
	Duration           *string
	Location           string
	GatheringPointName *string
	Price              float64
	DiscountPrice      float64
	MaxParticipants    int
	BookedParticipants int
	RemainingSeats     int
	StartDate          *time.Time
	MainImageURL       *string
	ProviderName       string
	ProviderLogoPath   *string
}

// TripDetail is the joined row for the trip detail endpoint.
type TripDetail struct {
	Trip
	ProviderName     string
	ProviderLogoPath *string
	ProviderEmail    string
}
