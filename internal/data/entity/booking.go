package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// bookingTransitions encodes the allowed lifecycle moves. Completed and
// cancelled are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCompleted: {},
	BookingStatusCancelled: {},
}

// CanTransitionTo reports whether status may move to target.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range bookingTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is permitted.
func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0
}

type Booking struct {
	Base
	UserID      int64         `db:"user_id"`
	TripID      int64         `db:"trip_id"`
	NumOfPeople int           `db:"num_of_people"`
	TotalPrice  float64       `db:"total_price"`
	Status      BookingStatus `db:"status"`
}

// BookingSummary is the joined row for the booking history list.
type BookingSummary struct {
	Booking
	TripUUID      string
	TripTitle     string
	TripLocation  string
	TripStartDate *time.Time
	DepartureTime *string
	ProviderName  string
}

// BookingDetail is the full booking + trip + provider join.
type BookingDetail struct {
	Booking
	Trip         Trip
	ProviderName string
	ProviderLogo *string
	BankName     string
}

// PaymentDetail is the billing breakdown plus the provider's bank
// transfer block shown while a booking awaits payment.
type PaymentDetail struct {
	BookingUUID   string
	BookingStatus BookingStatus
	BookingDate   string
	TripTitle     string
	OriginalPrice float64
	DiscountPrice float64
	NumOfPeople   int
	TotalPrice    float64
	Provider      Provider
}
