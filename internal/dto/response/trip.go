package response

import (
	"time"

	"trip-booking/internal/data/entity"
)

type ProviderResponse struct {
	CompanyName     string  `json:"company_name"`
	CompanyLogoPath *string `json:"company_logo_path,omitempty"`
}

type TripSummaryResponse struct {
	UUID               string            `json:"uuid"`
	Title              string            `json:"title"`
	Duration           *string           `json:"duration,omitempty"`
	Location           string            `json:"location"`
	GatheringPointName *string           `json:"gathering_point_name,omitempty"`
	Price              float64           `json:"price"`
	DiscountPrice      float64           `json:"discount_price"`
	MaxParticipants    int               `json:"max_participants"`
	BookedParticipants int               `json:"booked_participants"`
	RemainingSeats     int               `json:"remaining_seats"`
	StartDate          *string           `json:"start_date,omitempty"`
	MainImageURL       *string           `json:"main_image_url,omitempty"`
	Provider           ProviderResponse  `json:"provider"`
}

type TripDetailResponse struct {
	UUID               string           `json:"uuid"`
	Title              string           `json:"title"`
	Description        *string          `json:"description,omitempty"`
	Duration           *string          `json:"duration,omitempty"`
	Location           string           `json:"location"`
	GatheringPointName *string          `json:"gathering_point_name,omitempty"`
	GatheringPointURL  *string          `json:"gathering_point_url,omitempty"`
	Price              float64          `json:"price"`
	DiscountPrice      float64          `json:"discount_price"`
	MaxParticipants    int              `json:"max_participants"`
	BookedParticipants int              `json:"booked_participants"`
	RemainingSeats     int              `json:"remaining_seats"`
	StartDate          *string          `json:"start_date,omitempty"`
	EndDate            *string          `json:"end_date,omitempty"`
	DepartureTime      *string          `json:"departure_time,omitempty"`
	ReturnTime         *string          `json:"return_time,omitempty"`
	MainImageURL       *string          `json:"main_image_url,omitempty"`
	Provider           ProviderResponse `json:"provider"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func TripSummaryToResponse(trip *entity.TripSummary) TripSummaryResponse {
	return TripSummaryResponse{
		UUID:               trip.UUID,
		Title:              trip.Title,
		Duration:           trip.Duration,
		Location:           trip.Location,
		GatheringPointName: trip.GatheringPointName,
		Price:              trip.Price,
		DiscountPrice:      trip.DiscountPrice,
		MaxParticipants:    trip.MaxParticipants,
		BookedParticipants: trip.BookedParticipants,
		RemainingSeats:     trip.RemainingSeats,
		StartDate:          formatDate(trip.StartDate),
		MainImageURL:       trip.MainImageURL,
		Provider: ProviderResponse{
			CompanyName:     trip.ProviderName,
			CompanyLogoPath: trip.ProviderLogoPath,
		},
	}
}

func TripDetailToResponse(trip *entity.TripDetail) TripDetailResponse {
	return TripDetailResponse{
		UUID:               trip.UUID,
		Title:              trip.Title,
		Description:        trip.Description,
		Duration:           trip.Duration,
		Location:           trip.Location,
		GatheringPointName: trip.GatheringPointName,
		GatheringPointURL:  trip.GatheringPointURL,
		Price:              trip.Price,
		DiscountPrice:      trip.DiscountPrice,
		MaxParticipants:    trip.MaxParticipants,
		BookedParticipants: trip.BookedParticipants,
		RemainingSeats:     trip.RemainingSeats(),
		StartDate:          formatDate(trip.StartDate),
		EndDate:            formatDate(trip.EndDate),
		DepartureTime:      trip.DepartureTime,
		ReturnTime:         trip.ReturnTime,
		MainImageURL:       trip.MainImageURL,
		Provider: ProviderResponse{
			CompanyName:     trip.ProviderName,
			CompanyLogoPath: trip.ProviderLogoPath,
		},
	}
}
