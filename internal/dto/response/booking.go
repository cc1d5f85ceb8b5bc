package response

import (
	"time"

	"trip-booking/internal/data/entity"
)

// CreateBookingResponse is returned by POST /booking. The total is a
// point-in-time quote locked at creation.
type CreateBookingResponse struct {
	BookingUUID string  `json:"booking_uuid"`
	TotalPrice  float64 `json:"total_price"`
	Status      entity.BookingStatus `json:"status"`
}

type CancelBookingResponse struct {
	BookingUUID   string `json:"booking_uuid"`
	ReleasedSeats int    `json:"released_seats"`
}

type BookingSummaryResponse struct {
	BookingUUID   string               `json:"booking_uuid"`
	TotalPrice    float64              `json:"total_price"`
	NumOfPeople   int                  `json:"num_of_people"`
	Status        entity.BookingStatus `json:"booking_status"`
	BookingDate   time.Time            `json:"booking_date"`
	TripUUID      string               `json:"trip_uuid"`
	TripTitle     string               `json:"trip_title"`
	TripLocation  string               `json:"trip_location"`
	TripStartDate *string              `json:"trip_start_date,omitempty"`
	DepartureTime *string              `json:"trip_departure_time,omitempty"`
	ProviderName  string               `json:"provider_name"`
}

type BookingDetailResponse struct {
	BookingUUID   string               `json:"booking_uuid"`
	TotalPrice    float64              `json:"total_price"`
	NumOfPeople   int                  `json:"num_of_people"`
	Status        entity.BookingStatus `json:"booking_status"`
	BookingDate   time.Time            `json:"booking_date"`
	Trip          TripBriefResponse    `json:"trip"`
	Provider      ProviderResponse     `json:"provider"`
}

type TripBriefResponse struct {
	UUID               string  `json:"uuid"`
	Title              string  `json:"title"`
	Description        *string `json:"description,omitempty"`
	Duration           *string `json:"duration,omitempty"`
	Location           string  `json:"location"`
	GatheringPointName *string `json:"gathering_point_name,omitempty"`
	GatheringPointURL  *string `json:"gathering_point_url,omitempty"`
	Price              float64 `json:"price"`
	DiscountPrice      float64 `json:"discount_price"`
	StartDate          *string `json:"start_date,omitempty"`
	EndDate            *string `json:"end_date,omitempty"`
	DepartureTime      *string `json:"departure_time,omitempty"`
	ReturnTime         *string `json:"return_time,omitempty"`
}

// PaymentDetailResponse carries the billing breakdown and the provider's
// bank transfer block for a pending booking.
type PaymentDetailResponse struct {
	BookingUUID    string               `json:"booking_uuid"`
	BookingStatus  entity.BookingStatus `json:"booking_status"`
	BookingDate    string               `json:"booking_date"`
	TripTitle      string               `json:"trip_title"`
	OriginalPrice  float64              `json:"original_price"`
	DiscountPrice  float64              `json:"discount_price"`
	PricePerPerson float64              `json:"price_per_person"`
	NumOfPeople    int                  `json:"num_of_people"`
	TotalPrice     float64              `json:"total_price"`
	BankTransfer   BankTransferResponse `json:"bank_transfer"`
}

type BankTransferResponse struct {
	ProviderName      string `json:"provider_name"`
	BankName          string `json:"bank_name"`
	BankAccountNumber string `json:"bank_account_number"`
	BankAccountName   string `json:"bank_account_name"`
}

func BookingSummaryToResponse(b *entity.BookingSummary) BookingSummaryResponse {
	return BookingSummaryResponse{
		BookingUUID:   b.UUID,
		TotalPrice:    b.TotalPrice,
		NumOfPeople:   b.NumOfPeople,
		Status:        b.Status,
		BookingDate:   b.CreatedAt,
		TripUUID:      b.TripUUID,
		TripTitle:     b.TripTitle,
		TripLocation:  b.TripLocation,
		TripStartDate: formatDate(b.TripStartDate),
		DepartureTime: b.DepartureTime,
		ProviderName:  b.ProviderName,
	}
}

func BookingDetailToResponse(d *entity.BookingDetail) BookingDetailResponse {
	return BookingDetailResponse{
		BookingUUID: d.UUID,
		TotalPrice:  d.TotalPrice,
		NumOfPeople: d.NumOfPeople,
		Status:      d.Status,
		BookingDate: d.CreatedAt,
		Trip: TripBriefResponse{
			UUID:               d.Trip.UUID,
			Title:              d.Trip.Title,
			Description:        d.Trip.Description,
			Duration:           d.Trip.Duration,
			Location:           d.Trip.Location,
			GatheringPointName: d.Trip.GatheringPointName,
			GatheringPointURL:  d.Trip.GatheringPointURL,
			Price:              d.Trip.Price,
			DiscountPrice:      d.Trip.DiscountPrice,
			StartDate:          formatDate(d.Trip.StartDate),
			EndDate:            formatDate(d.Trip.EndDate),
			DepartureTime:      d.Trip.DepartureTime,
			ReturnTime:         d.Trip.ReturnTime,
		},
		Provider: ProviderResponse{
			CompanyName:     d.ProviderName,
			CompanyLogoPath: d.ProviderLogo,
		},
	}
}

func PaymentDetailToResponse(d *entity.PaymentDetail) PaymentDetailResponse {
	perPerson := d.OriginalPrice - d.DiscountPrice
	if perPerson < 0 {
		perPerson = 0
	}

	return PaymentDetailResponse{
		BookingUUID:    d.BookingUUID,
		BookingStatus:  d.BookingStatus,
		BookingDate:    d.BookingDate,
		TripTitle:      d.TripTitle,
		OriginalPrice:  d.OriginalPrice,
		DiscountPrice:  d.DiscountPrice,
		PricePerPerson: perPerson,
		NumOfPeople:    d.NumOfPeople,
		TotalPrice:     d.TotalPrice,
		BankTransfer: BankTransferResponse{
			ProviderName:      d.Provider.CompanyName,
			BankName:          d.Provider.BankName,
			BankAccountNumber: d.Provider.BankAccountNumber,
			BankAccountName:   d.Provider.BankAccountName,
		},
	}
}
