package request

type CreateBookingRequest struct {
	TripID      string `json:"trip_id" validate:"required,uuid4"`
	NumOfPeople int    `json:"num_of_people" validate:"required,min=1"`
}
