package request

type SubmitReviewRequest struct {
	TripUUID string  `json:"trip_uuid" validate:"required,uuid4"`
	Rating   float64 `json:"rating" validate:"required,min=1,max=5"`
	Comment  string  `json:"comment" validate:"required,min=3"`
}
