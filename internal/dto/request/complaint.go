package request

type SubmitComplaintRequest struct {
	TripUUID    string `json:"trip_uuid" validate:"required,uuid4"`
	Subject     string `json:"subject" validate:"required,min=3,max=150"`
	Description string `json:"description" validate:"required,min=10"`
}
