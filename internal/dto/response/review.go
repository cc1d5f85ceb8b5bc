package response

import (
	"time"

	"trip-booking/internal/data/entity"
)

type ReviewAuthorResponse struct {
	Name  string  `json:"name"`
	Photo *string `json:"photo,omitempty"`
}

type ReviewResponse struct {
	UUID      string               `json:"uuid"`
	Rating    float64              `json:"rating"`
	Comment   string               `json:"comment"`
	CreatedAt time.Time            `json:"created_at"`
	User      ReviewAuthorResponse `json:"user"`
}

func ReviewToResponse(rv *entity.ReviewWithAuthor) ReviewResponse {
	return ReviewResponse{
		UUID:      rv.UUID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		CreatedAt: rv.CreatedAt,
		User: ReviewAuthorResponse{
			Name:  rv.AuthorName,
			Photo: rv.AuthorPhoto,
		},
	}
}
