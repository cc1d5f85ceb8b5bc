package entity

type Review struct {
	BaseSimple
	UUID      string  `db:"uuid"`
	UserID    int64   `db:"user_id"`
	TripID    int64   `db:"trip_id"`
	BookingID int64   `db:"booking_id"`
	Rating    float64 `db:"rating"` // 1-5
	Comment   string  `db:"comment"`
}

// ReviewWithAuthor is the joined row for the public trip review list.
type ReviewWithAuthor struct {
	Review
	AuthorName  string
	AuthorPhoto *string
}
