package entity

type Complaint struct {
	BaseSimple
	UserID      int64  `db:"user_id"`
	TripID      int64  `db:"trip_id"`
	Subject     string `db:"subject"`
	Description string `db:"description"`
}
