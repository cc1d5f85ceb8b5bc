package entity

import (
	"time"
)

// Base carries the internal surrogate key plus the public identifier.
// ID is used only for joins; UUID is the only identifier that crosses
// the API boundary.
type Base struct {
	ID        int64     `db:"id"`
	UUID      string    `db:"uuid"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type BaseSimple struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
