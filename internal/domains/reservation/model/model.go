package model

import (
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID        = "id"
	FieldFullname  = "fullname"
	FieldDate      = "date"
	FieldHour      = "hour"
	FieldService   = "service"
	FieldMessage   = "message"
	FieldMobile    = "mobile"
	FieldCreatedAt = "created_at"
)

// Reservation is a booked slot. Records are insert-only: there is no update
// or delete path, so every field is final once persisted.
type Reservation struct {
	ID        string    `db:"id"`
	Fullname  string    `db:"fullname"`
	Date      time.Time `db:"date"`
	Hour      int       `db:"hour"`
	Service   string    `db:"service"`
	Message   string    `db:"message"`
	Mobile    string    `db:"mobile"`
	CreatedAt time.Time `db:"created_at"`
}
