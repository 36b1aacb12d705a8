package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"reserva/internal/domains/reservation/model"
	"reserva/shared/constant"
	"reserva/shared/timezone"
)

// CreateReservationRequest is the booking form a client submits. Time may
// arrive as a bare hour ("10") or a clock string ("10:00"); both normalize
// to the canonical hour before anything else happens.
type CreateReservationRequest struct {
	Fullname string `json:"fullname" validate:"required,max=100"`
	Date     string `json:"date"     validate:"required,date"`
	Time     string `json:"time"     validate:"required,hour"`
	Service  string `json:"service"  validate:"required,max=200"`
	Message  string `json:"message"  validate:"omitempty,max=500"`
	Mobile   string `json:"mobile"   validate:"required,max=20"`
}

// NormalizeHour resolves a client-supplied time string to an hour of day.
// Minutes are truncated; slots have hour resolution.
func NormalizeHour(raw string) (int, error) {
	value := strings.TrimSpace(raw)

	if idx := strings.Index(value, ":"); idx >= 0 {
		value = value[:idx]
	}

	hour, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("time %q is not an hour: %w", raw, err)
	}

	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour %d is outside 0..23", hour)
	}

	return hour, nil
}

func (c *CreateReservationRequest) ToModel() (model.Reservation, error) {
	reservationDate, err := timezone.Parse(constant.DateFormat, strings.TrimSpace(c.Date))
	if err != nil {
		return model.Reservation{}, fmt.Errorf("parsing date: %w", err)
	}

	hour, err := NormalizeHour(c.Time)
	if err != nil {
		return model.Reservation{}, err
	}

	return model.Reservation{
		ID:        uuid.NewString(),
		Fullname:  strings.TrimSpace(c.Fullname),
		Date:      reservationDate,
		Hour:      hour,
		Service:   strings.TrimSpace(c.Service),
		Message:   strings.TrimSpace(c.Message),
		Mobile:    strings.TrimSpace(c.Mobile),
		CreatedAt: timezone.Now(),
	}, nil
}

// ReservationResponse renders a reservation for API clients and realtime
// subscribers. Time is the canonical bare-hour string.
type ReservationResponse struct {
	ID        string `json:"id"`
	Fullname  string `json:"fullname"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Service   string `json:"service"`
	Message   string `json:"message,omitempty"`
	Mobile    string `json:"mobile"`
	CreatedAt string `json:"created_at"`
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.Fullname = model.Fullname
	r.Date = model.Date.Format(constant.DateFormat)
	r.Time = strconv.Itoa(model.Hour)
	r.Service = model.Service
	r.Message = model.Message
	r.Mobile = model.Mobile
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.TimestampFormat)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation) {
	r.Total = len(models)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
