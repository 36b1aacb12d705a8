// Package schedule decides whether a requested slot may be booked given the
// reservations already taken on that date. It is pure: callers load existing
// reservations and the per-slot count, schedule only computes.
package schedule

import (
	"fmt"
	"time"

	"reserva/internal/domains/reservation/model"
)

const (
	// SlotCapacity is the maximum number of reservations allowed at one
	// exact (date, hour) pair.
	SlotCapacity = 2

	lastHourOfDay = 23
)

type Reason string

const (
	ReasonPast     Reason = "slot_in_past"
	ReasonOutOfDay Reason = "slot_out_of_day"
	ReasonOverlap  Reason = "slot_overlap"
	ReasonFull     Reason = "slot_full"
)

// Rejection is a typed refusal of a candidate slot. The message is safe to
// show to the client as-is.
type Rejection struct {
	Reason  Reason
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

// Candidate is the slot a client is asking for.
type Candidate struct {
	Date    time.Time
	Hour    int
	Service string
}

// OccupiedHours returns the consecutive hour slots a reservation starting at
// the given hour blocks for the given service.
func OccupiedHours(hour int, service string) []int {
	duration := DurationFor(service)

	hours := make([]int, 0, duration)
	for i := range duration {
		hours = append(hours, hour+i)
	}

	return hours
}

// Check validates a candidate slot against the reservations already booked
// on the same date. Checks run in a fixed order and the first failure wins:
// past slot, day boundary, overlap, capacity. countAtHour is the number of
// existing reservations at the candidate's exact (date, hour).
func Check(now time.Time, candidate Candidate, sameDate []model.Reservation, countAtHour int) *Rejection {
	if rejection := checkPast(now, candidate); rejection != nil {
		return rejection
	}

	if rejection := checkDayBoundary(candidate); rejection != nil {
		return rejection
	}

	if rejection := checkOverlap(candidate, sameDate); rejection != nil {
		return rejection
	}

	return checkCapacity(candidate, countAtHour)
}

func checkPast(now time.Time, candidate Candidate) *Rejection {
	start := time.Date(
		candidate.Date.Year(), candidate.Date.Month(), candidate.Date.Day(),
		candidate.Hour, 0, 0, 0, now.Location(),
	)

	if start.Before(now.Truncate(time.Minute)) {
		return &Rejection{
			Reason:  ReasonPast,
			Message: fmt.Sprintf("slot %s at %d:00 is already in the past", candidate.Date.Format("2006-01-02"), candidate.Hour),
		}
	}

	return nil
}

func checkDayBoundary(candidate Candidate) *Rejection {
	lastOccupied := candidate.Hour + DurationFor(candidate.Service) - 1

	if lastOccupied > lastHourOfDay {
		return &Rejection{
			Reason:  ReasonOutOfDay,
			Message: fmt.Sprintf("service %q starting at %d:00 runs past the end of the day", candidate.Service, candidate.Hour),
		}
	}

	return nil
}

// checkOverlap runs before the flat capacity check: a multi-hour service
// conflicts with slots that do not share its start hour, which a count at
// the literal start hour alone would miss. Reservations starting at the
// candidate's own hour are exempt here; sharing an exact start slot is
// governed by the capacity rule, which admits up to SlotCapacity of them.
func checkOverlap(candidate Candidate, sameDate []model.Reservation) *Rejection {
	candidateHours := OccupiedHours(candidate.Hour, candidate.Service)

	for _, existing := range sameDate {
		if existing.Hour == candidate.Hour {
			continue
		}

		for _, occupied := range OccupiedHours(existing.Hour, existing.Service) {
			for _, wanted := range candidateHours {
				if occupied == wanted {
					return &Rejection{
						Reason: ReasonOverlap,
						Message: fmt.Sprintf(
							"slot conflicts with an existing reservation at %d:00 (%s)",
							existing.Hour, existing.Service,
						),
					}
				}
			}
		}
	}

	return nil
}

func checkCapacity(candidate Candidate, countAtHour int) *Rejection {
	if countAtHour >= SlotCapacity {
		return &Rejection{
			Reason:  ReasonFull,
			Message: fmt.Sprintf("slot at %d:00 is fully booked (%d/%d)", candidate.Hour, countAtHour, SlotCapacity),
		}
	}

	return nil
}
