package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reserva/internal/domains/reservation/model"
	"reserva/internal/domains/reservation/schedule"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func reservation(hour int, service string) model.Reservation {
	return model.Reservation{
		ID:      "existing",
		Date:    date(2025, 10, 31),
		Hour:    hour,
		Service: service,
	}
}

func TestDurationFor(t *testing.T) {
	tests := []struct {
		service string
		want    int
	}{
		{"Haircut", 1},
		{"Coloring", 1},
		{"protein treatment + haircut", 2},
		{"Protein Treatment + Haircut", 2},
		{"  PROTEIN   treatment +   HAIRCUT  ", 2},
		{"haircut with protein boost", 2},
		{"protein treatment", 1},
		{"", 1},
	}

	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.DurationFor(tt.service))
		})
	}
}

func TestOccupiedHours(t *testing.T) {
	assert.Equal(t, []int{10}, schedule.OccupiedHours(10, "Haircut"))
	assert.Equal(t, []int{10, 11}, schedule.OccupiedHours(10, "Protein treatment + haircut"))
}

func TestCheck_PastSlot(t *testing.T) {
	now := time.Date(2025, 10, 31, 12, 0, 0, 0, time.UTC)

	candidate := schedule.Candidate{Date: date(2025, 10, 31), Hour: 10, Service: "Haircut"}

	rejection := schedule.Check(now, candidate, nil, 0)
	require.NotNil(t, rejection)
	assert.Equal(t, schedule.ReasonPast, rejection.Reason)
}

func TestCheck_PastSlotWinsOverOtherRejections(t *testing.T) {
	now := time.Date(2025, 10, 31, 12, 0, 0, 0, time.UTC)

	candidate := schedule.Candidate{Date: date(2025, 10, 31), Hour: 10, Service: "Haircut"}
	existing := []model.Reservation{reservation(10, "Protein treatment + haircut")}

	rejection := schedule.Check(now, candidate, existing, schedule.SlotCapacity)
	require.NotNil(t, rejection)
	assert.Equal(t, schedule.ReasonPast, rejection.Reason)
}

func TestCheck_SlotAtCurrentMinuteIsNotPast(t *testing.T) {
	now := time.Date(2025, 10, 31, 10, 0, 42, 0, time.UTC)

	candidate := schedule.Candidate{Date: date(2025, 10, 31), Hour: 10, Service: "Haircut"}

	assert.Nil(t, schedule.Check(now, candidate, nil, 0))
}

func TestCheck_DayBoundary(t *testing.T) {
	now := time.Date(2025, 10, 30, 8, 0, 0, 0, time.UTC)

	single := schedule.Candidate{Date: date(2025, 10, 31), Hour: 23, Service: "Haircut"}
	assert.Nil(t, schedule.Check(now, single, nil, 0))

	double := schedule.Candidate{Date: date(2025, 10, 31), Hour: 23, Service: "Protein treatment + haircut"}
	rejection := schedule.Check(now, double, nil, 0)
	require.NotNil(t, rejection)
	assert.Equal(t, schedule.ReasonOutOfDay, rejection.Reason)
}

func TestCheck_OverlapWithDoubleDuration(t *testing.T) {
	// Existing double-duration booking at 10 occupies {10, 11}; a haircut
	// at 11 conflicts even though nothing starts at 11.
	now := time.Date(2025, 10, 30, 8, 0, 0, 0, time.UTC)

	existing := []model.Reservation{reservation(10, "Protein treatment + haircut")}
	candidate := schedule.Candidate{Date: date(2025, 10, 31), Hour: 11, Service: "Haircut"}

	rejection := schedule.Check(now, candidate, existing, 0)
	require.NotNil(t, rejection)
	assert.Equal(t, schedule.ReasonOverlap, rejection.Reason)
	assert.Contains(t, rejection.Message, "10:00")
	assert.Contains(t, rejection.Message, "Protein treatment + haircut")
}

func TestCheck_DoubleDurationCandidateOverlapsLater(t *testing.T) {
	now := time.Date(2025, 10, 30, 8, 0, 0, 0, time.UTC)

	existing := []model.Reservation{reservation(11, "Haircut")}
	candidate := schedule.Candidate{Date: date(2025, 10, 31), Hour: 10, Service: "Protein treatment + haircut"}

	rejection := schedule.Check(now, candidate, existing, 0)
	require.NotNil(t, rejection)
	assert.Equal(t, schedule.ReasonOverlap, rejection.Reason)
}

func TestCheck_DisjointSlotsDoNotOverlap(t *testing.T) {
	now := time.Date(2025, 10, 30, 8, 0, 0, 0, time.UTC)

	existing := []model.Reservation{
		reservation(10, "Protein treatment + haircut"),
		reservation(14, "Haircut"),
	}
	candidate := schedule.Candidate{Date: date(2025, 10, 31), Hour: 12, Service: "Haircut"}

	assert.Nil(t, schedule.Check(now, candidate, existing, 0))
}

func TestCheck_SameStartHourGoesToCapacityNotOverlap(t *testing.T) {
	now := time.Date(2025, 10, 30, 8, 0, 0, 0, time.UTC)

	existing := []model.Reservation{reservation(14, "Haircut")}
	candidate := schedule.Candidate{Date: date(2025, 10, 31), Hour: 14, Service: "Haircut"}

	// One existing reservation at the same hour: allowed, capacity is 2.
	assert.Nil(t, schedule.Check(now, candidate, existing, 1))
}

func TestCheck_SlotFull(t *testing.T) {
	now := time.Date(2025, 10, 30, 8, 0, 0, 0, time.UTC)

	existing := []model.Reservation{
		reservation(14, "Haircut"),
		reservation(14, "Coloring"),
	}
	candidate := schedule.Candidate{Date: date(2025, 10, 31), Hour: 14, Service: "Haircut"}

	rejection := schedule.Check(now, candidate, existing, 2)
	require.NotNil(t, rejection)
	assert.Equal(t, schedule.ReasonFull, rejection.Reason)
	assert.Contains(t, rejection.Message, "2/2")
}

func TestCheck_FullSlotDoesNotBlockOtherHours(t *testing.T) {
	now := time.Date(2025, 10, 30, 8, 0, 0, 0, time.UTC)

	existing := []model.Reservation{
		reservation(14, "Haircut"),
		reservation(14, "Coloring"),
	}
	candidate := schedule.Candidate{Date: date(2025, 10, 31), Hour: 16, Service: "Haircut"}

	assert.Nil(t, schedule.Check(now, candidate, existing, 0))
}

func TestCheck_AcceptsFreshSlot(t *testing.T) {
	// A haircut booked a day ahead on an empty calendar.
	now := time.Date(2025, 10, 30, 8, 0, 0, 0, time.UTC)

	candidate := schedule.Candidate{Date: date(2025, 10, 31), Hour: 10, Service: "Haircut"}

	assert.Nil(t, schedule.Check(now, candidate, nil, 0))
}
