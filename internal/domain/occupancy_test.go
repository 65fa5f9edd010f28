package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUsedCapacity(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	otherDay := day.AddDate(0, 0, 1)

	reservations := []*Reservation{
		{ID: 1, RoomID: "fusion1", Date: day, Slot: Slot1, PartySize: 4, Status: StatusActive},
		{ID: 2, RoomID: "fusion1", Date: day, Slot: Slot1, PartySize: 2, Status: StatusActive},
		// Отменённое бронирование не учитывается
		{ID: 3, RoomID: "fusion1", Date: day, Slot: Slot1, PartySize: 10, Status: StatusCancelled},
		// Другой слот
		{ID: 4, RoomID: "fusion1", Date: day, Slot: Slot2, PartySize: 5, Status: StatusActive},
		// Другое помещение
		{ID: 5, RoomID: "fusion2", Date: day, Slot: Slot1, PartySize: 5, Status: StatusActive},
		// Другой день
		{ID: 6, RoomID: "fusion1", Date: otherDay, Slot: Slot1, PartySize: 5, Status: StatusActive},
	}

	assert.Equal(t, 6, UsedCapacity(reservations, "fusion1", day, Slot1))
	assert.Equal(t, 5, UsedCapacity(reservations, "fusion1", day, Slot2))
	assert.Equal(t, 0, UsedCapacity(reservations, "fusion1", day, Slot3))
}

func TestUsedCapacity_LegacyPartySizeCountsAsOne(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	reservations := []*Reservation{
		{ID: 1, RoomID: "fusion1", Date: day, Slot: Slot1, PartySize: 0, Status: StatusActive},
		{ID: 2, RoomID: "fusion1", Date: day, Slot: Slot1, PartySize: -3, Status: StatusActive},
		{ID: 3, RoomID: "fusion1", Date: day, Slot: Slot1, PartySize: 2, Status: StatusActive},
	}

	assert.Equal(t, 4, UsedCapacity(reservations, "fusion1", day, Slot1))
}

func TestRemainingCapacity(t *testing.T) {
	limited := &Room{ID: "fusion1", Capacity: 30}
	unlimited := &Room{ID: "hall", Capacity: UnlimitedCapacity}

	assert.Equal(t, 30, RemainingCapacity(limited, 0))
	assert.Equal(t, 10, RemainingCapacity(limited, 20))
	assert.Equal(t, 0, RemainingCapacity(limited, 30))
	assert.Equal(t, 0, RemainingCapacity(limited, 45), "overbooked room clamps to zero")

	assert.Equal(t, UnlimitedCapacity, RemainingCapacity(unlimited, 1000))
}
