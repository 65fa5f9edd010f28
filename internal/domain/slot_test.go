package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotsForWeekday(t *testing.T) {
	tests := []struct {
		name     string
		weekday  time.Weekday
		expected []SlotID
	}{
		{
			name:     "monday offers all four slots",
			weekday:  time.Monday,
			expected: []SlotID{Slot1, Slot2, Slot3, Slot4},
		},
		{
			name:     "thursday offers all four slots",
			weekday:  time.Thursday,
			expected: []SlotID{Slot1, Slot2, Slot3, Slot4},
		},
		{
			name:     "friday offers only the afternoon slot",
			weekday:  time.Friday,
			expected: []SlotID{Slot3},
		},
		{
			name:     "saturday offers nothing",
			weekday:  time.Saturday,
			expected: []SlotID{},
		},
		{
			name:     "sunday offers nothing",
			weekday:  time.Sunday,
			expected: []SlotID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SlotsForWeekday(tt.weekday))
		})
	}
}

func TestSlotOffered(t *testing.T) {
	assert.True(t, SlotOffered(time.Wednesday, Slot1))
	assert.True(t, SlotOffered(time.Friday, Slot3))
	assert.False(t, SlotOffered(time.Friday, Slot1))
	assert.False(t, SlotOffered(time.Friday, Slot4))
	assert.False(t, SlotOffered(time.Sunday, Slot3))
}

func TestSlotByID(t *testing.T) {
	slot, ok := SlotByID(Slot2)
	require.True(t, ok)
	assert.Equal(t, "10:40", slot.StartTime.String())

	_, ok = SlotByID(SlotID("slot_99"))
	assert.False(t, ok)
}

func TestSlotStarted(t *testing.T) {
	// Понедельник 2026-09-14
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		slot    SlotID
		now     time.Time
		started bool
	}{
		{
			name:    "before slot start on the same day",
			date:    day,
			slot:    Slot1,
			now:     time.Date(2026, 9, 14, 8, 59, 0, 0, time.UTC),
			started: false,
		},
		{
			name:    "exactly at slot start",
			date:    day,
			slot:    Slot1,
			now:     time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC),
			started: true,
		},
		{
			name:    "after slot start on the same day",
			date:    day,
			slot:    Slot3,
			now:     time.Date(2026, 9, 14, 14, 0, 0, 0, time.UTC),
			started: true,
		},
		{
			name:    "future day is never started",
			date:    day.AddDate(0, 0, 1),
			slot:    Slot1,
			now:     time.Date(2026, 9, 14, 23, 0, 0, 0, time.UTC),
			started: false,
		},
		{
			name:    "past day is never started",
			date:    day.AddDate(0, 0, -1),
			slot:    Slot1,
			now:     time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC),
			started: false,
		},
		{
			name:    "unknown slot is never started",
			date:    day,
			slot:    SlotID("slot_99"),
			now:     time.Date(2026, 9, 14, 23, 0, 0, 0, time.UTC),
			started: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.started, SlotStarted(tt.date, tt.slot, tt.now))
		})
	}
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(now.AddDate(0, 0, -1), now))
	assert.False(t, IsDateInPast(now, now), "same day is not in the past")
	assert.False(t, IsDateInPast(now.AddDate(0, 0, 1), now))
}
