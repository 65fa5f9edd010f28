package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// buildDaySlots собирает слоты дня с занятостью по уже загруженным
// бронированиям. Набор слотов определяется днём недели: понедельник-четверг -
// все четыре, пятница - только дневной, выходные - ни одного.
func buildDaySlots(
	room *domain.Room,
	date time.Time,
	reservations []*domain.Reservation,
	now time.Time,
) []Slot {
	offered := domain.SlotsForWeekday(date.Weekday())
	result := make([]Slot, 0, len(offered))

	for _, id := range offered {
		slot, ok := domain.SlotByID(id)
		if !ok {
			continue
		}

		used := domain.UsedCapacity(reservations, room.ID, date, id)

		result = append(result, Slot{
			ID:        id,
			Name:      slot.Name,
			StartTime: slot.StartTime,
			TimeRange: slot.TimeRange,
			Used:      used,
			Remaining: domain.RemainingCapacity(room, used),
			Started:   domain.SlotStarted(date, id, now),
		})
	}

	return result
}
