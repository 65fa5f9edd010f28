package domain

import "time"

// UsedCapacity суммирует размеры групп по всем активным бронированиям,
// относящимся к ключу (помещение, день, слот). Записи с отсутствующим или
// некорректным размером группы считаются за одного человека.
func UsedCapacity(reservations []*Reservation, roomID string, date time.Time, slot SlotID) int {
	used := 0
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		if !r.Matches(roomID, date, slot) {
			continue
		}
		used += r.EffectivePartySize()
	}
	return used
}

// RemainingCapacity возвращает остаток вместимости помещения при текущей
// занятости used. Для помещений без ограничения возвращает UnlimitedCapacity,
// иначе неотрицательный остаток.
func RemainingCapacity(room *Room, used int) int {
	if !room.HasCapacityLimit() {
		return UnlimitedCapacity
	}

	remaining := room.Capacity - used
	if remaining < 0 {
		return 0
	}
	return remaining
}
