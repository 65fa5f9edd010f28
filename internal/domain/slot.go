package domain

import (
	"time"

	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

// SlotID идентификатор одного из фиксированных дневных слотов
type SlotID string

const (
	Slot1 SlotID = "slot_1"
	Slot2 SlotID = "slot_2"
	Slot3 SlotID = "slot_3" // дневной слот, единственный доступный в пятницу
	Slot4 SlotID = "slot_4"
)

// Slot описание временного слота: статическая конфигурация, не хранится в БД
type Slot struct {
	ID        SlotID
	Name      string
	StartTime types.TimeString
	TimeRange string // человекочитаемый диапазон для отображения
}

// allSlots фиксированный набор слотов в порядке следования в течение дня
var allSlots = []Slot{
	{ID: Slot1, Name: "1-я пара", StartTime: "09:00", TimeRange: "09:00–10:30"},
	{ID: Slot2, Name: "2-я пара", StartTime: "10:40", TimeRange: "10:40–12:10"},
	{ID: Slot3, Name: "дневной слот", StartTime: "13:40", TimeRange: "13:40–15:10"},
	{ID: Slot4, Name: "4-я пара", StartTime: "15:20", TimeRange: "15:20–16:50"},
}

// SlotByID возвращает описание слота по идентификатору
func SlotByID(id SlotID) (Slot, bool) {
	for _, s := range allSlots {
		if s.ID == id {
			return s, true
		}
	}
	return Slot{}, false
}

// SlotsForWeekday возвращает слоты, предлагаемые в указанный день недели,
// в фиксированном порядке. Понедельник-четверг: все четыре слота, пятница:
// только дневной слот, суббота и воскресенье: ни одного. Ограничение
// соблюдается здесь независимо от выбора дат выше по стеку, чтобы
// некорректная дата никогда не давала слотов.
func SlotsForWeekday(weekday time.Weekday) []SlotID {
	switch weekday {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday:
		ids := make([]SlotID, 0, len(allSlots))
		for _, s := range allSlots {
			ids = append(ids, s.ID)
		}
		return ids
	case time.Friday:
		return []SlotID{Slot3}
	default:
		return []SlotID{}
	}
}

// SlotOffered возвращает true, если слот предлагается в указанный день недели
func SlotOffered(weekday time.Weekday, id SlotID) bool {
	for _, offered := range SlotsForWeekday(weekday) {
		if offered == id {
			return true
		}
	}
	return false
}

// SlotStarted возвращает true, только если date совпадает с календарным днём
// now и время начала слота не позже времени суток now. Для любых других дат
// возвращает false: прошедшие дни отсекаются выбором даты выше по стеку,
// а будущие дни никогда не считаются начавшимися.
func SlotStarted(date time.Time, id SlotID, now time.Time) bool {
	if !IsSameDay(date, now) {
		return false
	}

	slot, ok := SlotByID(id)
	if !ok {
		return false
	}

	current := types.NewTimeString(now)
	return !slot.StartTime.IsAfter(current)
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func IsDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
