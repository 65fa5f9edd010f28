package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

// Request модель запроса на получение слотов помещения на день
type Request struct {
	RoomID string    // ID помещения
	Date   time.Time // Дата (без времени)
}

// Response модель ответа со слотами дня
type Response struct {
	RoomID string    // ID помещения
	Date   time.Time // Дата, на которую запрашивались слоты
	Slots  []Slot    // Слоты, предлагаемые в этот день недели
}

// Slot слот дня с текущей занятостью
type Slot struct {
	ID        domain.SlotID    // Идентификатор слота
	Name      string           // Название слота
	StartTime types.TimeString // Время начала
	TimeRange string           // Человекочитаемый диапазон
	Used      int              // Занято мест
	Remaining int              // Остаток мест, domain.UnlimitedCapacity = без ограничения
	Started   bool             // Слот сегодняшнего дня уже начался
}
