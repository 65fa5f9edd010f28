package get_available_slots

import (
	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-RoomReservationService/internal/usecase/get_available_slots"
)

// SlotResponse слот дня с текущей занятостью
type SlotResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	TimeRange string `json:"timeRange"`
	Used      int    `json:"used"`
	Remaining *int   `json:"remaining"` // null = без ограничения
	Started   bool   `json:"started"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	RoomID string         `json:"roomId"`
	Date   string         `json:"date"`
	Slots  []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		var remaining *int
		if s.Remaining != domain.UnlimitedCapacity {
			r := s.Remaining
			remaining = &r
		}
		slots = append(slots, SlotResponse{
			ID:        string(s.ID),
			Name:      s.Name,
			StartTime: s.StartTime.String(),
			TimeRange: s.TimeRange,
			Used:      s.Used,
			Remaining: remaining,
			Started:   s.Started,
		})
	}

	return &AvailableSlotsResponse{
		RoomID: resp.RoomID,
		Date:   resp.Date.Format(domain.DateFormat),
		Slots:  slots,
	}
}
