package queue

// Имена очередей событий жизненного цикла бронирования
const (
	QueueReservationCreated   = "reservation.created"
	QueueReservationCancelled = "reservation.cancelled"
)

// ReservationCreatedEvent публикуется после успешного создания бронирования.
// Содержит достаточно данных, чтобы сервис уведомлений не ходил в БД.
type ReservationCreatedEvent struct {
	ReservationID int64  `json:"reservation_id"`
	UserID        string `json:"user_id"`
	UserName      string `json:"user_name"`
	RoomID        string `json:"room_id"`
	RoomName      string `json:"room_name"`
	Date          string `json:"date"` // YYYY-MM-DD
	SlotID        string `json:"slot_id"`
	PartySize     int    `json:"party_size"`
	CreatedAt     string `json:"created_at"` // RFC 3339
}

// ReservationCancelledEvent публикуется после отмены бронирования
type ReservationCancelledEvent struct {
	ReservationID int64  `json:"reservation_id"`
	UserID        string `json:"user_id"`
	RoomID        string `json:"room_id"`
	Date          string `json:"date"` // YYYY-MM-DD
	SlotID        string `json:"slot_id"`
	PartySize     int    `json:"party_size"`
	CancelledBy   string `json:"cancelled_by"`
	CancelledAt   string `json:"cancelled_at"` // RFC 3339
}
