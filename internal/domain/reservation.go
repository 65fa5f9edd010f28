package domain

import "time"

// Role роль пользователя в организации
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// IsPrivileged возвращает true для ролей, которым доступны помещения с
// ограниченным доступом, бронирование начавшихся слотов и отмена без
// ограничения по времени
func (r Role) IsPrivileged() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// IsValid возвращает true для известных ролей
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleTeacher || r == RoleAdmin
}

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusActive    ReservationStatus = "active"
	StatusCancelled ReservationStatus = "cancelled"
)

// Participant участник бронирования (id + имя)
type Participant struct {
	UserID string
	Name   string
}

// Reservation бронирование помещения на один слот одного дня
type Reservation struct {
	ID       int64
	UserID   string
	UserName string

	RoomID string
	Date   time.Time // календарный день, время не используется
	Slot   SlotID

	// PartySize полное число людей по бронированию. Для обычных ролей это
	// 1 + число участников в Participants, для привилегированных - введённое
	// число студентов (Participants пустой).
	PartySize int

	Purpose        string
	SupervisorName string
	Status         ReservationStatus

	// Participants именованные участники помимо владельца бронирования.
	// Пустой список для привилегированных ролей.
	Participants []Participant

	// Denormalized data for history
	RoomName string
	Zone     string
	Floor    string

	CreatedAt time.Time
}

// IsActive возвращает true, если бронирование учитывается при подсчёте занятости
func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// Matches возвращает true, если бронирование относится к указанному ключу
// (помещение, день, слот)
func (r *Reservation) Matches(roomID string, date time.Time, slot SlotID) bool {
	return r.RoomID == roomID && r.Slot == slot && IsSameDay(r.Date, date)
}

// EffectivePartySize возвращает размер группы с фолбэком для легаси-записей,
// где размер отсутствует или некорректен
func (r *Reservation) EffectivePartySize() int {
	if r.PartySize < 1 {
		return 1
	}
	return r.PartySize
}

// ReservationsFilter фильтр для выборки бронирований по периоду
type ReservationsFilter struct {
	RoomID          string     // Опционально, пустая строка - все помещения
	StartDate       *time.Time // Начало периода (опционально)
	EndDate         *time.Time // Конец периода (опционально)
	IncludeInactive bool       // Включать ли отменённые бронирования
}
