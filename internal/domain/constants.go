package domain

// Default values for room policies
const (
	DefaultMinTeamSize = 1
)

// Business validation constants
const (
	MaxPurposeLength        = 500
	MaxSupervisorNameLength = 100
	MaxPartySize            = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CancelCutoffTime время суток, до которого обычные пользователи могут
// отменять бронирование в день самого бронирования
const CancelCutoffTime = "08:00"

// UnlimitedCapacity значение "без ограничения вместимости"
const UnlimitedCapacity = -1

// ActiveStatuses список статусов, учитываемых при подсчёте занятости
var ActiveStatuses = []ReservationStatus{
	StatusActive,
}

// InactiveStatuses список статусов, не учитываемых при подсчёте занятости
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}
