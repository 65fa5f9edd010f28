package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// Requester инициатор бронирования. Передается явно в каждом запросе,
// никакого общего состояния авторизации usecase не читает.
type Requester struct {
	ID   string      // ID пользователя
	Name string      // Отображаемое имя
	Role domain.Role // Роль (student / teacher / admin)
}

// Request модель запроса на создание бронирования
type Request struct {
	Requester Requester
	RoomID    string        // ID помещения
	Date      time.Time     // Дата бронирования (без времени)
	Slot      domain.SlotID // Слот дня

	// Headcount зависит от роли: для обычной роли - число именованных
	// спутников (сам заявитель считается отдельно), для привилегированной -
	// число студентов, покрытых бронированием.
	Headcount int

	// Companions состав группы помимо заявителя. Обязателен для обычной роли
	// (ровно Headcount записей), игнорируется для привилегированных ролей.
	Companions []domain.Participant

	Purpose        string // Цель бронирования
	SupervisorName string // Имя ответственного (обязательно для всех ролей)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	UserID    string
	UserName  string
	RoomID    string
	Date      time.Time
	Slot      domain.SlotID
	PartySize int

	Purpose        string
	SupervisorName string
	Status         string
	Participants   []domain.Participant

	// Денормализованные данные помещения
	RoomName string
	Zone     string
	Floor    string

	CreatedAt time.Time
}
