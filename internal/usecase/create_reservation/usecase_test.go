package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/internal/infra/queue"
	"github.com/m04kA/SMC-RoomReservationService/internal/integrations/roomdirectory"
	"github.com/m04kA/SMC-RoomReservationService/pkg/ptr"
)

// Фейки зависимостей use case

type fakeRepo struct {
	reservations []*domain.Reservation
	nextID       int64
}

func (f *fakeRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.nextID++
	created := *res
	created.ID = f.nextID
	created.CreatedAt = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	f.reservations = append(f.reservations, &created)
	return &created, nil
}

func (f *fakeRepo) GetBySlot(ctx context.Context, roomID string, date time.Time, slot domain.SlotID) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.reservations {
		if r.IsActive() && r.Matches(roomID, date, slot) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeRoomClient struct {
	rooms map[string]*roomdirectory.Room
}

func (f *fakeRoomClient) GetRoom(ctx context.Context, roomID string) (*roomdirectory.Room, error) {
	room, ok := f.rooms[roomID]
	if !ok {
		return nil, roomdirectory.ErrRoomNotFound
	}
	return room, nil
}

type fakePublisher struct {
	created []queue.ReservationCreatedEvent
}

func (f *fakePublisher) PublishReservationCreated(ctx context.Context, event queue.ReservationCreatedEvent) error {
	f.created = append(f.created, event)
	return nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	t time.Time
}

func (f fixedTime) Now() time.Time {
	return f.t
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Вспомогательная сборка

func newTestUseCase(repo *fakeRepo, rooms map[string]*roomdirectory.Room, now time.Time) (*UseCase, *fakePublisher) {
	publisher := &fakePublisher{}
	uc := NewUseCase(repo, &fakeRoomClient{rooms: rooms}, publisher, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc, publisher
}

func fusionRoom() *roomdirectory.Room {
	return &roomdirectory.Room{
		ID:          "fusion1",
		Name:        "Fusion 1",
		Zone:        "north",
		Floor:       "2",
		Capacity:    ptr.Ptr(30),
		MinTeamSize: 1,
		Enabled:     true,
	}
}

func validRequest() *Request {
	return &Request{
		Requester: Requester{ID: "u-1", Name: "Иван Петров", Role: domain.RoleStudent},
		RoomID:    "fusion1",
		// Понедельник
		Date:           time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Slot:           domain.Slot1,
		Headcount:      0,
		Purpose:        "работа над проектом",
		SupervisorName: "А. Смирнова",
	}
}

// Тесты

func TestExecute_CreatesReservation(t *testing.T) {
	repo := &fakeRepo{}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	uc, publisher := newTestUseCase(repo, map[string]*roomdirectory.Room{"fusion1": fusionRoom()}, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "u-1", resp.UserID)
	assert.Equal(t, 1, resp.PartySize, "requester alone counts as one")
	assert.Equal(t, "Fusion 1", resp.RoomName)
	assert.Equal(t, "north", resp.Zone)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
	assert.Empty(t, resp.Participants)

	require.Len(t, publisher.created, 1)
	assert.Equal(t, int64(1), publisher.created[0].ReservationID)
}

func TestExecute_OrdinaryRolePartyIncludesCompanions(t *testing.T) {
	repo := &fakeRepo{}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(repo, map[string]*roomdirectory.Room{"fusion1": fusionRoom()}, now)

	req := validRequest()
	req.Headcount = 2
	req.Companions = []domain.Participant{
		{UserID: "u-2", Name: "Мария"},
		{UserID: "u-3", Name: "Олег"},
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.PartySize, "requester plus two companions")
	assert.Len(t, resp.Participants, 2)
}

func TestExecute_CompanionCountMismatch(t *testing.T) {
	repo := &fakeRepo{}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(repo, map[string]*roomdirectory.Room{"fusion1": fusionRoom()}, now)

	req := validRequest()
	req.Headcount = 2
	req.Companions = []domain.Participant{{UserID: "u-2", Name: "Мария"}}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.reservations, "nothing is written on validation failure")
}

func TestExecute_DuplicateCompanionsAdmitted(t *testing.T) {
	repo := &fakeRepo{}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(repo, map[string]*roomdirectory.Room{"fusion1": fusionRoom()}, now)

	req := validRequest()
	req.Headcount = 2
	req.Companions = []domain.Participant{
		{UserID: "u-2", Name: "Мария"},
		{UserID: "u-2", Name: "Мария"},
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.PartySize, "duplicates are advisory, party still counted in full")
}

func TestExecute_PrivilegedRoleUsesHeadcountAsPartySize(t *testing.T) {
	repo := &fakeRepo{}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	room := fusionRoom()
	room.MinTeamSize = 3
	uc, _ := newTestUseCase(repo, map[string]*roomdirectory.Room{"fusion1": room}, now)

	req := validRequest()
	req.Requester.Role = domain.RoleTeacher
	req.Headcount = 5

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 5, resp.PartySize)
	assert.Empty(t, resp.Participants, "privileged reservations carry no roster")
}

func TestExecute_CapacityExhaustion(t *testing.T) {
	repo := &fakeRepo{}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(repo, map[string]*roomdirectory.Room{"fusion1": fusionRoom()}, now)

	// Первая группа занимает 20 мест из 30
	first := validRequest()
	first.Requester = Requester{ID: "t-1", Name: "Преподаватель", Role: domain.RoleTeacher}
	first.Headcount = 20
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	// Вторая группа на 20 мест не помещается, в отказе точный остаток
	second := validRequest()
	second.Requester = Requester{ID: "t-2", Name: "Преподаватель 2", Role: domain.RoleTeacher}
	second.Headcount = 20
	_, err = uc.Execute(context.Background(), second)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 10, capErr.Remaining)
	assert.Len(t, repo.reservations, 1, "rejected reservation is not written")

	// Группа ровно на остаток проходит
	third := validRequest()
	third.Requester = Requester{ID: "t-3", Name: "Преподаватель 3", Role: domain.RoleTeacher}
	third.Headcount = 10
	_, err = uc.Execute(context.Background(), third)
	require.NoError(t, err)
}

func TestExecute_RoomNotFound(t *testing.T) {
	repo := &fakeRepo{}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(repo, map[string]*roomdirectory.Room{}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_RestrictedRoomRejectsStudent(t *testing.T) {
	repo := &fakeRepo{}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	room := fusionRoom()
	room.ID = "woodwork"
	room.RestrictedAccess = true
	uc, _ := newTestUseCase(repo, map[string]*roomdirectory.Room{"woodwork": room}, now)

	req := validRequest()
	req.RoomID = "woodwork"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomRestricted)
}

func TestExecute_PastDate(t *testing.T) {
	repo := &fakeRepo{}
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(repo, map[string]*roomdirectory.Room{"fusion1": fusionRoom()}, now)

	req := validRequest() // 2026-09-14, уже вчера
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SlotNotOfferedOnFriday(t *testing.T) {
	repo := &fakeRepo{}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(repo, map[string]*roomdirectory.Room{"fusion1": fusionRoom()}, now)

	req := validRequest()
	// Пятница: предлагается только дневной слот
	req.Date = time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC)
	req.Slot = domain.Slot1

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotOffered)

	req.Slot = domain.Slot3
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_StartedSlot(t *testing.T) {
	repo := &fakeRepo{}
	// Понедельник 14-е, 09:30 - первая пара уже идёт
	now := time.Date(2026, 9, 14, 9, 30, 0, 0, time.UTC)
	uc, _ := newTestUseCase(repo, map[string]*roomdirectory.Room{"fusion1": fusionRoom()}, now)

	req := validRequest()
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotAlreadyStarted)

	// Привилегированная роль обходит запрет
	req.Requester.Role = domain.RoleAdmin
	req.Headcount = 1
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ValidationErrors(t *testing.T) {
	repo := &fakeRepo{}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(repo, map[string]*roomdirectory.Room{"fusion1": fusionRoom()}, now)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty requester id", func(req *Request) { req.Requester.ID = "" }},
		{"blank requester name", func(req *Request) { req.Requester.Name = "  " }},
		{"unknown role", func(req *Request) { req.Requester.Role = "visitor" }},
		{"empty room id", func(req *Request) { req.RoomID = "" }},
		{"unknown slot", func(req *Request) { req.Slot = "slot_99" }},
		{"blank purpose", func(req *Request) { req.Purpose = " " }},
		{"blank supervisor", func(req *Request) { req.SupervisorName = "" }},
		{"negative headcount", func(req *Request) { req.Headcount = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_PrivilegedZeroHeadcountRejected(t *testing.T) {
	repo := &fakeRepo{}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(repo, map[string]*roomdirectory.Room{"fusion1": fusionRoom()}, now)

	req := validRequest()
	req.Requester.Role = domain.RoleTeacher
	req.Headcount = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
