package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/internal/infra/queue"
	reservationRepo "github.com/m04kA/SMC-RoomReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RoomReservationService/internal/service/reservations/models"
)

type fakeRepo struct {
	reservations map[int64]*domain.Reservation
}

func newFakeRepo(items ...*domain.Reservation) *fakeRepo {
	repo := &fakeRepo{reservations: make(map[int64]*domain.Reservation)}
	for _, r := range items {
		repo.reservations[r.ID] = r
	}
	return repo
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeRepo) GetByUserID(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.reservations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByDateRange(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.reservations {
		if r.RoomID == filter.RoomID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.reservations[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.reservations, id)
	return nil
}

type fakePublisher struct {
	cancelled []queue.ReservationCancelledEvent
}

func (f *fakePublisher) PublishReservationCancelled(ctx context.Context, event queue.ReservationCancelledEvent) error {
	f.cancelled = append(f.cancelled, event)
	return nil
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

func newTestService(repo *fakeRepo, now time.Time) (*Service, *fakePublisher) {
	publisher := &fakePublisher{}
	svc := NewService(repo, publisher, nopLogger{})
	svc.timeProvider = fixedTime{t: now}
	return svc, publisher
}

func studentRequester() models.Requester {
	return models.Requester{ID: "u-1", Name: "Иван Петров", Role: domain.RoleStudent}
}

func sampleReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        42,
		UserID:    "u-1",
		UserName:  "Иван Петров",
		RoomID:    "fusion1",
		Date:      time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Slot:      domain.Slot1,
		PartySize: 3,
		Status:    domain.StatusActive,
		RoomName:  "Fusion 1",
		Zone:      "north",
		Floor:     "2",
	}
}

func TestGetByID(t *testing.T) {
	repo := newFakeRepo(sampleReservation())
	svc, _ := newTestService(repo, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	resp, err := svc.GetByID(context.Background(), 42, studentRequester())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-09-14", resp.Date)
	assert.Equal(t, "slot_1", resp.SlotID)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService(newFakeRepo(), time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	_, err := svc.GetByID(context.Background(), 99, studentRequester())
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByID_AccessControl(t *testing.T) {
	repo := newFakeRepo(sampleReservation())
	svc, _ := newTestService(repo, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	// Чужое бронирование недоступно обычной роли
	stranger := models.Requester{ID: "u-2", Name: "Другой", Role: domain.RoleStudent}
	_, err := svc.GetByID(context.Background(), 42, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Привилегированная роль видит любое бронирование
	teacher := models.Requester{ID: "t-1", Name: "Преподаватель", Role: domain.RoleTeacher}
	_, err = svc.GetByID(context.Background(), 42, teacher)
	assert.NoError(t, err)
}

func TestGetUserReservations(t *testing.T) {
	first := sampleReservation()
	second := sampleReservation()
	second.ID = 43
	other := sampleReservation()
	other.ID = 44
	other.UserID = "u-2"

	repo := newFakeRepo(first, second, other)
	svc, _ := newTestService(repo, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID:    "u-1",
		Requester: studentRequester(),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)
}

func TestGetUserReservations_AccessControl(t *testing.T) {
	repo := newFakeRepo(sampleReservation())
	svc, _ := newTestService(repo, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	// Чужая история недоступна обычной роли
	_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID:    "u-1",
		Requester: models.Requester{ID: "u-2", Name: "Другой", Role: domain.RoleStudent},
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Привилегированной роли доступна
	_, err = svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID:    "u-1",
		Requester: models.Requester{ID: "a-1", Name: "Админ", Role: domain.RoleAdmin},
	})
	assert.NoError(t, err)
}

func TestGetRoomReservations(t *testing.T) {
	repo := newFakeRepo(sampleReservation())
	svc, _ := newTestService(repo, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	teacher := models.Requester{ID: "t-1", Name: "Преподаватель", Role: domain.RoleTeacher}

	resp, err := svc.GetRoomReservations(context.Background(), &models.GetRoomReservationsRequest{
		RoomID:    "fusion1",
		StartDate: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		Requester: teacher,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)

	// Обычной роли расписание помещения недоступно
	_, err = svc.GetRoomReservations(context.Background(), &models.GetRoomReservationsRequest{
		RoomID:    "fusion1",
		StartDate: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		Requester: studentRequester(),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Период задом наперёд отклоняется
	_, err = svc.GetRoomReservations(context.Background(), &models.GetRoomReservationsRequest{
		RoomID:    "fusion1",
		StartDate: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Requester: teacher,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_BeforeCutoffOnReservationDay(t *testing.T) {
	repo := newFakeRepo(sampleReservation())
	// 07:59 дня бронирования
	svc, publisher := newTestService(repo, time.Date(2026, 9, 14, 7, 59, 0, 0, time.UTC))

	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{Requester: studentRequester()})
	require.NoError(t, err)

	assert.Empty(t, repo.reservations, "reservation is deleted")
	require.Len(t, publisher.cancelled, 1)
	assert.Equal(t, int64(42), publisher.cancelled[0].ReservationID)
}

func TestCancel_AfterCutoffOnReservationDay(t *testing.T) {
	repo := newFakeRepo(sampleReservation())
	// 08:00 дня бронирования: дедлайн уже наступил
	svc, _ := newTestService(repo, time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC))

	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{Requester: studentRequester()})
	assert.ErrorIs(t, err, ErrTooLateToCancel)
	assert.Len(t, repo.reservations, 1, "reservation stays in place")
}

func TestCancel_DaysBeforeReservation(t *testing.T) {
	repo := newFakeRepo(sampleReservation())
	// За несколько дней отмена доступна в любое время суток
	svc, _ := newTestService(repo, time.Date(2026, 9, 10, 23, 30, 0, 0, time.UTC))

	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{Requester: studentRequester()})
	assert.NoError(t, err)
}

func TestCancel_PastReservation(t *testing.T) {
	repo := newFakeRepo(sampleReservation())
	svc, _ := newTestService(repo, time.Date(2026, 9, 15, 7, 0, 0, 0, time.UTC))

	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{Requester: studentRequester()})
	assert.ErrorIs(t, err, ErrTooLateToCancel)
}

func TestCancel_PrivilegedBypassesCutoff(t *testing.T) {
	repo := newFakeRepo(sampleReservation())
	// После дедлайна дня бронирования
	svc, _ := newTestService(repo, time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC))

	teacher := models.Requester{ID: "t-1", Name: "Преподаватель", Role: domain.RoleTeacher}
	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{Requester: teacher})
	assert.NoError(t, err)
}

func TestCancel_AccessDenied(t *testing.T) {
	repo := newFakeRepo(sampleReservation())
	svc, _ := newTestService(repo, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	stranger := models.Requester{ID: "u-2", Name: "Другой", Role: domain.RoleStudent}
	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{Requester: stranger})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Len(t, repo.reservations, 1)
}

func TestCancel_NotFound(t *testing.T) {
	svc, _ := newTestService(newFakeRepo(), time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	err := svc.Cancel(context.Background(), 99, &models.CancelReservationRequest{Requester: studentRequester()})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancellableAt(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{"days before", time.Date(2026, 9, 10, 23, 0, 0, 0, time.UTC), true},
		{"evening before", time.Date(2026, 9, 13, 23, 59, 0, 0, time.UTC), true},
		{"same day before cutoff", time.Date(2026, 9, 14, 7, 59, 0, 0, time.UTC), true},
		{"same day at cutoff", time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC), false},
		{"same day after cutoff", time.Date(2026, 9, 14, 20, 0, 0, 0, time.UTC), false},
		{"day after", time.Date(2026, 9, 15, 7, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cancellableAt(day, tt.now))
		})
	}
}
