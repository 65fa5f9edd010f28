package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/internal/integrations/roomdirectory"
	"github.com/m04kA/SMC-RoomReservationService/pkg/ptr"
)

type fakeRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeRepo) GetByDateRange(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.reservations {
		if r.RoomID != filter.RoomID {
			continue
		}
		if !filter.IncludeInactive && !r.IsActive() {
			continue
		}
		out = append(out, r)
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

func newTestUseCase(repo *fakeRepo, rooms map[string]*roomdirectory.Room, now time.Time) *UseCase {
	uc := NewUseCase(repo, &fakeRoomClient{rooms: rooms}, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
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

func TestExecute_WeekdayOffersAllSlots(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeRepo{}, map[string]*roomdirectory.Room{"fusion1": fusionRoom()}, now)

	// Понедельник
	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: "fusion1",
		Date:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 4)
	assert.Equal(t, domain.Slot1, resp.Slots[0].ID)
	assert.Equal(t, domain.Slot4, resp.Slots[3].ID)

	for _, s := range resp.Slots {
		assert.Equal(t, 0, s.Used)
		assert.Equal(t, 30, s.Remaining)
		assert.False(t, s.Started, "future day slots are never started")
	}
}

func TestExecute_FridayOffersOnlyAfternoonSlot(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeRepo{}, map[string]*roomdirectory.Room{"fusion1": fusionRoom()}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: "fusion1",
		Date:   time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, domain.Slot3, resp.Slots[0].ID)
}

func TestExecute_WeekendOffersNothing(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeRepo{}, map[string]*roomdirectory.Room{"fusion1": fusionRoom()}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: "fusion1",
		Date:   time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_OccupancyPerSlot(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		reservations: []*domain.Reservation{
			{ID: 1, RoomID: "fusion1", Date: day, Slot: domain.Slot1, PartySize: 4, Status: domain.StatusActive},
			{ID: 2, RoomID: "fusion1", Date: day, Slot: domain.Slot1, PartySize: 6, Status: domain.StatusActive},
			{ID: 3, RoomID: "fusion1", Date: day, Slot: domain.Slot2, PartySize: 30, Status: domain.StatusActive},
		},
	}

	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, map[string]*roomdirectory.Room{"fusion1": fusionRoom()}, now)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: "fusion1", Date: day})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)

	assert.Equal(t, 10, resp.Slots[0].Used)
	assert.Equal(t, 20, resp.Slots[0].Remaining)

	assert.Equal(t, 30, resp.Slots[1].Used)
	assert.Equal(t, 0, resp.Slots[1].Remaining, "fully booked slot shows zero remaining")

	assert.Equal(t, 0, resp.Slots[2].Used)
}

func TestExecute_UnlimitedRoom(t *testing.T) {
	room := fusionRoom()
	room.Capacity = nil

	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeRepo{}, map[string]*roomdirectory.Room{"fusion1": room}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: "fusion1",
		Date:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	for _, s := range resp.Slots {
		assert.Equal(t, domain.UnlimitedCapacity, s.Remaining)
	}
}

func TestExecute_StartedFlagOnCurrentDay(t *testing.T) {
	// Понедельник 14-е, 11:00: первые два слота уже начались
	now := time.Date(2026, 9, 14, 11, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeRepo{}, map[string]*roomdirectory.Room{"fusion1": fusionRoom()}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: "fusion1",
		Date:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)

	assert.True(t, resp.Slots[0].Started)
	assert.True(t, resp.Slots[1].Started)
	assert.False(t, resp.Slots[2].Started)
	assert.False(t, resp.Slots[3].Started)
}

func TestExecute_RoomNotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeRepo{}, map[string]*roomdirectory.Room{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID: "ghost",
		Date:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeRepo{}, map[string]*roomdirectory.Room{"fusion1": fusionRoom()}, now)

	_, err := uc.Execute(context.Background(), &Request{RoomID: "", Date: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RoomID: "fusion1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
