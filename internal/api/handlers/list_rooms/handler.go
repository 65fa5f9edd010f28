package list_rooms

import (
	"net/http"
	"sort"

	"github.com/m04kA/SMC-RoomReservationService/internal/api/handlers"
)

type Handler struct {
	rooms  RoomDirectoryClient
	logger Logger
}

func NewHandler(rooms RoomDirectoryClient, logger Logger) *Handler {
	return &Handler{
		rooms:  rooms,
		logger: logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.rooms.ListRooms(r.Context())
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromDirectoryRooms(rooms)

	// Порядок отображения задаётся справочником
	sort.SliceStable(response.Rooms, func(i, j int) bool {
		return response.Rooms[i].DisplayOrder < response.Rooms[j].DisplayOrder
	})

	handlers.RespondJSON(w, http.StatusOK, response)
}
