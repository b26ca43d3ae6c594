package get_rooms

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
)

// RoomStatus HTTP model состояния комнаты
type RoomStatus struct {
	Room    string `json:"room"`
	Blocked bool   `json:"blocked"`
}

// RoomsResponse HTTP response model
type RoomsResponse struct {
	Rooms []RoomStatus `json:"rooms"`
}

type Handler struct {
	service RoomsService
	logger  Logger
}

func NewHandler(service RoomsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.service.Statuses(r.Context())
	if err != nil {
		h.logger.Error("GET /rooms - Failed to load room statuses: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	rooms := make([]RoomStatus, 0, len(statuses))
	for _, s := range statuses {
		rooms = append(rooms, RoomStatus{Room: s.Room, Blocked: s.Blocked})
	}

	handlers.RespondJSON(w, http.StatusOK, RoomsResponse{Rooms: rooms})
}
