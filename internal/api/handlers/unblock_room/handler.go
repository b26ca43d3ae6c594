package unblock_room

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	roomsService "github.com/m04kA/SMC-RoomBookingService/internal/service/rooms"
)

const (
	msgUnknownRoom = "неизвестная комната"
	msgNotBlocked  = "комната не заблокирована"
)

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

// Handle POST /api/v1/rooms/{roomId}/unblock
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	room := mux.Vars(r)["roomId"]

	if err := h.service.Unblock(r.Context(), room); err != nil {
		switch {
		case errors.Is(err, roomsService.ErrUnknownRoom):
			h.logger.Warn("POST /rooms/unblock - Unknown room: %s", room)
			handlers.RespondNotFound(w, msgUnknownRoom)

		case errors.Is(err, roomsService.ErrNotBlocked):
			h.logger.Warn("POST /rooms/unblock - Not blocked: %s", room)
			handlers.RespondConflict(w, msgNotBlocked)

		default:
			h.logger.Error("POST /rooms/unblock - Failed to unblock room %s: %v", room, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/unblock - Room unblocked: %s", room)
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: "комната снова доступна"})
}
