package block_room

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	roomsService "github.com/m04kA/SMC-RoomBookingService/internal/service/rooms"
)

const (
	msgUnknownRoom    = "неизвестная комната"
	msgAlreadyBlocked = "комната уже заблокирована"
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

// Handle POST /api/v1/rooms/{roomId}/block
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	room := mux.Vars(r)["roomId"]

	if err := h.service.Block(r.Context(), room); err != nil {
		switch {
		case errors.Is(err, roomsService.ErrUnknownRoom):
			h.logger.Warn("POST /rooms/block - Unknown room: %s", room)
			handlers.RespondNotFound(w, msgUnknownRoom)

		case errors.Is(err, roomsService.ErrAlreadyBlocked):
			h.logger.Warn("POST /rooms/block - Already blocked: %s", room)
			handlers.RespondConflict(w, msgAlreadyBlocked)

		default:
			h.logger.Error("POST /rooms/block - Failed to block room %s: %v", room, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/block - Room blocked: %s", room)
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: "комната заблокирована"})
}
