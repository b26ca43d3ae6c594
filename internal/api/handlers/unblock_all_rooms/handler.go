package unblock_all_rooms

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
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

// Handle POST /api/v1/rooms/unblock-all
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.UnblockAll(r.Context()); err != nil {
		h.logger.Error("POST /rooms/unblock-all - Failed to unblock all rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /rooms/unblock-all - All rooms unblocked")
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: "все комнаты снова доступны"})
}
