package block_all_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	roomsService "github.com/m04kA/SMC-RoomBookingService/internal/service/rooms"
)

const msgConfirmationRequired = "повторите запрос, чтобы подтвердить блокировку всех комнат"

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

// Handle POST /api/v1/rooms/block-all
// Первый вызов взводит подтверждение (202), повторный блокирует все комнаты.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.BlockAll(r.Context()); err != nil {
		if errors.Is(err, roomsService.ErrConfirmationRequired) {
			h.logger.Info("POST /rooms/block-all - Armed, waiting for confirmation")
			handlers.RespondAccepted(w, msgConfirmationRequired)
			return
		}
		h.logger.Error("POST /rooms/block-all - Failed to block all rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /rooms/block-all - All rooms blocked")
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: "все комнаты заблокированы"})
}
