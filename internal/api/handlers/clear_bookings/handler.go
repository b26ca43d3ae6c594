package clear_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	bookingsService "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
)

const msgConfirmationRequired = "повторите запрос, чтобы подтвердить удаление всех бронирований"

// ClearedResponse HTTP response model
type ClearedResponse struct {
	Cleared int `json:"cleared"`
}

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/clear
// Первый вызов взводит подтверждение (202), повторный выполняет очистку.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cleared, err := h.service.ClearAll(r.Context())
	if err != nil {
		if errors.Is(err, bookingsService.ErrConfirmationRequired) {
			h.logger.Info("POST /bookings/clear - Armed, waiting for confirmation")
			handlers.RespondAccepted(w, msgConfirmationRequired)
			return
		}
		h.logger.Error("POST /bookings/clear - Failed to clear bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings/clear - Cleared %d bookings", cleared)
	handlers.RespondJSON(w, http.StatusOK, ClearedResponse{Cleared: cleared})
}
