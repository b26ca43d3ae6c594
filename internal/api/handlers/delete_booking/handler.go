package delete_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	bookingsService "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
)

const (
	msgKeyRequired = "ключ бронирования обязателен"
	msgNotFound    = "бронирование не найдено"
)

// DeletedResponse HTTP response model удаленной записи
type DeletedResponse struct {
	Key      string `json:"key"`
	Date     string `json:"date"`
	Slot     string `json:"slot"`
	Room     string `json:"room"`
	Name     string `json:"name"`
	BookedAt string `json:"bookedAt"`
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

// Handle DELETE /api/v1/bookings/{slotKey}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["slotKey"]
	if key == "" {
		handlers.RespondBadRequest(w, msgKeyRequired)
		return
	}

	removed, err := h.service.Delete(r.Context(), key)
	if err != nil {
		if errors.Is(err, bookingsService.ErrBookingNotFound) {
			h.logger.Warn("DELETE /bookings - Booking not found: key=%s", key)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /bookings - Failed to delete booking key=%s: %v", key, err)
		handlers.RespondInternalError(w)
		return
	}

	bookedAt := ""
	if !removed.BookedAt.IsZero() {
		bookedAt = removed.BookedAt.Format(time.RFC3339)
	}

	h.logger.Info("DELETE /bookings - Booking removed: key=%s name=%s", key, removed.Name)
	handlers.RespondJSON(w, http.StatusOK, DeletedResponse{
		Key:      removed.Key,
		Date:     removed.Date,
		Slot:     removed.Slot,
		Room:     removed.Room,
		Name:     removed.Name,
		BookedAt: bookedAt,
	})
}
