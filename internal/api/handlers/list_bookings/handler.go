package list_bookings

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
)

// BookingRecord HTTP model одной записи
type BookingRecord struct {
	Key       string `json:"key"`
	Date      string `json:"date"`
	Slot      string `json:"slot"`
	Room      string `json:"room"`
	Name      string `json:"name"`
	StudentID string `json:"studentId,omitempty"`
	Class     string `json:"class"`
	Phone     string `json:"phone"`
	Reason    string `json:"reason"`
	BookedAt  string `json:"bookedAt"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Bookings []BookingRecord `json:"bookings"`
	Total    int             `json:"total"`
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

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceRecords(records))
}

func fromServiceRecords(records []models.BookingRecord) ListResponse {
	out := make([]BookingRecord, 0, len(records))
	for _, rec := range records {
		bookedAt := ""
		if !rec.BookedAt.IsZero() {
			bookedAt = rec.BookedAt.Format(time.RFC3339)
		}
		out = append(out, BookingRecord{
			Key:       rec.Key,
			Date:      rec.Date,
			Slot:      rec.Slot,
			Room:      rec.Room,
			Name:      rec.Name,
			StudentID: rec.StudentID,
			Class:     rec.Class,
			Phone:     rec.Phone,
			Reason:    rec.Reason,
			BookedAt:  bookedAt,
		})
	}
	return ListResponse{Bookings: out, Total: len(out)}
}
