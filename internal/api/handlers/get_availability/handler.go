package get_availability

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

const (
	msgDateRequired = "параметр date обязателен"
	msgSlotRequired = "параметр slot обязателен"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnknownSlot  = "неизвестный временной слот"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date             string   `json:"date"`
	Slot             string   `json:"slot"`
	AvailableRooms   []string `json:"availableRooms"`
	FullyBooked      bool     `json:"fullyBooked"`
	NoRoomsAvailable bool     `json:"noRoomsAvailable"`
}

type Handler struct {
	service AvailabilityService
	slots   *domain.TimeSlotCatalog
	logger  Logger
}

func NewHandler(service AvailabilityService, slots *domain.TimeSlotCatalog, logger Logger) *Handler {
	return &Handler{
		service: service,
		slots:   slots,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD&slot=name
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	slot := r.URL.Query().Get("slot")

	if date == "" {
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}
	if slot == "" {
		handlers.RespondBadRequest(w, msgSlotRequired)
		return
	}
	if _, err := time.ParseInLocation(domain.DateFormat, date, time.Local); err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if !h.slots.Contains(slot) {
		h.logger.Warn("GET /availability - Unknown slot %q", slot)
		handlers.RespondBadRequest(w, msgUnknownSlot)
		return
	}

	available, err := h.service.AvailableRooms(r.Context(), date, slot)
	if err != nil {
		h.logger.Error("GET /availability - Failed to resolve rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	fullyBooked, err := h.service.IsFullyBooked(r.Context(), date, slot)
	if err != nil {
		h.logger.Error("GET /availability - Failed to check fully booked: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	bookable, err := h.service.BookableRooms(r.Context())
	if err != nil {
		h.logger.Error("GET /availability - Failed to load bookable rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{
		Date:             date,
		Slot:             slot,
		AvailableRooms:   available,
		FullyBooked:      fullyBooked,
		NoRoomsAvailable: len(bookable) == 0,
	})
}
