package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgValidationFailed   = "заполните все обязательные поля"
	msgUnknownSlot        = "неизвестный временной слот"
	msgUnknownRoom        = "неизвестная комната"
	msgRoomBlocked        = "комната временно недоступна для бронирования"
	msgDateOutOfWindow    = "дата вне окна бронирования"
	msgAlreadyBooked      = "комната уже занята в этом слоте, выберите другую"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrValidation):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, createBooking.ErrUnknownSlot):
			h.logger.Warn("POST /bookings - Unknown slot: %s", req.Slot)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, createBooking.ErrUnknownRoom):
			h.logger.Warn("POST /bookings - Unknown room: %s", req.Room)
			handlers.RespondBadRequest(w, msgUnknownRoom)

		case errors.Is(err, createBooking.ErrRoomBlocked):
			h.logger.Warn("POST /bookings - Room blocked: %s", req.Room)
			handlers.RespondConflict(w, msgRoomBlocked)

		case errors.Is(err, createBooking.ErrDateOutOfWindow):
			h.logger.Warn("POST /bookings - Date out of window: %s", req.Date)
			handlers.RespondBadRequest(w, msgDateOutOfWindow)

		case errors.Is(err, createBooking.ErrAlreadyBooked):
			h.logger.Warn("POST /bookings - Already booked: date=%s slot=%s room=%s",
				req.Date, req.Slot, req.Room)
			handlers.RespondConflict(w, msgAlreadyBooked)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: key=%s name=%s", result.Key, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
