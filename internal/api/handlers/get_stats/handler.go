package get_stats

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	getStats "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_stats"
)

// RoomCount HTTP model счетчика комнаты
type RoomCount struct {
	Room    string `json:"room"`
	Count   int    `json:"count"`
	Blocked bool   `json:"blocked"`
}

// DateCount HTTP model счетчика даты
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// SlotCount HTTP model счетчика слота
type SlotCount struct {
	Slot  string `json:"slot"`
	Count int    `json:"count"`
}

// StatsResponse HTTP response model
type StatsResponse struct {
	Window         []string    `json:"window"`
	TotalRoomSlots int         `json:"totalRoomSlots"`
	BookedCount    int         `json:"bookedCount"`
	RemainingCount int         `json:"remainingCount"`
	FullyFreeCells int         `json:"fullyFreeCells"`
	PerRoom        []RoomCount `json:"perRoom"`
	PerDate        []DateCount `json:"perDate"`
	PerSlot        []SlotCount `json:"perSlot"`
}

type Handler struct {
	useCase GetStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /stats - Failed to build stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(result))
}

func fromUseCaseResponse(resp *getStats.Response) StatsResponse {
	perRoom := make([]RoomCount, 0, len(resp.PerRoom))
	for _, rc := range resp.PerRoom {
		perRoom = append(perRoom, RoomCount{Room: rc.Room, Count: rc.Count, Blocked: rc.Blocked})
	}
	perDate := make([]DateCount, 0, len(resp.PerDate))
	for _, dc := range resp.PerDate {
		perDate = append(perDate, DateCount{Date: dc.Date, Count: dc.Count})
	}
	perSlot := make([]SlotCount, 0, len(resp.PerSlot))
	for _, sc := range resp.PerSlot {
		perSlot = append(perSlot, SlotCount{Slot: sc.Slot, Count: sc.Count})
	}

	return StatsResponse{
		Window:         resp.Window,
		TotalRoomSlots: resp.TotalRoomSlots,
		BookedCount:    resp.BookedCount,
		RemainingCount: resp.RemainingCount,
		FullyFreeCells: resp.FullyFreeCells,
		PerRoom:        perRoom,
		PerDate:        perDate,
		PerSlot:        perSlot,
	}
}
