package get_stats

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/availability"
)

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("get_stats: internal error")

// UseCase use case сводной статистики
type UseCase struct {
	bookingRepo  BookingRepository
	blockedRepo  BlockedRoomsRepository
	slots        *domain.TimeSlotCatalog
	rooms        *domain.RoomCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockedRepo BlockedRoomsRepository,
	slots *domain.TimeSlotCatalog,
	rooms *domain.RoomCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockedRepo:  blockedRepo,
		slots:        slots,
		rooms:        rooms,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute собирает статистику по текущему окну и всем хранимым записям.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	bookings, err := uc.bookingRepo.Load(ctx)
	if err != nil {
		uc.logger.Error("GetStats: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: load bookings: %v", ErrInternal, err)
	}
	blocked, err := uc.blockedRepo.Load(ctx)
	if err != nil {
		uc.logger.Error("GetStats: failed to load blocked rooms: %v", err)
		return nil, fmt.Errorf("%w: load blocked rooms: %v", ErrInternal, err)
	}

	window := domain.DateWindow(uc.timeProvider.Now())
	bookable := availability.Bookable(blocked, uc.rooms)

	totalRoomSlots := len(window) * uc.slots.Len() * len(bookable)

	// Занятыми считаются только ячейки неблокированных комнат
	booked := 0
	roomCounts := make(map[string]int, uc.rooms.Len())
	dateCounts := map[string]int{}
	slotCounts := map[string]int{}

	for key, booking := range bookings {
		decoded := domain.DecodeSlotKey(key, uc.rooms)
		room := decoded.ResolveRoom(booking)

		if !blocked.Contains(room) {
			booked++
		}
		roomCounts[room]++
		dateCounts[decoded.Date]++
		slotCounts[decoded.Slot]++
	}

	fullyFree := 0
	if len(bookable) > 0 {
		for _, date := range window {
			for _, s := range uc.slots.Slots() {
				free := availability.Resolve(bookings, blocked, uc.rooms, date, s.Name)
				if len(free) == len(bookable) {
					fullyFree++
				}
			}
		}
	}

	resp := &Response{
		Window:         window,
		TotalRoomSlots: totalRoomSlots,
		BookedCount:    booked,
		RemainingCount: totalRoomSlots - booked,
		FullyFreeCells: fullyFree,
		PerRoom:        perRoom(roomCounts, blocked, uc.rooms),
		PerDate:        perDate(dateCounts),
		PerSlot:        perSlot(slotCounts, uc.slots),
	}

	uc.logger.Info("GetStats: capacity=%d booked=%d fullyFree=%d",
		resp.TotalRoomSlots, resp.BookedCount, resp.FullyFreeCells)
	return resp, nil
}

// perRoom отдает счетчики в порядке каталога; комнаты, встреченные только в
// записях (легаси, "unknown"), идут следом по алфавиту.
func perRoom(counts map[string]int, blocked domain.RoomSet, rooms *domain.RoomCatalog) []RoomCount {
	result := make([]RoomCount, 0, len(counts))
	for _, room := range rooms.Rooms() {
		result = append(result, RoomCount{
			Room:    room,
			Count:   counts[room],
			Blocked: blocked.Contains(room),
		})
		delete(counts, room)
	}

	rest := make([]string, 0, len(counts))
	for room := range counts {
		rest = append(rest, room)
	}
	sort.Strings(rest)
	for _, room := range rest {
		result = append(result, RoomCount{Room: room, Count: counts[room]})
	}
	return result
}

func perDate(counts map[string]int) []DateCount {
	dates := make([]string, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	result := make([]DateCount, 0, len(dates))
	for _, date := range dates {
		result = append(result, DateCount{Date: date, Count: counts[date]})
	}
	return result
}

// perSlot отдает счетчики в порядке каталога слотов, затем прочие слоты,
// встреченные в ключах, по алфавиту.
func perSlot(counts map[string]int, slots *domain.TimeSlotCatalog) []SlotCount {
	result := make([]SlotCount, 0, len(counts))
	for _, s := range slots.Slots() {
		if count, ok := counts[s.Name]; ok {
			result = append(result, SlotCount{Slot: s.Name, Count: count})
			delete(counts, s.Name)
		}
	}

	rest := make([]string, 0, len(counts))
	for slot := range counts {
		rest = append(rest, slot)
	}
	sort.Strings(rest)
	for _, slot := range rest {
		result = append(result, SlotCount{Slot: slot, Count: counts[slot]})
	}
	return result
}
