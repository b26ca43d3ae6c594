package get_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// UseCase use case построения сетки расписания на скользящее окно
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

// Execute строит сетку: окно пересчитывается от текущей даты, снимок
// хранилища загружается один раз на весь запрос.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	window := domain.DateWindow(now)

	bookings, err := uc.bookingRepo.Load(ctx)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: load bookings: %v", ErrInternal, err)
	}
	blocked, err := uc.blockedRepo.Load(ctx)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to load blocked rooms: %v", err)
		return nil, fmt.Errorf("%w: load blocked rooms: %v", ErrInternal, err)
	}

	slots := make([]SlotInfo, 0, uc.slots.Len())
	for _, s := range uc.slots.Slots() {
		slots = append(slots, SlotInfo{Name: s.Name, Range: s.Range})
	}

	days := make([]Day, 0, len(window))
	for _, date := range window {
		day := Day{Date: date, Cells: make([]Cell, 0, uc.slots.Len())}
		for _, s := range uc.slots.Slots() {
			day.Cells = append(day.Cells, classifyCell(bookings, blocked, uc.rooms, date, s.Name))
		}
		days = append(days, day)
	}

	uc.logger.Info("GetSchedule: built grid for %s..%s, %d bookings",
		window[0], window[len(window)-1], len(bookings))

	return &Response{
		GeneratedAt: now,
		Window:      window,
		Slots:       slots,
		Days:        days,
	}, nil
}
