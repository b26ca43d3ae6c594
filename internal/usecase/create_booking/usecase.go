package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	blockedRepo  BlockedRoomsRepository
	gate         WriteGate
	guard        ConfirmGuard
	slots        *domain.TimeSlotCatalog
	rooms        *domain.RoomCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockedRepo BlockedRoomsRepository,
	gate WriteGate,
	guard ConfirmGuard,
	slots *domain.TimeSlotCatalog,
	rooms *domain.RoomCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockedRepo:  blockedRepo,
		gate:         gate,
		guard:        guard,
		slots:        slots,
		rooms:        rooms,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет создание бронирования.
// Проверка "ячейка свободна" выполняется под write gate по свежепрочитанному
// состоянию файла: повторная проверка перед записью закрывает гонку между
// показом доступности и подтверждением формы.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s slot=%s room=%s name=%s",
		req.Date.Format(domain.DateFormat), req.Slot, req.Room, req.Name)

	// Создание — тоже изменяющая операция: сбрасывает взведенные подтверждения
	uc.guard.Disarm()

	// 1. Валидация обязательных полей
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Каталожные проверки
	if !uc.slots.Contains(req.Slot) {
		uc.logger.Warn("CreateBooking: unknown slot=%s", req.Slot)
		return nil, ErrUnknownSlot
	}
	if !uc.rooms.Contains(req.Room) {
		uc.logger.Warn("CreateBooking: unknown room=%s", req.Room)
		return nil, ErrUnknownRoom
	}

	// 3. Дата должна попадать в скользящее окно
	now := uc.timeProvider.Now()
	dateStr := req.Date.Format(domain.DateFormat)
	if err := validateDateInWindow(dateStr, domain.DateWindow(now)); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	key := domain.EncodeSlotKey(dateStr, req.Slot, req.Room)
	var created *domain.Booking

	// 4. Перечитать-проверить-записать под gate
	err := uc.gate.Do(ctx, func(ctx context.Context) error {
		// 4.1. Комната не должна быть в блок-листе
		blocked, err := uc.blockedRepo.Load(ctx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load blocked rooms: %v", err)
			return fmt.Errorf("%w: load blocked rooms: %v", ErrInternal, err)
		}
		if blocked.Contains(req.Room) {
			uc.logger.Warn("CreateBooking: room=%s is blocked", req.Room)
			return ErrRoomBlocked
		}

		// 4.2. Свежий снимок бронирований
		all, err := uc.bookingRepo.Load(ctx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load bookings: %v", err)
			return fmt.Errorf("%w: load bookings: %v", ErrInternal, err)
		}

		if _, taken := all[key]; taken {
			uc.logger.Warn("CreateBooking: key=%s already booked", key)
			return ErrAlreadyBooked
		}

		// 4.3. Создаем запись со штампом времени
		booking := &domain.Booking{
			Name:      req.Name,
			StudentID: req.StudentID,
			Class:     req.Class,
			Phone:     req.Phone,
			Reason:    req.Reason,
			Classroom: req.Room,
			BookedAt:  now,
		}

		all[key] = booking
		if err := uc.bookingRepo.Save(ctx, all); err != nil {
			uc.logger.Error("CreateBooking: failed to save bookings: %v", err)
			return err
		}

		created = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking key=%s", key)

	return &Response{
		Key:       key,
		Date:      dateStr,
		Slot:      req.Slot,
		Room:      req.Room,
		Name:      created.Name,
		StudentID: created.StudentID,
		Class:     created.Class,
		Phone:     created.Phone,
		Reason:    created.Reason,
		BookedAt:  created.BookedAt,
	}, nil
}
