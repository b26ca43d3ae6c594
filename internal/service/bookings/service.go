package bookings

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
)

// confirmClearAll имя взводимой операции в guard
const confirmClearAll = "bookings.clear_all"

// Service административные операции над существующими бронированиями:
// удаление, массовая очистка, листинг. Создание живет в usecase
// create_booking, но проходит через тот же gate.
type Service struct {
	bookingRepo BookingRepository
	gate        WriteGate
	guard       ConfirmGuard
	rooms       *domain.RoomCatalog
	logger      Logger
}

// NewService создает новый сервис бронирований.
func NewService(
	bookingRepo BookingRepository,
	gate WriteGate,
	guard ConfirmGuard,
	rooms *domain.RoomCatalog,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		gate:        gate,
		guard:       guard,
		rooms:       rooms,
		logger:      logger,
	}
}

// Delete удаляет бронирование по сериализованному ключу и возвращает
// удаленную запись. Ключ принимается в обоих форматах — как лежит в файле.
func (s *Service) Delete(ctx context.Context, key string) (*models.BookingRecord, error) {
	s.logger.Info("Delete: removing booking key=%s", key)

	// Любая другая операция сбрасывает взведенную очистку
	s.guard.Disarm()

	var removed *models.BookingRecord
	err := s.gate.Do(ctx, func(ctx context.Context) error {
		all, err := s.bookingRepo.Load(ctx)
		if err != nil {
			s.logger.Error("Delete: failed to load bookings: %v", err)
			return fmt.Errorf("%w: Delete - load: %v", ErrInternal, err)
		}

		booking, ok := all[key]
		if !ok {
			s.logger.Warn("Delete: booking key=%s not found", key)
			return ErrBookingNotFound
		}

		delete(all, key)
		if err := s.bookingRepo.Save(ctx, all); err != nil {
			s.logger.Error("Delete: failed to save bookings: %v", err)
			return err
		}

		record := models.FromDomainBooking(domain.DecodeSlotKey(key, s.rooms), booking)
		removed = &record
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Delete: removed booking key=%s name=%s", key, removed.Name)
	return removed, nil
}

// ClearAll удаляет все бронирования и возвращает их количество.
// Первый вызов только взводит подтверждение и возвращает
// ErrConfirmationRequired; очистку выполняет повторный вызов.
func (s *Service) ClearAll(ctx context.Context) (int, error) {
	if !s.guard.Confirm(confirmClearAll) {
		s.logger.Warn("ClearAll: armed, waiting for confirmation call")
		return 0, ErrConfirmationRequired
	}

	var cleared int
	err := s.gate.Do(ctx, func(ctx context.Context) error {
		all, err := s.bookingRepo.Load(ctx)
		if err != nil {
			s.logger.Error("ClearAll: failed to load bookings: %v", err)
			return fmt.Errorf("%w: ClearAll - load: %v", ErrInternal, err)
		}

		cleared = len(all)
		if err := s.bookingRepo.Save(ctx, map[string]*domain.Booking{}); err != nil {
			s.logger.Error("ClearAll: failed to save empty map: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("ClearAll: removed %d bookings", cleared)
	return cleared, nil
}

// List возвращает все записи, отсортированные по дате, слоту и комнате.
// Бронирования заблокированных комнат остаются видимыми: блок-лист влияет
// только на доступность, не на историю.
func (s *Service) List(ctx context.Context) ([]models.BookingRecord, error) {
	all, err := s.bookingRepo.Load(ctx)
	if err != nil {
		s.logger.Error("List: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: List - load: %v", ErrInternal, err)
	}

	records := make([]models.BookingRecord, 0, len(all))
	for key, booking := range all {
		records = append(records, models.FromDomainBooking(domain.DecodeSlotKey(key, s.rooms), booking))
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		if records[i].Slot != records[j].Slot {
			return records[i].Slot < records[j].Slot
		}
		return records[i].Room < records[j].Room
	})

	s.logger.Info("List: fetched %d bookings", len(records))
	return records, nil
}
