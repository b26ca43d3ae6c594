package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Service отвечает на вопросы о доступности комнат, загружая свежие снимки
// хранилища на каждый запрос. Читает без single-writer gate: чтения
// безопасны между собой, а писатели перечитывают состояние сами.
type Service struct {
	bookingRepo BookingRepository
	blockedRepo BlockedRoomsRepository
	rooms       *domain.RoomCatalog
	logger      Logger
}

// NewService создает новый сервис доступности.
func NewService(
	bookingRepo BookingRepository,
	blockedRepo BlockedRoomsRepository,
	rooms *domain.RoomCatalog,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		blockedRepo: blockedRepo,
		rooms:       rooms,
		logger:      logger,
	}
}

// AvailableRooms возвращает комнаты, свободные в ячейке (date, slot).
func (s *Service) AvailableRooms(ctx context.Context, date, slot string) ([]string, error) {
	bookings, blocked, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	available := Resolve(bookings, blocked, s.rooms, date, slot)
	s.logger.Info("AvailableRooms: date=%s slot=%s -> %d of %d rooms free",
		date, slot, len(available), s.rooms.Len())
	return available, nil
}

// IsFullyBooked сообщает, заняты ли все неблокированные комнаты ячейки.
func (s *Service) IsFullyBooked(ctx context.Context, date, slot string) (bool, error) {
	bookings, blocked, err := s.loadSnapshot(ctx)
	if err != nil {
		return false, err
	}
	return FullyBooked(bookings, blocked, s.rooms, date, slot), nil
}

// BookableRooms возвращает комнаты, не выведенные из оборота блок-листом.
func (s *Service) BookableRooms(ctx context.Context) ([]string, error) {
	blocked, err := s.blockedRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("BookableRooms - load blocked rooms: %w", err)
	}
	return Bookable(blocked, s.rooms), nil
}

func (s *Service) loadSnapshot(ctx context.Context) (map[string]*domain.Booking, domain.RoomSet, error) {
	bookings, err := s.bookingRepo.Load(ctx)
	if err != nil {
		s.logger.Error("availability: failed to load bookings: %v", err)
		return nil, nil, fmt.Errorf("load bookings: %w", err)
	}
	blocked, err := s.blockedRepo.Load(ctx)
	if err != nil {
		s.logger.Error("availability: failed to load blocked rooms: %v", err)
		return nil, nil, fmt.Errorf("load blocked rooms: %w", err)
	}
	return bookings, blocked, nil
}
