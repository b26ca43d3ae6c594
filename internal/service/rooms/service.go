package rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
)

// confirmBlockAll имя взводимой операции в guard
const confirmBlockAll = "rooms.block_all"

// Service управляет блок-листом комнат. Блокировка не трогает существующие
// бронирования комнаты — она лишь убирает комнату из будущих расчетов
// доступности.
type Service struct {
	blockedRepo BlockedRoomsRepository
	gate        WriteGate
	guard       ConfirmGuard
	rooms       *domain.RoomCatalog
	logger      Logger
}

// NewService создает новый сервис управления комнатами.
func NewService(
	blockedRepo BlockedRoomsRepository,
	gate WriteGate,
	guard ConfirmGuard,
	rooms *domain.RoomCatalog,
	logger Logger,
) *Service {
	return &Service{
		blockedRepo: blockedRepo,
		gate:        gate,
		guard:       guard,
		rooms:       rooms,
		logger:      logger,
	}
}

// Block выводит комнату из оборота.
func (s *Service) Block(ctx context.Context, room string) error {
	s.logger.Info("Block: blocking room=%s", room)
	s.guard.Disarm()

	if !s.rooms.Contains(room) {
		s.logger.Warn("Block: room=%s is not in the catalog", room)
		return ErrUnknownRoom
	}

	return s.gate.Do(ctx, func(ctx context.Context) error {
		blocked, err := s.blockedRepo.Load(ctx)
		if err != nil {
			s.logger.Error("Block: failed to load blocked rooms: %v", err)
			return fmt.Errorf("%w: Block - load: %v", ErrInternal, err)
		}

		if blocked.Contains(room) {
			s.logger.Warn("Block: room=%s already blocked", room)
			return ErrAlreadyBlocked
		}

		blocked[room] = struct{}{}
		if err := s.blockedRepo.Save(ctx, blocked); err != nil {
			s.logger.Error("Block: failed to save blocked rooms: %v", err)
			return err
		}

		s.logger.Info("Block: room=%s blocked", room)
		return nil
	})
}

// Unblock возвращает комнату в оборот.
func (s *Service) Unblock(ctx context.Context, room string) error {
	s.logger.Info("Unblock: unblocking room=%s", room)
	s.guard.Disarm()

	if !s.rooms.Contains(room) {
		s.logger.Warn("Unblock: room=%s is not in the catalog", room)
		return ErrUnknownRoom
	}

	return s.gate.Do(ctx, func(ctx context.Context) error {
		blocked, err := s.blockedRepo.Load(ctx)
		if err != nil {
			s.logger.Error("Unblock: failed to load blocked rooms: %v", err)
			return fmt.Errorf("%w: Unblock - load: %v", ErrInternal, err)
		}

		if !blocked.Contains(room) {
			s.logger.Warn("Unblock: room=%s is not blocked", room)
			return ErrNotBlocked
		}

		delete(blocked, room)
		if err := s.blockedRepo.Save(ctx, blocked); err != nil {
			s.logger.Error("Unblock: failed to save blocked rooms: %v", err)
			return err
		}

		s.logger.Info("Unblock: room=%s unblocked", room)
		return nil
	})
}

// BlockAll заменяет блок-лист полным каталогом комнат.
// Первый вызов взводит подтверждение и возвращает ErrConfirmationRequired.
func (s *Service) BlockAll(ctx context.Context) error {
	if !s.guard.Confirm(confirmBlockAll) {
		s.logger.Warn("BlockAll: armed, waiting for confirmation call")
		return ErrConfirmationRequired
	}

	return s.gate.Do(ctx, func(ctx context.Context) error {
		if err := s.blockedRepo.Save(ctx, domain.NewRoomSet(s.rooms.Rooms())); err != nil {
			s.logger.Error("BlockAll: failed to save blocked rooms: %v", err)
			return err
		}
		s.logger.Info("BlockAll: all %d rooms blocked", s.rooms.Len())
		return nil
	})
}

// UnblockAll очищает блок-лист целиком. Подтверждения не требует:
// операция возвращает комнаты в оборот, а не выводит их.
func (s *Service) UnblockAll(ctx context.Context) error {
	s.guard.Disarm()

	return s.gate.Do(ctx, func(ctx context.Context) error {
		if err := s.blockedRepo.Save(ctx, domain.RoomSet{}); err != nil {
			s.logger.Error("UnblockAll: failed to save blocked rooms: %v", err)
			return err
		}
		s.logger.Info("UnblockAll: block list cleared")
		return nil
	})
}

// Statuses возвращает состояние каждой комнаты каталога.
func (s *Service) Statuses(ctx context.Context) ([]models.RoomStatus, error) {
	blocked, err := s.blockedRepo.Load(ctx)
	if err != nil {
		s.logger.Error("Statuses: failed to load blocked rooms: %v", err)
		return nil, fmt.Errorf("%w: Statuses - load: %v", ErrInternal, err)
	}

	statuses := make([]models.RoomStatus, 0, s.rooms.Len())
	for _, room := range s.rooms.Rooms() {
		statuses = append(statuses, models.RoomStatus{
			Room:    room,
			Blocked: blocked.Contains(room),
		})
	}
	return statuses, nil
}
