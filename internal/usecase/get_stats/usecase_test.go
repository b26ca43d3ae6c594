package get_stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

type memBookingRepo struct {
	bookings map[string]*domain.Booking
}

func (m *memBookingRepo) Load(ctx context.Context) (map[string]*domain.Booking, error) {
	return m.bookings, nil
}

type memBlockedRepo struct {
	blocked domain.RoomSet
}

func (m *memBlockedRepo) Load(ctx context.Context) (domain.RoomSet, error) {
	return m.blocked, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)

func newTestUseCase(bookings map[string]*domain.Booking, blocked ...string) *UseCase {
	uc := NewUseCase(
		&memBookingRepo{bookings: bookings},
		&memBlockedRepo{blocked: domain.NewRoomSet(blocked)},
		domain.NewTimeSlotCatalog(domain.DefaultTimeSlots()),
		domain.NewRoomCatalog([]string{"207", "211"}),
		noopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func booking(name string) *domain.Booking {
	return &domain.Booking{
		Name:      name,
		StudentID: "20230001",
		Class:     "СКС-21",
		Phone:     "79990001122",
		Reason:    "репетиция",
		BookedAt:  testNow,
	}
}

func TestExecuteEmptyState(t *testing.T) {
	uc := newTestUseCase(map[string]*domain.Booking{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	// 7 дней x 4 слота x 2 комнаты
	assert.Equal(t, 56, resp.TotalRoomSlots)
	assert.Equal(t, 0, resp.BookedCount)
	assert.Equal(t, 56, resp.RemainingCount)
	assert.Equal(t, 28, resp.FullyFreeCells)
	assert.Empty(t, resp.PerDate)
}

func TestExecuteCounters(t *testing.T) {
	bookings := map[string]*domain.Booking{
		domain.EncodeSlotKey("2026-08-30", "morning-1", "207"):   booking("Иванов"),
		domain.EncodeSlotKey("2026-08-30", "morning-2", "207"):   booking("Петров"),
		domain.EncodeSlotKey("2026-08-31", "morning-1", "211"):   booking("Сидоров"),
		domain.EncodeSlotKey("2026-09-01", "afternoon-1", "211"): booking("Козлова"),
	}
	uc := newTestUseCase(bookings)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 56, resp.TotalRoomSlots)
	assert.Equal(t, 4, resp.BookedCount)
	assert.Equal(t, 52, resp.RemainingCount)
	assert.Equal(t, 24, resp.FullyFreeCells)

	assert.Equal(t, []RoomCount{
		{Room: "207", Count: 2},
		{Room: "211", Count: 2},
	}, resp.PerRoom)
	assert.Equal(t, []DateCount{
		{Date: "2026-08-30", Count: 2},
		{Date: "2026-08-31", Count: 1},
		{Date: "2026-09-01", Count: 1},
	}, resp.PerDate)
	assert.Equal(t, []SlotCount{
		{Slot: "morning-1", Count: 2},
		{Slot: "morning-2", Count: 1},
		{Slot: "afternoon-1", Count: 1},
	}, resp.PerSlot)
}

func TestExecuteBlockedRoomExcludedFromCapacity(t *testing.T) {
	bookings := map[string]*domain.Booking{
		domain.EncodeSlotKey("2026-08-30", "morning-1", "207"): booking("Иванов"),
		domain.EncodeSlotKey("2026-08-30", "morning-2", "211"): booking("Петров"),
	}
	uc := newTestUseCase(bookings, "211")

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	// Емкость без "211"; ее запись не входит в занятость, но остается в
	// пообъектных счетчиках
	assert.Equal(t, 28, resp.TotalRoomSlots)
	assert.Equal(t, 1, resp.BookedCount)
	assert.Equal(t, 27, resp.RemainingCount)
	assert.Equal(t, []RoomCount{
		{Room: "207", Count: 1},
		{Room: "211", Count: 1, Blocked: true},
	}, resp.PerRoom)
}

func TestExecuteAllRoomsBlocked(t *testing.T) {
	uc := newTestUseCase(map[string]*domain.Booking{}, "207", "211")

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, resp.TotalRoomSlots)
	assert.Equal(t, 0, resp.FullyFreeCells)
}

func TestExecuteLegacyKeyCountedAsUnknownRoom(t *testing.T) {
	bookings := map[string]*domain.Booking{
		"2026-08-30_morning-1": booking("Иванов"), // legacy-ключ без комнаты
	}
	uc := newTestUseCase(bookings)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.BookedCount)
	require.Len(t, resp.PerRoom, 3)
	assert.Equal(t, RoomCount{Room: domain.UnknownRoom, Count: 1}, resp.PerRoom[2])
	assert.Equal(t, []SlotCount{{Slot: "morning-1", Count: 1}}, resp.PerSlot)
}
