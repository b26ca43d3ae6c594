package get_schedule

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

func cellFor(t *testing.T, resp *Response, date, slot string) Cell {
	t.Helper()
	for _, day := range resp.Days {
		if day.Date != date {
			continue
		}
		for _, c := range day.Cells {
			if c.Slot == slot {
				return c
			}
		}
	}
	t.Fatalf("cell %s/%s not found", date, slot)
	return Cell{}
}

func TestExecuteWindowAndGridShape(t *testing.T) {
	uc := newTestUseCase(map[string]*domain.Booking{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Window, domain.WindowDays)
	assert.Equal(t, "2026-08-30", resp.Window[0])
	assert.Equal(t, "2026-09-05", resp.Window[len(resp.Window)-1])

	require.Len(t, resp.Days, domain.WindowDays)
	for i, day := range resp.Days {
		assert.Equal(t, resp.Window[i], day.Date)
		assert.Len(t, day.Cells, 4)
	}
	assert.Equal(t, "morning-1", resp.Slots[0].Name)
	assert.Equal(t, "08:00-10:00", resp.Slots[0].Range)
}

func TestExecuteCellStates(t *testing.T) {
	bookings := map[string]*domain.Booking{
		domain.EncodeSlotKey("2026-08-30", "morning-1", "207"): booking("Иванов"),
		domain.EncodeSlotKey("2026-08-30", "morning-2", "207"): booking("Петров"),
		domain.EncodeSlotKey("2026-08-30", "morning-2", "211"): booking("Сидоров"),
	}
	uc := newTestUseCase(bookings)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	partial := cellFor(t, resp, "2026-08-30", "morning-1")
	assert.Equal(t, StatePartiallyBooked, partial.State)
	assert.Equal(t, []string{"211"}, partial.AvailableRooms)
	require.Len(t, partial.Bookings, 1)
	assert.Equal(t, "Иванов", partial.Bookings[0].Name)

	full := cellFor(t, resp, "2026-08-30", "morning-2")
	assert.Equal(t, StateFullyBooked, full.State)
	assert.Empty(t, full.AvailableRooms)
	assert.Len(t, full.Bookings, 2)

	free := cellFor(t, resp, "2026-08-30", "afternoon-1")
	assert.Equal(t, StateAvailable, free.State)
	assert.Equal(t, []string{"207", "211"}, free.AvailableRooms)
}

func TestExecuteBlockedRoomHiddenFromGrid(t *testing.T) {
	bookings := map[string]*domain.Booking{
		domain.EncodeSlotKey("2026-08-30", "morning-1", "211"): booking("Иванов"),
	}
	uc := newTestUseCase(bookings, "211")

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	// Бронирование заблокированной комнаты в сетке не показывается
	cell := cellFor(t, resp, "2026-08-30", "morning-1")
	assert.Equal(t, StateAvailable, cell.State)
	assert.Equal(t, []string{"207"}, cell.AvailableRooms)
	assert.Empty(t, cell.Bookings)
}

func TestExecuteNoRoomsState(t *testing.T) {
	uc := newTestUseCase(map[string]*domain.Booking{}, "207", "211")

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	cell := cellFor(t, resp, "2026-08-30", "morning-1")
	assert.Equal(t, StateNoRooms, cell.State)
	assert.Empty(t, cell.AvailableRooms)
}
