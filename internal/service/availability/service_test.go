package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func (f *fakeBookingRepo) Load(ctx context.Context) (map[string]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeBlockedRepo struct {
	blocked domain.RoomSet
}

func (f *fakeBlockedRepo) Load(ctx context.Context) (domain.RoomSet, error) {
	return f.blocked, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestServiceAvailableRooms(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{bookings: booked(domain.EncodeSlotKey("2026-08-30", "morning-1", "207"))},
		&fakeBlockedRepo{blocked: domain.RoomSet{}},
		testRooms(),
		noopLogger{},
	)

	free, err := svc.AvailableRooms(context.Background(), "2026-08-30", "morning-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"211"}, free)
}

func TestServiceIsFullyBooked(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{bookings: booked(domain.EncodeSlotKey("2026-08-30", "morning-1", "207"))},
		&fakeBlockedRepo{blocked: domain.NewRoomSet([]string{"211"})},
		testRooms(),
		noopLogger{},
	)

	full, err := svc.IsFullyBooked(context.Background(), "2026-08-30", "morning-1")
	require.NoError(t, err)
	assert.True(t, full)
}

func TestServiceBookableRooms(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{bookings: booked()},
		&fakeBlockedRepo{blocked: domain.NewRoomSet([]string{"207"})},
		testRooms(),
		noopLogger{},
	)

	bookable, err := svc.BookableRooms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"211"}, bookable)
}
