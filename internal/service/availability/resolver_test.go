package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

func testRooms() *domain.RoomCatalog {
	return domain.NewRoomCatalog([]string{"207", "211"})
}

func booked(keys ...string) map[string]*domain.Booking {
	m := make(map[string]*domain.Booking, len(keys))
	for _, k := range keys {
		m[k] = &domain.Booking{Name: "x"}
	}
	return m
}

func TestResolveEmptyState(t *testing.T) {
	free := Resolve(booked(), domain.RoomSet{}, testRooms(), "2026-08-30", "morning-1")
	assert.Equal(t, []string{"207", "211"}, free)
}

func TestResolveExcludesBookedRoom(t *testing.T) {
	bookings := booked(domain.EncodeSlotKey("2026-08-30", "morning-1", "207"))

	free := Resolve(bookings, domain.RoomSet{}, testRooms(), "2026-08-30", "morning-1")
	assert.Equal(t, []string{"211"}, free)

	// Другая ячейка не затронута
	free = Resolve(bookings, domain.RoomSet{}, testRooms(), "2026-08-30", "morning-2")
	assert.Equal(t, []string{"207", "211"}, free)
}

func TestResolveExcludesBlockedRoomRegardlessOfBookings(t *testing.T) {
	blocked := domain.NewRoomSet([]string{"211"})

	free := Resolve(booked(), blocked, testRooms(), "2026-08-30", "morning-1")
	assert.Equal(t, []string{"207"}, free)
}

func TestBookable(t *testing.T) {
	assert.Equal(t, []string{"207", "211"}, Bookable(domain.RoomSet{}, testRooms()))
	assert.Equal(t, []string{"207"}, Bookable(domain.NewRoomSet([]string{"211"}), testRooms()))
	assert.Empty(t, Bookable(domain.NewRoomSet([]string{"207", "211"}), testRooms()))
}

func TestFullyBookedVersusNoRooms(t *testing.T) {
	date, slot := "2026-08-30", "morning-1"

	// Все комнаты заняты
	bookings := booked(
		domain.EncodeSlotKey(date, slot, "207"),
		domain.EncodeSlotKey(date, slot, "211"),
	)
	assert.True(t, FullyBooked(bookings, domain.RoomSet{}, testRooms(), date, slot))

	// Пустая ячейка не считается занятой
	assert.False(t, FullyBooked(booked(), domain.RoomSet{}, testRooms(), date, slot))

	// Все комнаты заблокированы: это "нет комнат", а не "все занято"
	allBlocked := domain.NewRoomSet([]string{"207", "211"})
	assert.False(t, FullyBooked(bookings, allBlocked, testRooms(), date, slot))
}

// Сценарий из постановки: "211" заблокирована, "207" занимается.
func TestBlockedAndBookedScenario(t *testing.T) {
	date, slot := "2026-08-30", "morning-1"
	blocked := domain.NewRoomSet([]string{"211"})

	assert.Equal(t, []string{"207"}, Bookable(blocked, testRooms()))
	assert.Equal(t, []string{"207"}, Resolve(booked(), blocked, testRooms(), date, slot))

	bookings := booked(domain.EncodeSlotKey(date, slot, "207"))
	assert.Empty(t, Resolve(bookings, blocked, testRooms(), date, slot))
	assert.True(t, FullyBooked(bookings, blocked, testRooms(), date, slot))
}
