package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRooms() *RoomCatalog {
	return NewRoomCatalog([]string{"207", "211"})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rooms := testRooms()

	cases := []struct {
		date, slot, room string
	}{
		{"2026-08-30", "morning-1", "207"},
		{"2026-09-01", "afternoon-2", "211"},
		{"2026-12-31", "morning-2", "207"},
	}

	for _, tc := range cases {
		key := EncodeSlotKey(tc.date, tc.slot, tc.room)
		decoded := DecodeSlotKey(key, rooms)

		require.False(t, decoded.Legacy, "key %q must decode as current format", key)
		assert.Equal(t, tc.date, decoded.Date)
		assert.Equal(t, tc.slot, decoded.Slot)
		assert.Equal(t, tc.room, decoded.Room)
		assert.Equal(t, key, decoded.String())
	}
}

func TestDecodeSlotWithDelimiter(t *testing.T) {
	rooms := testRooms()

	// Имя слота само содержит разделитель
	key := EncodeSlotKey("2026-08-30", "slot_extra_long", "211")
	decoded := DecodeSlotKey(key, rooms)

	require.False(t, decoded.Legacy)
	assert.Equal(t, "slot_extra_long", decoded.Slot)
	assert.Equal(t, "211", decoded.Room)
}

func TestDecodeLegacyKey(t *testing.T) {
	rooms := testRooms()

	decoded := DecodeSlotKey("2026-08-30_morning-1", rooms)

	require.True(t, decoded.Legacy)
	assert.Equal(t, "2026-08-30", decoded.Date)
	assert.Equal(t, "morning-1", decoded.Slot)
	assert.Empty(t, decoded.Room)
	assert.Equal(t, "2026-08-30_morning-1", decoded.String())
}

func TestDecodeAmbiguousKeyFallsBackToLegacy(t *testing.T) {
	rooms := testRooms()

	// Три сегмента, но хвост не является известной комнатой:
	// весь остаток трактуется как имя слота легаси-ключа
	decoded := DecodeSlotKey("2026-08-30_morning_extra", rooms)

	require.True(t, decoded.Legacy)
	assert.Equal(t, "2026-08-30", decoded.Date)
	assert.Equal(t, "morning_extra", decoded.Slot)
}

func TestDecodeNeverFails(t *testing.T) {
	rooms := testRooms()

	for _, key := range []string{"", "_", "__", "x", "2026-08-30", "___207"} {
		assert.NotPanics(t, func() {
			DecodeSlotKey(key, rooms)
		}, "key %q", key)
	}
}

func TestResolveRoom(t *testing.T) {
	rooms := testRooms()

	current := DecodeSlotKey(EncodeSlotKey("2026-08-30", "morning-1", "207"), rooms)
	assert.Equal(t, "207", current.ResolveRoom(nil))

	legacy := DecodeSlotKey("2026-08-30_morning-1", rooms)
	assert.Equal(t, "211", legacy.ResolveRoom(&Booking{Classroom: "211"}))

	// Запись без комнаты и вовсе без записи — сентинел
	assert.Equal(t, UnknownRoom, legacy.ResolveRoom(&Booking{}))
	assert.Equal(t, UnknownRoom, legacy.ResolveRoom(nil))
}
