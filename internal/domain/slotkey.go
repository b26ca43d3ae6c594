package domain

import "strings"

// SlotKey is the composite identity of one bookable unit: a calendar date,
// a slot name from the catalog and a room identifier.
//
// Two serialized forms exist on disk:
//   - current: {date}_{slot}_{room}
//   - legacy:  {date}_{slot} (room lives on the booking record itself)
//
// Legacy keys are read-compatible only; Encode never emits them.
type SlotKey struct {
	Date string
	Slot string
	Room string // empty when Legacy
	// Legacy marks a key decoded from the two-segment form. The room for
	// such a key is resolved through the associated booking record.
	Legacy bool
}

// EncodeSlotKey serializes a slot key in the current three-segment form.
func EncodeSlotKey(date, slot, room string) string {
	return date + KeyDelimiter + slot + KeyDelimiter + room
}

// String returns the serialized form of the key. Legacy keys keep their
// original two-segment form.
func (k SlotKey) String() string {
	if k.Legacy {
		return k.Date + KeyDelimiter + k.Slot
	}
	return EncodeSlotKey(k.Date, k.Slot, k.Room)
}

// DecodeSlotKey parses a serialized slot key. It never fails: a key whose
// trailing segment is not a known room identifier is interpreted as the
// legacy two-segment form, with everything after the date treated as the
// slot name. Slot names may themselves contain the delimiter.
func DecodeSlotKey(key string, rooms *RoomCatalog) SlotKey {
	parts := strings.Split(key, KeyDelimiter)
	if len(parts) >= 3 && rooms.Contains(parts[len(parts)-1]) {
		return SlotKey{
			Date: parts[0],
			Slot: strings.Join(parts[1:len(parts)-1], KeyDelimiter),
			Room: parts[len(parts)-1],
		}
	}

	// Легаси-формат: сегмента комнаты нет, комната хранится в самой записи.
	slot := ""
	if len(parts) > 1 {
		slot = strings.Join(parts[1:], KeyDelimiter)
	}
	return SlotKey{
		Date:   parts[0],
		Slot:   slot,
		Legacy: true,
	}
}

// ResolveRoom returns the room identifier for the key. For current keys it
// is the key's own segment; for legacy keys it comes from the booking
// record, falling back to the UnknownRoom sentinel.
func (k SlotKey) ResolveRoom(b *Booking) string {
	if !k.Legacy {
		return k.Room
	}
	if b == nil {
		return UnknownRoom
	}
	return b.Room()
}
