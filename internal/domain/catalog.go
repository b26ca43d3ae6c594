package domain

import "time"

// TimeSlot is one entry of the slot catalog: a named fixed daily interval.
type TimeSlot struct {
	Name  string // catalog identifier, e.g. "morning-1"
	Range string // human-readable interval, e.g. "08:00-10:00"
}

// TimeSlotCatalog is the ordered set of bookable daily intervals.
// The catalog is static configuration, immutable at runtime.
type TimeSlotCatalog struct {
	slots []TimeSlot
	index map[string]TimeSlot
}

// NewTimeSlotCatalog builds a catalog preserving the order of slots.
func NewTimeSlotCatalog(slots []TimeSlot) *TimeSlotCatalog {
	index := make(map[string]TimeSlot, len(slots))
	for _, s := range slots {
		index[s.Name] = s
	}
	return &TimeSlotCatalog{slots: slots, index: index}
}

// DefaultTimeSlots is the slot catalog used when the configuration
// does not override it.
func DefaultTimeSlots() []TimeSlot {
	return []TimeSlot{
		{Name: "morning-1", Range: "08:00-10:00"},
		{Name: "morning-2", Range: "10:00-12:00"},
		{Name: "afternoon-1", Range: "14:00-16:00"},
		{Name: "afternoon-2", Range: "16:00-18:00"},
	}
}

// Slots returns the catalog entries in their configured order.
func (c *TimeSlotCatalog) Slots() []TimeSlot {
	return c.slots
}

// Contains reports whether the slot name is part of the catalog.
func (c *TimeSlotCatalog) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Range returns the display interval of a slot, empty when unknown.
func (c *TimeSlotCatalog) Range(name string) string {
	return c.index[name].Range
}

// Len returns the number of slots in the catalog.
func (c *TimeSlotCatalog) Len() int {
	return len(c.slots)
}

// RoomCatalog is the static ordered list of valid room identifiers.
type RoomCatalog struct {
	rooms []string
	index map[string]struct{}
}

// NewRoomCatalog builds a catalog preserving room order.
func NewRoomCatalog(rooms []string) *RoomCatalog {
	index := make(map[string]struct{}, len(rooms))
	for _, r := range rooms {
		index[r] = struct{}{}
	}
	return &RoomCatalog{rooms: rooms, index: index}
}

// DefaultRooms is the room list used when the configuration does not
// override it.
func DefaultRooms() []string {
	return []string{"207", "211"}
}

// Rooms returns the room identifiers in their configured order.
func (c *RoomCatalog) Rooms() []string {
	return c.rooms
}

// Contains reports whether the identifier names a catalog room.
func (c *RoomCatalog) Contains(room string) bool {
	_, ok := c.index[room]
	return ok
}

// Len returns the number of rooms in the catalog.
func (c *RoomCatalog) Len() int {
	return len(c.rooms)
}

// RoomSet is a set of room identifiers, used for the admin block-list.
type RoomSet map[string]struct{}

// NewRoomSet builds a set from a list of identifiers.
func NewRoomSet(rooms []string) RoomSet {
	set := make(RoomSet, len(rooms))
	for _, r := range rooms {
		set[r] = struct{}{}
	}
	return set
}

// Contains reports membership.
func (s RoomSet) Contains(room string) bool {
	_, ok := s[room]
	return ok
}

// DateWindow returns the rolling booking window: WindowDays consecutive
// dates starting at now's calendar date. Recomputed on every query,
// never persisted.
func DateWindow(now time.Time) []string {
	dates := make([]string, 0, WindowDays)
	for i := 0; i < WindowDays; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format(DateFormat))
	}
	return dates
}
