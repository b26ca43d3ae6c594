package domain

import "time"

// Booking represents a single room reservation in the system.
// A booking is immutable once created: any change is a delete followed by a
// new create.
type Booking struct {
	Name      string
	StudentID string
	Class     string
	Phone     string
	Reason    string
	// Classroom duplicates the room segment of the slot key. Legacy records
	// (two-segment keys) carry the room only here; it may be empty on records
	// imported from single-room deployments.
	Classroom string
	BookedAt  time.Time
}

// Room returns the room identifier stored on the booking itself,
// falling back to the UnknownRoom sentinel when absent.
func (b *Booking) Room() string {
	if b.Classroom == "" {
		return UnknownRoom
	}
	return b.Classroom
}

// HasStudentID reports whether the record carries a student identifier.
// Early records were created before the field became required.
func (b *Booking) HasStudentID() bool {
	return b.StudentID != ""
}
