package models

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BookingRecord расшифрованная запись бронирования: ключ разобран на
// составляющие, комната легаси-записей разрешена через саму запись.
type BookingRecord struct {
	Key       string
	Date      string
	Slot      string
	Room      string
	Name      string
	StudentID string
	Class     string
	Phone     string
	Reason    string
	BookedAt  time.Time
}

// FromDomainBooking строит запись из ключа и бронирования.
func FromDomainBooking(key domain.SlotKey, b *domain.Booking) BookingRecord {
	return BookingRecord{
		Key:       key.String(),
		Date:      key.Date,
		Slot:      key.Slot,
		Room:      key.ResolveRoom(b),
		Name:      b.Name,
		StudentID: b.StudentID,
		Class:     b.Class,
		Phone:     b.Phone,
		Reason:    b.Reason,
		BookedAt:  b.BookedAt,
	}
}
