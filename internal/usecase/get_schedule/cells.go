package get_schedule

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/availability"
)

// classifyCell вычисляет состояние одной ячейки сетки по снимку хранилища.
// Сводки занятости строятся только по неблокированным комнатам: бронирования
// заблокированных комнат в сетке не показываются (они остаются видимыми в
// общем списке записей).
func classifyCell(
	bookings map[string]*domain.Booking,
	blocked domain.RoomSet,
	rooms *domain.RoomCatalog,
	date string,
	slot string,
) Cell {
	bookable := availability.Bookable(blocked, rooms)
	free := availability.Resolve(bookings, blocked, rooms, date, slot)

	cell := Cell{
		Slot:           slot,
		AvailableRooms: free,
		Bookings:       collectCellBookings(bookings, bookable, date, slot),
	}

	switch {
	case len(bookable) == 0:
		cell.State = StateNoRooms
	case len(free) == 0:
		cell.State = StateFullyBooked
	case len(free) == len(bookable):
		cell.State = StateAvailable
	default:
		cell.State = StatePartiallyBooked
	}

	return cell
}

// collectCellBookings собирает сводки по занятым неблокированным комнатам
// ячейки, в порядке каталога.
func collectCellBookings(
	bookings map[string]*domain.Booking,
	bookable []string,
	date string,
	slot string,
) []CellBooking {
	result := make([]CellBooking, 0, len(bookable))
	for _, room := range bookable {
		booking, ok := bookings[domain.EncodeSlotKey(date, slot, room)]
		if !ok {
			continue
		}
		result = append(result, CellBooking{
			Room:      room,
			Name:      booking.Name,
			StudentID: booking.StudentID,
		})
	}
	return result
}
