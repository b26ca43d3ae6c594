package availability

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Чистые функции разрешения доступности над уже загруженным снимком
// хранилища. Сервис-обертка (service.go) загружает снимки сама; сценарии,
// которым нужна целая сетка (get_schedule), загружают снимок один раз и
// вызывают эти функции напрямую.

// Resolve возвращает комнаты, доступные для бронирования в ячейке
// (date, slot): каталог минус блок-лист минус уже занятые. Порядок каталога
// сохраняется.
func Resolve(
	bookings map[string]*domain.Booking,
	blocked domain.RoomSet,
	rooms *domain.RoomCatalog,
	date string,
	slot string,
) []string {
	available := make([]string, 0, rooms.Len())
	for _, room := range rooms.Rooms() {
		if blocked.Contains(room) {
			continue
		}
		if _, taken := bookings[domain.EncodeSlotKey(date, slot, room)]; taken {
			continue
		}
		available = append(available, room)
	}
	return available
}

// Bookable возвращает комнаты, доступные для бронирования в принципе:
// каталог минус блок-лист, без учета даты и слота.
func Bookable(blocked domain.RoomSet, rooms *domain.RoomCatalog) []string {
	bookable := make([]string, 0, rooms.Len())
	for _, room := range rooms.Rooms() {
		if !blocked.Contains(room) {
			bookable = append(bookable, room)
		}
	}
	return bookable
}

// FullyBooked сообщает, что все неблокированные комнаты ячейки заняты.
// Ячейка, у которой заблокированы вообще все комнаты, — это отдельное
// состояние "нет доступных комнат", а не "все занято"; потребители обязаны
// показывать их по-разному.
func FullyBooked(
	bookings map[string]*domain.Booking,
	blocked domain.RoomSet,
	rooms *domain.RoomCatalog,
	date string,
	slot string,
) bool {
	if len(Bookable(blocked, rooms)) == 0 {
		return false
	}
	return len(Resolve(bookings, blocked, rooms, date, slot)) == 0
}
