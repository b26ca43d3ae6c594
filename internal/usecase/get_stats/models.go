package get_stats

// RoomCount число бронирований одной комнаты каталога
type RoomCount struct {
	Room    string
	Count   int
	Blocked bool
}

// DateCount число бронирований на одну дату
type DateCount struct {
	Date  string
	Count int
}

// SlotCount число бронирований в одном слоте
type SlotCount struct {
	Slot  string
	Count int
}

// Response сводная статистика по окну бронирования.
// Емкость считается только по неблокированным комнатам; сами записи
// заблокированных комнат при этом из пообъектных счетчиков не выпадают.
type Response struct {
	Window         []string
	TotalRoomSlots int // емкость окна: дни x слоты x неблокированные комнаты
	BookedCount    int // занятые ячейки неблокированных комнат
	RemainingCount int
	FullyFreeCells int // ячейки окна, где свободны все неблокированные комнаты
	PerRoom        []RoomCount
	PerDate        []DateCount
	PerSlot        []SlotCount
}
