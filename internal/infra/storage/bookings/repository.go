package bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Repository хранит карту "ключ слота -> бронирование" в одном JSON-файле.
// Файл всегда читается и перезаписывается целиком; частичных обновлений нет.
// Конкурентные read-modify-write сериализует вызывающая сторона
// (pkg/singlewriter), сам репозиторий блокировок не держит.
type Repository struct {
	path    string
	metrics MetricsObserver
}

// NewRepository создает репозиторий над файлом бронирований.
// metrics может быть nil.
func NewRepository(path string, metrics MetricsObserver) *Repository {
	return &Repository{path: path, metrics: metrics}
}

// bookingRecord дисковое представление бронирования.
// Имена полей — внешний контракт файла, менять нельзя.
type bookingRecord struct {
	Name      string `json:"name"`
	StudentID string `json:"student_id,omitempty"`
	Class     string `json:"class"`
	Phone     string `json:"phone"`
	Reason    string `json:"reason"`
	Classroom string `json:"classroom,omitempty"`
	BookedAt  string `json:"booking_time"`
}

// Load читает все бронирования. Отсутствующий или нечитаемый файл — это
// пустое хранилище, а не ошибка: сервис стартует с чистого состояния.
func (r *Repository) Load(ctx context.Context) (map[string]*domain.Booking, error) {
	start := time.Now()
	result, err := r.load()
	r.observe("bookings_load", start, err)
	return result, err
}

func (r *Repository) load() (map[string]*domain.Booking, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return map[string]*domain.Booking{}, nil
	}

	var records map[string]bookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return map[string]*domain.Booking{}, nil
	}

	result := make(map[string]*domain.Booking, len(records))
	for key, rec := range records {
		result[key] = recordToDomain(rec)
	}
	return result, nil
}

// Save перезаписывает файл полным содержимым карты. Запись идет во
// временный файл с последующим rename: при отказе диска прежнее состояние
// остается валидным.
func (r *Repository) Save(ctx context.Context, bookings map[string]*domain.Booking) error {
	start := time.Now()
	err := r.save(bookings)
	r.observe("bookings_save", start, err)
	return err
}

// observe отправляет метрику операции; nil-наблюдатель молча пропускается.
func (r *Repository) observe(operation string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}
	r.metrics.ObserveStorageOp(operation, start, err)
}

func (r *Repository) save(bookings map[string]*domain.Booking) error {
	records := make(map[string]bookingRecord, len(bookings))
	for key, b := range bookings {
		records[key] = domainToRecord(b)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrMarshal, err)
	}

	return replaceFile(r.path, data)
}

// replaceFile атомарно подменяет файл новым содержимым.
func replaceFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrWriteFile, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write temp file: %v", ErrWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close temp file: %v", ErrWriteFile, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: rename temp file: %v", ErrWriteFile, err)
	}
	return nil
}

func recordToDomain(rec bookingRecord) *domain.Booking {
	// Нечитаемое время оставляем нулевым: запись важнее штампа.
	bookedAt, _ := time.ParseInLocation(domain.BookingTimeFormat, rec.BookedAt, time.Local)
	return &domain.Booking{
		Name:      rec.Name,
		StudentID: rec.StudentID,
		Class:     rec.Class,
		Phone:     rec.Phone,
		Reason:    rec.Reason,
		Classroom: rec.Classroom,
		BookedAt:  bookedAt,
	}
}

func domainToRecord(b *domain.Booking) bookingRecord {
	return bookingRecord{
		Name:      b.Name,
		StudentID: b.StudentID,
		Class:     b.Class,
		Phone:     b.Phone,
		Reason:    b.Reason,
		Classroom: b.Classroom,
		BookedAt:  b.BookedAt.Format(domain.BookingTimeFormat),
	}
}
