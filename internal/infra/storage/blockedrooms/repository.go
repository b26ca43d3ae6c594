package blockedrooms

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// MetricsObserver получает метрики операций с файловым хранилищем.
type MetricsObserver interface {
	ObserveStorageOp(operation string, start time.Time, err error)
}

// Repository хранит блок-лист комнат в одном JSON-файле (массив строк).
// Семантика та же, что у репозитория бронирований: файл целиком,
// сериализация записей — на вызывающей стороне.
type Repository struct {
	path    string
	metrics MetricsObserver
}

// NewRepository создает репозиторий над файлом блок-листа.
// metrics может быть nil.
func NewRepository(path string, metrics MetricsObserver) *Repository {
	return &Repository{path: path, metrics: metrics}
}

// Load читает блок-лист. Отсутствующий или нечитаемый файл — пустой список.
func (r *Repository) Load(ctx context.Context) (domain.RoomSet, error) {
	start := time.Now()
	result, err := r.load()
	r.observe("blocked_load", start, err)
	return result, err
}

func (r *Repository) load() (domain.RoomSet, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return domain.RoomSet{}, nil
	}

	var rooms []string
	if err := json.Unmarshal(data, &rooms); err != nil {
		return domain.RoomSet{}, nil
	}
	return domain.NewRoomSet(rooms), nil
}

// Save перезаписывает файл полным содержимым набора. Комнаты пишутся
// отсортированными, чтобы файл был стабилен между сохранениями.
func (r *Repository) Save(ctx context.Context, blocked domain.RoomSet) error {
	start := time.Now()
	err := r.save(blocked)
	r.observe("blocked_save", start, err)
	return err
}

// observe отправляет метрику операции; nil-наблюдатель молча пропускается.
func (r *Repository) observe(operation string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}
	r.metrics.ObserveStorageOp(operation, start, err)
}

func (r *Repository) save(blocked domain.RoomSet) error {
	rooms := make([]string, 0, len(blocked))
	for room := range blocked {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)

	data, err := json.MarshalIndent(rooms, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrMarshal, err)
	}

	return replaceFile(r.path, data)
}

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
