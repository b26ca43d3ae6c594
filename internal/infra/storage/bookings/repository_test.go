package bookings

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

func newTestRepo(t *testing.T) (*Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookings.json")
	return NewRepository(path, nil), path
}

type recordingObserver struct {
	operations []string
}

func (o *recordingObserver) ObserveStorageOp(operation string, start time.Time, err error) {
	o.operations = append(o.operations, operation)
}

// Репозиторий без наблюдателя метрик работает как обычно.
func TestNilMetricsObserver(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NotPanics(t, func() {
		_, err := repo.Load(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, map[string]*domain.Booking{}))
	})
}

func TestMetricsObserverReceivesOps(t *testing.T) {
	observer := &recordingObserver{}
	repo := NewRepository(filepath.Join(t.TempDir(), "bookings.json"), observer)
	ctx := context.Background()

	_, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, map[string]*domain.Booking{}))

	assert.Equal(t, []string{"bookings_load", "bookings_save"}, observer.operations)
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)

	all, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestLoadCorruptFileReturnsEmpty(t *testing.T) {
	repo, path := newTestRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	all, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	bookedAt := time.Date(2026, 8, 30, 12, 30, 0, 0, time.Local)
	key := domain.EncodeSlotKey("2026-08-30", "morning-1", "207")
	in := map[string]*domain.Booking{
		key: {
			Name:      "Иван Петров",
			StudentID: "20260101",
			Class:     "ИВТ-21",
			Phone:     "+7 900 000-00-00",
			Reason:    "репетиция",
			Classroom: "207",
			BookedAt:  bookedAt,
		},
	}

	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	got := out[key]
	require.NotNil(t, got)
	assert.Equal(t, "Иван Петров", got.Name)
	assert.Equal(t, "20260101", got.StudentID)
	assert.Equal(t, "207", got.Classroom)
	assert.True(t, got.BookedAt.Equal(bookedAt))
}

func TestLoadLegacyRecordWithoutClassroom(t *testing.T) {
	repo, path := newTestRepo(t)

	// Легаси-файл: двухсегментный ключ, нет classroom и student_id
	raw := `{"2026-08-30_morning-1": {"name": "Анна", "class": "ИВТ-22", "phone": "123", "reason": "собрание", "booking_time": "2026-08-29 10:00:00"}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	out, err := repo.Load(context.Background())

	require.NoError(t, err)
	got := out["2026-08-30_morning-1"]
	require.NotNil(t, got)
	assert.Empty(t, got.Classroom)
	assert.Equal(t, domain.UnknownRoom, got.Room())
	assert.False(t, got.HasStudentID())
}

func TestSaveFailureKeepsPreviousState(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bookings.json")
	repo := NewRepository(path, nil)
	ctx := context.Background()

	key := domain.EncodeSlotKey("2026-08-30", "morning-1", "207")
	require.NoError(t, repo.Save(ctx, map[string]*domain.Booking{
		key: {Name: "Иван", Class: "ИВТ-21", Phone: "1", Reason: "x", Classroom: "207"},
	}))

	// Репозиторий над несуществующим каталогом: запись должна упасть
	broken := NewRepository(filepath.Join(dir, "no-such-dir", "bookings.json"), nil)
	err := broken.Save(ctx, map[string]*domain.Booking{})
	require.ErrorIs(t, err, ErrWriteFile)

	// Прежний файл не тронут
	out, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
