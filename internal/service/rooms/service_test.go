package rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
	"github.com/m04kA/SMC-RoomBookingService/pkg/confirm"
	"github.com/m04kA/SMC-RoomBookingService/pkg/singlewriter"
)

type memBlockedRepo struct {
	blocked domain.RoomSet
}

func (m *memBlockedRepo) Load(ctx context.Context) (domain.RoomSet, error) {
	out := make(domain.RoomSet, len(m.blocked))
	for r := range m.blocked {
		out[r] = struct{}{}
	}
	return out, nil
}

func (m *memBlockedRepo) Save(ctx context.Context, blocked domain.RoomSet) error {
	m.blocked = blocked
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestService(blocked ...string) (*Service, *memBlockedRepo) {
	repo := &memBlockedRepo{blocked: domain.NewRoomSet(blocked)}
	rooms := domain.NewRoomCatalog([]string{"207", "211"})
	svc := NewService(repo, singlewriter.New(), confirm.NewGuard(), rooms, noopLogger{})
	return svc, repo
}

func TestBlockRoom(t *testing.T) {
	svc, repo := newTestService()

	err := svc.Block(context.Background(), "207")
	require.NoError(t, err)
	assert.True(t, repo.blocked.Contains("207"))
}

func TestBlockAlreadyBlocked(t *testing.T) {
	svc, _ := newTestService("207")

	err := svc.Block(context.Background(), "207")
	assert.ErrorIs(t, err, ErrAlreadyBlocked)
}

func TestBlockUnknownRoom(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Block(context.Background(), "999")
	assert.ErrorIs(t, err, ErrUnknownRoom)
}

func TestUnblockRoom(t *testing.T) {
	svc, repo := newTestService("207")

	err := svc.Unblock(context.Background(), "207")
	require.NoError(t, err)
	assert.False(t, repo.blocked.Contains("207"))
}

func TestUnblockNotBlocked(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Unblock(context.Background(), "207")
	assert.ErrorIs(t, err, ErrNotBlocked)
}

func TestUnblockUnknownRoom(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Unblock(context.Background(), "999")
	assert.ErrorIs(t, err, ErrUnknownRoom)
}

func TestBlockAllRequiresConfirmation(t *testing.T) {
	svc, repo := newTestService()

	// Первый вызов только взводит подтверждение
	err := svc.BlockAll(context.Background())
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Empty(t, repo.blocked)

	// Повторный вызов блокирует весь каталог
	require.NoError(t, svc.BlockAll(context.Background()))
	assert.True(t, repo.blocked.Contains("207"))
	assert.True(t, repo.blocked.Contains("211"))
}

func TestBlockAllDisarmedByOtherOperation(t *testing.T) {
	svc, repo := newTestService()

	err := svc.BlockAll(context.Background())
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	// Точечная блокировка сбрасывает взведенную массовую
	require.NoError(t, svc.Block(context.Background(), "207"))

	err = svc.BlockAll(context.Background())
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Len(t, repo.blocked, 1)
}

func TestUnblockAllClearsWithoutConfirmation(t *testing.T) {
	svc, repo := newTestService("207", "211")

	require.NoError(t, svc.UnblockAll(context.Background()))
	assert.Empty(t, repo.blocked)
}

func TestStatuses(t *testing.T) {
	svc, _ := newTestService("211")

	statuses, err := svc.Statuses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.RoomStatus{
		{Room: "207", Blocked: false},
		{Room: "211", Blocked: true},
	}, statuses)
}
