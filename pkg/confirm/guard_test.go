package confirm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfirmArmsThenFires(t *testing.T) {
	g := NewGuard()

	assert.False(t, g.Confirm("clear"))
	assert.Equal(t, "clear", g.Armed())

	assert.True(t, g.Confirm("clear"))
	assert.Empty(t, g.Armed())
}

func TestConfirmDifferentActionRearms(t *testing.T) {
	g := NewGuard()

	assert.False(t, g.Confirm("clear"))
	// Взведение другой операции затирает предыдущую
	assert.False(t, g.Confirm("block_all"))
	assert.Equal(t, "block_all", g.Armed())

	assert.True(t, g.Confirm("block_all"))
	assert.False(t, g.Confirm("clear"))
}

func TestDisarm(t *testing.T) {
	g := NewGuard()

	assert.False(t, g.Confirm("clear"))
	g.Disarm()

	assert.Empty(t, g.Armed())
	assert.False(t, g.Confirm("clear"))
}

func TestConfirmExpiresAfterTTL(t *testing.T) {
	current := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	g := NewGuardWithClock(30*time.Second, func() time.Time { return current })

	assert.False(t, g.Confirm("clear"))

	current = current.Add(31 * time.Second)
	assert.Empty(t, g.Armed())
	// Протухшее подтверждение снова только взводит
	assert.False(t, g.Confirm("clear"))
	assert.True(t, g.Confirm("clear"))
}

func TestConfirmWithinTTL(t *testing.T) {
	current := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	g := NewGuardWithClock(30*time.Second, func() time.Time { return current })

	assert.False(t, g.Confirm("clear"))
	current = current.Add(29 * time.Second)
	assert.True(t, g.Confirm("clear"))
}
