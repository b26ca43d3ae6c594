// Package confirm реализует двухшаговое подтверждение разрушительных
// массовых операций: первый вызов "взводит" операцию, повторный вызов той же
// операции подтверждает ее. Состояние живет только в памяти процесса.
package confirm

import (
	"sync"
	"time"
)

// DefaultTTL время, в течение которого взведенное подтверждение остается
// действительным.
const DefaultTTL = 30 * time.Second

// Guard хранит не более одной взведенной операции.
type Guard struct {
	mu      sync.Mutex
	pending string
	armedAt time.Time
	ttl     time.Duration
	now     func() time.Time
}

// NewGuard создает guard со стандартным TTL.
func NewGuard() *Guard {
	return &Guard{ttl: DefaultTTL, now: time.Now}
}

// NewGuardWithClock создает guard с заданными TTL и источником времени.
// Используется в тестах.
func NewGuardWithClock(ttl time.Duration, now func() time.Time) *Guard {
	return &Guard{ttl: ttl, now: now}
}

// Confirm возвращает true, если операция action уже была взведена и не
// протухла — в этом случае состояние сбрасывается и вызывающий выполняет
// операцию. Иначе операция взводится и возвращается false.
// Взведение любой другой операции затирает предыдущее.
func (g *Guard) Confirm(action string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending == action && g.now().Sub(g.armedAt) <= g.ttl {
		g.pending = ""
		return true
	}

	g.pending = action
	g.armedAt = g.now()
	return false
}

// Disarm сбрасывает взведенное подтверждение. Вызывается любой другой
// изменяющей операцией: одиночный взводящий вызов, за которым последовало
// что-то еще, не должен сработать.
func (g *Guard) Disarm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = ""
}

// Armed возвращает взведенную операцию, пустая строка — ничего не взведено.
func (g *Guard) Armed() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending != "" && g.now().Sub(g.armedAt) > g.ttl {
		g.pending = ""
	}
	return g.pending
}
