// Package singlewriter сериализует изменяющие операции над файловым
// хранилищем. Файлы перезаписываются целиком без блокировок на уровне ФС,
// поэтому каждая последовательность "прочитать-проверить-записать" должна
// выполняться под одним gate, иначе возможна потеря обновлений.
package singlewriter

import (
	"context"
	"sync"
)

// Gate пропускает изменяющие операции по одной.
type Gate struct {
	mu sync.Mutex
}

// New создает новый gate.
func New() *Gate {
	return &Gate{}
}

// Do выполняет fn эксклюзивно. Контекст проверяется до захвата мьютекса;
// внутри fn операции только с локальными файлами и завершаются быстро.
func (g *Gate) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(ctx)
}
