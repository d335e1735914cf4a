package memory

import (
	"context"
	"sync"
)

// TxManager аналог транзакционного менеджера для хранилища в памяти
// Вместо транзакций БД использует глобальную блокировку:
// одновременно выполняется ровно одна "транзакция", что даёт ту же
// гарантию для сценария check-then-act, что и сериализуемая транзакция.
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager создает новый менеджер
func NewTxManager() *TxManager {
	return &TxManager{}
}

// Do выполняет fn под глобальной блокировкой
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// DoSerializable выполняет fn под глобальной блокировкой
// Конфликтов сериализации в памяти не бывает, повторы не нужны
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// DoReadOnly выполняет fn под глобальной блокировкой
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
