package database

import (
	"sync"

	"github.com/ibrokhimov/matembot/internal/domain/model"
)

// Store определяет интерфейс хранилища записей пользователей и их результатов.
// Все мутации синхронны: следующий Get того же пользователя видит запись,
// сохраненную предыдущим Set. Конкурентные мутации записи одного и того же
// пользователя — ошибка вызывающей стороны, сериализацию по пользователю
// обеспечивает userlock.
type Store interface {
	// GetOrCreate возвращает запись пользователя, создавая пустую при первом обращении.
	GetOrCreate(userID int64) (model.UserRecord, error)
	// Set полностью перезаписывает запись пользователя.
	Set(userID int64, rec model.UserRecord) error
	// AppendResult дописывает результат теста в историю пользователя.
	AppendResult(userID int64, res model.TestResult) error
	// ResultsFor возвращает историю результатов пользователя.
	ResultsFor(userID int64) ([]model.TestResult, error)
	// AllUserIDs возвращает идентификаторы всех известных пользователей.
	AllUserIDs() ([]int64, error)
}

// MemoryStore — in-memory реализация. Используется в тестах и при
// STORAGE_TYPE == "memory".
type MemoryStore struct {
	mu      sync.RWMutex
	records map[int64]model.UserRecord
	results map[int64][]model.TestResult
}

// NewMemoryStore создает новый MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[int64]model.UserRecord),
		results: make(map[int64][]model.TestResult),
	}
}

func (m *MemoryStore) GetOrCreate(userID int64) (model.UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[userID]
	if !ok {
		rec = model.UserRecord{}
		m.records[userID] = rec
	}
	return rec, nil
}

func (m *MemoryStore) Set(userID int64, rec model.UserRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[userID] = rec
	return nil
}

func (m *MemoryStore) AppendResult(userID int64, res model.TestResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[userID] = append(m.results[userID], res)
	return nil
}

func (m *MemoryStore) ResultsFor(userID int64) ([]model.TestResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.TestResult, len(m.results[userID]))
	copy(out, m.results[userID])
	return out, nil
}

func (m *MemoryStore) AllUserIDs() ([]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]int64, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
	}
	return ids, nil
}
