// Package userlock сериализует обработку действий одного пользователя.
// Два быстрых нажатия одного пользователя применяются к его записи строго
// в порядке поступления; действия разных пользователей не упорядочиваются
// между собой.
package userlock

import "sync"

// Keyed — набор мьютексов, по одному на идентификатор пользователя.
// Мьютексы создаются лениво и не освобождаются: количество пользователей
// ограничено аудиторией бота.
type Keyed struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// New создает пустой набор.
func New() *Keyed {
	return &Keyed{locks: make(map[int64]*sync.Mutex)}
}

func (k *Keyed) lockFor(userID int64) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	l, ok := k.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		k.locks[userID] = l
	}
	return l
}

// Lock захватывает мьютекс пользователя.
func (k *Keyed) Lock(userID int64) {
	k.lockFor(userID).Lock()
}

// Unlock освобождает мьютекс пользователя.
func (k *Keyed) Unlock(userID int64) {
	k.lockFor(userID).Unlock()
}
