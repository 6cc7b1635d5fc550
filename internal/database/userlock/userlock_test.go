package userlock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyed_SerializesSameUser(t *testing.T) {
	locks := New()
	const goroutines = 50

	counter := 0
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			locks.Lock(1)
			defer locks.Unlock(1)
			counter++
		}()
	}
	wg.Wait()
	assert.Equal(t, goroutines, counter)
}

func TestKeyed_IndependentUsers(t *testing.T) {
	locks := New()
	locks.Lock(1)

	done := make(chan struct{})
	go func() {
		// Блокировка другого пользователя не ждет первую.
		locks.Lock(2)
		locks.Unlock(2)
		close(done)
	}()
	<-done
	locks.Unlock(1)
}
