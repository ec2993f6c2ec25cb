package usecase

import "sync"

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

// gameLocker - one mutex per game id. Entries are dropped once nobody holds
// or waits on them.
type gameLocker struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

func newGameLocker() *gameLocker {
	return &gameLocker{
		locks: make(map[string]*keyedLock),
	}
}

// Lock - blocks until the game is free and returns its unlock func.
func (that *gameLocker) Lock(id string) func() {
	that.mu.Lock()
	lock, ok := that.locks[id]
	if !ok {
		lock = &keyedLock{}
		that.locks[id] = lock
	}
	lock.refs++
	that.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		that.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(that.locks, id)
		}
		that.mu.Unlock()
	}
}

func (that *gameLocker) size() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.locks)
}
