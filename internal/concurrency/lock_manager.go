package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Keys are user ids in practice,
// so unrelated users never contend with each other.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Acquire locks the key and returns the matching release func
func (lm *LockManager) Acquire(key string) func() {
	mu := lm.GetLock(key)
	mu.Lock()
	return mu.Unlock
}
