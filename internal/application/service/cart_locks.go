package service

import (
	"sync"

	"github.com/google/uuid"
)

// CartLocks serializes all read-modify-write spans against a user's cart.
// Both the cart service and the order service lock here, so a concurrent
// add-to-cart can neither race a total recomputation nor slip items into a
// cart while checkout is snapshotting and clearing it.
type CartLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewCartLocks creates an empty lock table.
func NewCartLocks() *CartLocks {
	return &CartLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// Lock acquires the per-user cart lock and returns the unlock function.
func (l *CartLocks) Lock(userID uuid.UUID) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
