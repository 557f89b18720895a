package cart

import "sync"

// UserLocks serializes writers per user so concurrent cart mutations (and
// checkout, which spans a cart read and delete) never interleave their
// read-modify-write cycles. One instance is shared between the cart and
// order services.
type UserLocks struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewUserLocks() *UserLocks {
	return &UserLocks{locks: make(map[int]*sync.Mutex)}
}

func (l *UserLocks) get(userID int) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	return m
}

func (l *UserLocks) Lock(userID int) {
	l.get(userID).Lock()
}

func (l *UserLocks) Unlock(userID int) {
	l.get(userID).Unlock()
}
