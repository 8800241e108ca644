package storage

import "sync"

// KeyedMutex hands out one lock per namespace. Entries are reference counted
// and dropped once nobody holds or waits for them.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

type refLock struct {
	mu   sync.Mutex
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*refLock)}
}

// Lock blocks until the namespace is free and returns its unlock func.
func (k *KeyedMutex) Lock(namespace string) func() {
	k.mu.Lock()
	l, ok := k.locks[namespace]
	if !ok {
		l = &refLock{}
		k.locks[namespace] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, namespace)
		}
		k.mu.Unlock()
	}
}

func (k *KeyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
