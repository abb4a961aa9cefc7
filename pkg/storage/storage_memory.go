package storage

import (
	"net/url"
	"sync"
)

func init() {
	Register(`memory`, func(_ *url.URL) (Storager, error) { return &storageMemory{}, nil })
}

type storageMemory struct {
	mu       sync.RWMutex
	snapshot *Snapshot
}

func (e *storageMemory) Put(snapshot Snapshot) error {
	e.mu.Lock()
	e.snapshot = &snapshot
	e.mu.Unlock()
	return nil
}

func (e *storageMemory) Latest() (Snapshot, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.snapshot == nil {
		return Snapshot{}, ErrEmpty
	}
	return *e.snapshot, nil
}

func (e *storageMemory) Close() {
}
