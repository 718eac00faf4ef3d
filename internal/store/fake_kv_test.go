package store

import (
	"context"
	"sync"
)

// fakeKeyValue is an in-memory KeyValue used to exercise the snapshot
// stores without a database.
type fakeKeyValue struct {
	mu     sync.Mutex
	values map[string]string

	failPuts bool
}

func newFakeKeyValue() *fakeKeyValue {
	return &fakeKeyValue{values: make(map[string]string)}
}

func (f *fakeKeyValue) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	value, ok := f.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (f *fakeKeyValue) Put(_ context.Context, key string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failPuts {
		return ErrExecutingQuery
	}

	f.values[key] = value
	return nil
}

func (f *fakeKeyValue) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.values, key)
	return nil
}
