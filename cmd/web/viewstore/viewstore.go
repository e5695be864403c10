// Package viewstore keeps the live blog list displays, one List per display, in a
// bounded LRU keyed by display id.
package viewstore

import (
	"context"
	"errors"
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/google/uuid"

	"blog-list/cmd/internal/logger"
	"blog-list/cmd/web/bloglist"
)

var ErrNotFound = errors.New("display not found")

// Factory creates the List of a new display.
type Factory func() *bloglist.List

type Store struct {
	mu      sync.Mutex
	cache   *lru.Cache
	factory Factory
}

// New bounds the store to maxEntries displays; the least recently used display is
// dropped first. Dropping a display does not cancel its fetch.
func New(maxEntries int, factory Factory) *Store {
	cache := lru.New(maxEntries)
	cache.OnEvicted = func(key lru.Key, _ interface{}) {
		logger.DebugWithFields("blog display evicted", logger.Fields{"view_id": key})
	}
	return &Store{cache: cache, factory: factory}
}

// Open creates a fresh display and starts its one-shot fetch. The fetch is detached
// from ctx cancellation so that a closed request does not abort it.
func (s *Store) Open(ctx context.Context) (string, *bloglist.List) {
	id := uuid.NewString()
	list := s.factory()

	s.mu.Lock()
	s.cache.Add(id, list)
	s.mu.Unlock()

	list.Start(context.WithoutCancel(ctx))
	return id, list
}

func (s *Store) Get(id string) (*bloglist.List, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return v.(*bloglist.List), nil
}

func (s *Store) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cache.Get(id); !ok {
		return ErrNotFound
	}
	s.cache.Remove(id)
	return nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}
