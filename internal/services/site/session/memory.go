// Package session provides the in-process browser session value store.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jppf-project/site/internal/services/site/storage"
	"github.com/patrickmn/go-cache"
)

// DefaultTTL is the idle lifetime of an in-memory session.
const DefaultTTL = 24 * time.Hour

var _ storage.SessionValueStore = (*MemoryStore)(nil)

// MemoryStore keeps session values in process memory. Each session's values
// are one immutable map replaced on write, so readers never observe a
// partially applied Set.
type MemoryStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

// NewMemoryStore builds a store whose sessions expire after ttl without use.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{cache: cache.New(ttl, ttl)}
}

// GetSessionValue returns a value and refreshes the session's idle expiry.
func (s *MemoryStore) GetSessionValue(ctx context.Context, sessionID string, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	sessionID, key, err := normalize(sessionID, key)
	if err != nil {
		return "", false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	values, ok := s.values(sessionID)
	if !ok {
		return "", false, nil
	}
	s.cache.SetDefault(sessionID, values)
	value, found := values[key]
	return value, found, nil
}

// SetSessionValue stores a value for the session.
func (s *MemoryStore) SetSessionValue(ctx context.Context, sessionID string, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sessionID, key, err := normalize(sessionID, key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	current, _ := s.values(sessionID)
	next := make(map[string]string, len(current)+1)
	for k, v := range current {
		next[k] = v
	}
	next[key] = value
	s.cache.SetDefault(sessionID, next)
	return nil
}

func (s *MemoryStore) values(sessionID string) (map[string]string, bool) {
	raw, ok := s.cache.Get(sessionID)
	if !ok {
		return nil, false
	}
	values, ok := raw.(map[string]string)
	return values, ok
}

func normalize(sessionID string, key string) (string, string, error) {
	sessionID = strings.TrimSpace(sessionID)
	key = strings.TrimSpace(key)
	if sessionID == "" || key == "" {
		return "", "", fmt.Errorf("session id and key are required")
	}
	return sessionID, key, nil
}
