package slideshow

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jppf-project/site/internal/services/site/storage"
)

const (
	sessionKeyFirst = "slideshow.first"
	sessionKeyLast  = "slideshow.last"
)

// loadBounds returns the session's bounds, storing defaults the first time a
// session views the slideshow. Stored values are never rewritten.
func loadBounds(ctx context.Context, store storage.SessionValueStore, sessionID string, defaults Bounds) (Bounds, error) {
	if store == nil {
		return defaults, fmt.Errorf("session store is not configured")
	}
	first, err := loadBound(ctx, store, sessionID, sessionKeyFirst, defaults.First)
	if err != nil {
		return defaults, err
	}
	last, err := loadBound(ctx, store, sessionID, sessionKeyLast, defaults.Last)
	if err != nil {
		return defaults, err
	}
	return Bounds{First: first, Last: last}, nil
}

func loadBound(ctx context.Context, store storage.SessionValueStore, sessionID string, key string, fallback int) (int, error) {
	raw, found, err := store.GetSessionValue(ctx, sessionID, key)
	if err != nil {
		return fallback, fmt.Errorf("get %s: %w", key, err)
	}
	if found {
		if value, parseErr := strconv.Atoi(raw); parseErr == nil {
			return value, nil
		}
	}
	if err := store.SetSessionValue(ctx, sessionID, key, strconv.Itoa(fallback)); err != nil {
		return fallback, fmt.Errorf("set %s: %w", key, err)
	}
	return fallback, nil
}
