// Package storage defines persistence contracts for the site's link
// directory and browser session values.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable marks a store that could not be reached or queried.
	ErrUnavailable = errors.New("data source unavailable")
	// ErrAlreadyExists indicates a uniqueness-constrained record already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// LinkGroup is one directory category.
type LinkGroup struct {
	ID          int64
	Description string
}

// Link is one directory entry; ID is unique within its group.
type Link struct {
	ID          int64
	GroupID     int64
	URL         string
	Title       string
	Description string
}

// ReadOptions controls how a LinkDirectory reads.
type ReadOptions struct {
	// Snapshot runs every read of the directory inside one read transaction.
	Snapshot bool
}

// LinkDirectory is a request-scoped reader holding one store connection.
// Callers must Close it on every exit path.
type LinkDirectory interface {
	// ListLinkGroups returns every group ascending by ID.
	ListLinkGroups(ctx context.Context) ([]LinkGroup, error)
	// ListGroupLinks returns a group's links ascending by ID. An unknown or
	// empty group yields an empty, non-nil slice.
	ListGroupLinks(ctx context.Context, groupID int64) ([]Link, error)
	Close() error
}

// LinkDirectoryOpener acquires request-scoped directory readers.
type LinkDirectoryOpener interface {
	OpenLinkDirectory(ctx context.Context, opts ReadOptions) (LinkDirectory, error)
}

// LinkWriter loads directory content. It backs operator tooling only; the
// site pages never write.
type LinkWriter interface {
	CreateLinkGroup(ctx context.Context, group LinkGroup) error
	CreateLink(ctx context.Context, link Link) error
}

// SessionValueStore persists string values keyed by browser session.
type SessionValueStore interface {
	// GetSessionValue returns the stored value and whether it was present.
	GetSessionValue(ctx context.Context, sessionID string, key string) (string, bool, error)
	SetSessionValue(ctx context.Context, sessionID string, key string, value string) error
}
