package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/jppf-project/site/internal/services/site/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(" "); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestOpenIsIdempotentAcrossRestarts(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "site.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := first.CreateLinkGroup(context.Background(), storage.LinkGroup{ID: 1, Description: "Kept"}); err != nil {
		t.Fatalf("create link group: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })

	groups := listGroups(t, second, storage.ReadOptions{})
	if len(groups) != 1 || groups[0].Description != "Kept" {
		t.Fatalf("groups = %+v, want one kept group", groups)
	}
}

func TestListLinkGroupsAscendingByID(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	for _, group := range []storage.LinkGroup{
		{ID: 3, Description: "Third"},
		{ID: 1, Description: "First"},
		{ID: 2, Description: "Second"},
	} {
		if err := store.CreateLinkGroup(ctx, group); err != nil {
			t.Fatalf("create link group %d: %v", group.ID, err)
		}
	}

	groups := listGroups(t, store, storage.ReadOptions{})
	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(groups))
	}
	for idx, want := range []int64{1, 2, 3} {
		if groups[idx].ID != want {
			t.Fatalf("groups[%d].ID = %d, want %d", idx, groups[idx].ID, want)
		}
	}
	if groups[0].Description != "First" {
		t.Fatalf("groups[0].Description = %q, want %q", groups[0].Description, "First")
	}
}

func TestListGroupLinksAscendingByLinkID(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	mustCreateGroup(t, store, 1)
	mustCreateGroup(t, store, 2)
	for _, link := range []storage.Link{
		{ID: 5, GroupID: 1, URL: "https://e.example", Title: "E", Description: "five"},
		{ID: 2, GroupID: 1, URL: "https://b.example", Title: "B", Description: "two"},
		{ID: 9, GroupID: 1, URL: "https://i.example", Title: "I", Description: "nine"},
		{ID: 1, GroupID: 2, URL: "https://other.example", Title: "Other", Description: "other group"},
	} {
		if err := store.CreateLink(ctx, link); err != nil {
			t.Fatalf("create link %d: %v", link.ID, err)
		}
	}

	dir, err := store.OpenLinkDirectory(ctx, storage.ReadOptions{})
	if err != nil {
		t.Fatalf("open link directory: %v", err)
	}
	defer dir.Close()

	links, err := dir.ListGroupLinks(ctx, 1)
	if err != nil {
		t.Fatalf("list group links: %v", err)
	}
	if len(links) != 3 {
		t.Fatalf("links = %d, want 3", len(links))
	}
	for idx, want := range []int64{2, 5, 9} {
		if links[idx].ID != want {
			t.Fatalf("links[%d].ID = %d, want %d", idx, links[idx].ID, want)
		}
		if links[idx].GroupID != 1 {
			t.Fatalf("links[%d].GroupID = %d, want 1", idx, links[idx].GroupID)
		}
	}
	if links[0].URL != "https://b.example" || links[0].Title != "B" || links[0].Description != "two" {
		t.Fatalf("links[0] = %+v", links[0])
	}
}

func TestListGroupLinksEmptyOrUnknownGroup(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	mustCreateGroup(t, store, 1)

	dir, err := store.OpenLinkDirectory(ctx, storage.ReadOptions{})
	if err != nil {
		t.Fatalf("open link directory: %v", err)
	}
	defer dir.Close()

	for _, groupID := range []int64{1, 404} {
		links, err := dir.ListGroupLinks(ctx, groupID)
		if err != nil {
			t.Fatalf("list group %d links: %v", groupID, err)
		}
		if links == nil || len(links) != 0 {
			t.Fatalf("group %d links = %#v, want empty non-nil slice", groupID, links)
		}
	}
}

func TestSnapshotDirectoryReadsConsistently(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	mustCreateGroup(t, store, 1)

	dir, err := store.OpenLinkDirectory(ctx, storage.ReadOptions{Snapshot: true})
	if err != nil {
		t.Fatalf("open snapshot directory: %v", err)
	}
	defer dir.Close()

	groups, err := dir.ListLinkGroups(ctx)
	if err != nil {
		t.Fatalf("list link groups: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}

	if err := store.CreateLink(ctx, storage.Link{ID: 1, GroupID: 1, URL: "https://late.example"}); err != nil {
		t.Fatalf("create link after snapshot: %v", err)
	}

	links, err := dir.ListGroupLinks(ctx, 1)
	if err != nil {
		t.Fatalf("list group links: %v", err)
	}
	if len(links) != 0 {
		t.Fatalf("snapshot saw %d links written after it started, want 0", len(links))
	}
}

func TestDirectoryCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	dir, err := store.OpenLinkDirectory(context.Background(), storage.ReadOptions{Snapshot: true})
	if err != nil {
		t.Fatalf("open link directory: %v", err)
	}
	if err := dir.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := dir.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestClosedStoreReportsUnavailable(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	_, err := store.OpenLinkDirectory(context.Background(), storage.ReadOptions{})
	if !errors.Is(err, storage.ErrUnavailable) {
		t.Fatalf("OpenLinkDirectory() error = %v, want ErrUnavailable", err)
	}
	if err := store.Ping(context.Background()); !errors.Is(err, storage.ErrUnavailable) {
		t.Fatalf("Ping() error = %v, want ErrUnavailable", err)
	}
}

func TestCreateLinkGroupReturnsAlreadyExistsOnDuplicate(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	mustCreateGroup(t, store, 1)

	err := store.CreateLinkGroup(context.Background(), storage.LinkGroup{ID: 1, Description: "again"})
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("CreateLinkGroup() error = %v, want ErrAlreadyExists", err)
	}
}

func TestCreateLinkValidation(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	mustCreateGroup(t, store, 1)

	tests := []struct {
		name string
		link storage.Link
	}{
		{name: "missing id", link: storage.Link{GroupID: 1, URL: "https://x.example"}},
		{name: "missing group", link: storage.Link{ID: 1, URL: "https://x.example"}},
		{name: "missing url", link: storage.Link{ID: 1, GroupID: 1, URL: " "}},
		{name: "unknown group", link: storage.Link{ID: 1, GroupID: 99, URL: "https://x.example"}},
	}
	for _, tc := range tests {
		if err := store.CreateLink(ctx, tc.link); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}

	link := storage.Link{ID: 1, GroupID: 1, URL: "https://x.example"}
	if err := store.CreateLink(ctx, link); err != nil {
		t.Fatalf("create link: %v", err)
	}
	if err := store.CreateLink(ctx, link); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate CreateLink() error = %v, want ErrAlreadyExists", err)
	}
}

func TestSessionValueRoundTripAndOverwrite(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	if _, found, err := store.GetSessionValue(ctx, "sess-1", "slideshow.first"); err != nil || found {
		t.Fatalf("GetSessionValue() found = %v, err = %v, want absent", found, err)
	}
	if err := store.SetSessionValue(ctx, "sess-1", "slideshow.first", "0"); err != nil {
		t.Fatalf("set session value: %v", err)
	}
	if err := store.SetSessionValue(ctx, "sess-1", "slideshow.first", "2"); err != nil {
		t.Fatalf("overwrite session value: %v", err)
	}

	value, found, err := store.GetSessionValue(ctx, "sess-1", "slideshow.first")
	if err != nil {
		t.Fatalf("get session value: %v", err)
	}
	if !found || value != "2" {
		t.Fatalf("value = %q found = %v, want %q", value, found, "2")
	}
	if _, found, _ := store.GetSessionValue(ctx, "sess-2", "slideshow.first"); found {
		t.Fatal("expected sessions to be isolated")
	}
}

func TestSessionValueExpiresAfterIdleTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	store, err := Open(filepath.Join(t.TempDir(), "site.db"), WithSessionTTL(time.Hour), withClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	if err := store.SetSessionValue(ctx, "sess-1", "slideshow.last", "20"); err != nil {
		t.Fatalf("set session value: %v", err)
	}

	now = now.Add(50 * time.Minute)
	if _, found, err := store.GetSessionValue(ctx, "sess-1", "slideshow.last"); err != nil || !found {
		t.Fatalf("found = %v err = %v, want live value", found, err)
	}

	// The read above touched the session, so the idle window restarts.
	now = now.Add(50 * time.Minute)
	if _, found, err := store.GetSessionValue(ctx, "sess-1", "slideshow.last"); err != nil || !found {
		t.Fatalf("found = %v err = %v, want touched value", found, err)
	}

	now = now.Add(2 * time.Hour)
	if _, found, err := store.GetSessionValue(ctx, "sess-1", "slideshow.last"); err != nil || found {
		t.Fatalf("found = %v err = %v, want expired", found, err)
	}
}

func TestSetSessionValueSweepsAbandonedSessions(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	store, err := Open(filepath.Join(t.TempDir(), "site.db"), WithSessionTTL(time.Hour), withClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	for idx := range 20 {
		sessionID := fmt.Sprintf("abandoned-%d", idx)
		for _, key := range []string{"slideshow.first", "slideshow.last"} {
			if err := store.SetSessionValue(ctx, sessionID, key, "0"); err != nil {
				t.Fatalf("set %s %s: %v", sessionID, key, err)
			}
		}
	}
	if got := countSessionRows(t, store); got != 40 {
		t.Fatalf("rows = %d, want 40", got)
	}

	now = now.Add(48 * time.Hour)
	if err := store.SetSessionValue(ctx, "fresh", "slideshow.first", "0"); err != nil {
		t.Fatalf("set fresh session: %v", err)
	}
	if got := countSessionRows(t, store); got != 1 {
		t.Fatalf("rows after sweep = %d, want 1", got)
	}
	if value, found, err := store.GetSessionValue(ctx, "fresh", "slideshow.first"); err != nil || !found || value != "0" {
		t.Fatalf("fresh value = %q found = %v err = %v, want live value", value, found, err)
	}
}

func TestPurgeExpiredSessionsKeepsLiveSessions(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	store, err := Open(filepath.Join(t.TempDir(), "site.db"), WithSessionTTL(time.Hour), withClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	if err := store.SetSessionValue(ctx, "old", "k", "v"); err != nil {
		t.Fatalf("set old session: %v", err)
	}
	now = now.Add(30 * time.Minute)
	if err := store.SetSessionValue(ctx, "live", "k", "v"); err != nil {
		t.Fatalf("set live session: %v", err)
	}

	now = now.Add(45 * time.Minute)
	purged, err := store.PurgeExpiredSessions(ctx)
	if err != nil {
		t.Fatalf("PurgeExpiredSessions() error = %v", err)
	}
	if purged != 1 {
		t.Fatalf("purged = %d, want 1", purged)
	}
	if _, found, err := store.GetSessionValue(ctx, "live", "k"); err != nil || !found {
		t.Fatalf("live found = %v err = %v, want present", found, err)
	}
}

func countSessionRows(t *testing.T, store *Store) int {
	t.Helper()
	var count int
	if err := store.sqlDB.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM session_values`).Scan(&count); err != nil {
		t.Fatalf("count session rows: %v", err)
	}
	return count
}

func TestSessionValueRequiresIDAndKey(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	if _, _, err := store.GetSessionValue(ctx, "", "k"); err == nil {
		t.Fatal("expected missing session id error")
	}
	if err := store.SetSessionValue(ctx, "s", " ", "v"); err == nil {
		t.Fatal("expected missing key error")
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "site.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func mustCreateGroup(t *testing.T, store *Store, id int64) {
	t.Helper()
	if err := store.CreateLinkGroup(context.Background(), storage.LinkGroup{ID: id, Description: "group"}); err != nil {
		t.Fatalf("create link group %d: %v", id, err)
	}
}

func listGroups(t *testing.T, store *Store, opts storage.ReadOptions) []storage.LinkGroup {
	t.Helper()
	dir, err := store.OpenLinkDirectory(context.Background(), opts)
	if err != nil {
		t.Fatalf("open link directory: %v", err)
	}
	defer dir.Close()
	groups, err := dir.ListLinkGroups(context.Background())
	if err != nil {
		t.Fatalf("list link groups: %v", err)
	}
	return groups
}
