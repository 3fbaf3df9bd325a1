package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jppf-project/site/internal/services/site/storage"
	"go.opentelemetry.io/otel/attribute"
)

var _ storage.LinkDirectoryOpener = (*Store)(nil)
var _ storage.LinkWriter = (*Store)(nil)

// queryer is satisfied by both *sql.Conn and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// linkDirectory reads through one pooled connection, optionally inside a
// read transaction.
type linkDirectory struct {
	conn *sql.Conn
	tx   *sql.Tx
}

// OpenLinkDirectory acquires a dedicated connection for one request's reads.
func (s *Store) OpenLinkDirectory(ctx context.Context, opts storage.ReadOptions) (storage.LinkDirectory, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("open link directory: %w", storage.ErrUnavailable)
	}
	conn, err := s.sqlDB.Conn(ctx)
	if err != nil {
		return nil, unavailable("open link directory", err)
	}
	dir := &linkDirectory{conn: conn}
	if opts.Snapshot {
		// A deferred SQLite transaction pins the read snapshot at its first
		// SELECT and keeps it until rollback.
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			_ = conn.Close()
			return nil, unavailable("begin directory snapshot", err)
		}
		dir.tx = tx
	}
	return dir, nil
}

func (d *linkDirectory) q() queryer {
	if d.tx != nil {
		return d.tx
	}
	return d.conn
}

// ListLinkGroups returns every group ascending by group_id.
func (d *linkDirectory) ListLinkGroups(ctx context.Context) (groups []storage.LinkGroup, err error) {
	ctx, span := startSpan(ctx, "sqlite.ListLinkGroups")
	defer func() { endSpan(span, err) }()

	rows, err := d.q().QueryContext(ctx, `SELECT group_id, description FROM link_groups ORDER BY group_id ASC`)
	if err != nil {
		return nil, unavailable("list link groups", err)
	}
	defer rows.Close()

	groups = make([]storage.LinkGroup, 0)
	for rows.Next() {
		var group storage.LinkGroup
		if err := rows.Scan(&group.ID, &group.Description); err != nil {
			return nil, unavailable("scan link group", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate link groups", err)
	}
	span.SetAttributes(attribute.Int("site.link_groups.count", len(groups)))
	return groups, nil
}

// ListGroupLinks returns the group's links ascending by link_id.
func (d *linkDirectory) ListGroupLinks(ctx context.Context, groupID int64) (links []storage.Link, err error) {
	ctx, span := startSpan(ctx, "sqlite.ListGroupLinks", attribute.Int64("site.link_group.id", groupID))
	defer func() { endSpan(span, err) }()

	rows, err := d.q().QueryContext(
		ctx,
		`SELECT link_id, url, title, description, group_id
		   FROM links
		  WHERE group_id = ?
		  ORDER BY link_id ASC`,
		groupID,
	)
	if err != nil {
		return nil, unavailable("list group links", err)
	}
	defer rows.Close()

	links = make([]storage.Link, 0)
	for rows.Next() {
		var link storage.Link
		if err := rows.Scan(&link.ID, &link.URL, &link.Title, &link.Description, &link.GroupID); err != nil {
			return nil, unavailable("scan link", err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate group links", err)
	}
	span.SetAttributes(attribute.Int("site.links.count", len(links)))
	return links, nil
}

// Close ends the snapshot, if any, and returns the connection to the pool.
func (d *linkDirectory) Close() error {
	if d == nil || d.conn == nil {
		return nil
	}
	var rollbackErr error
	if d.tx != nil {
		if err := d.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			rollbackErr = fmt.Errorf("end directory snapshot: %w", err)
		}
		d.tx = nil
	}
	closeErr := d.conn.Close()
	d.conn = nil
	return errors.Join(rollbackErr, closeErr)
}

// CreateLinkGroup inserts one link group.
func (s *Store) CreateLinkGroup(ctx context.Context, group storage.LinkGroup) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if group.ID <= 0 {
		return fmt.Errorf("group id must be positive")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO link_groups (group_id, description) VALUES (?, ?)`,
		group.ID,
		strings.TrimSpace(group.Description),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create link group: %w", err)
	}
	return nil
}

// CreateLink inserts one link into an existing group.
func (s *Store) CreateLink(ctx context.Context, link storage.Link) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	url := strings.TrimSpace(link.URL)
	switch {
	case link.ID <= 0:
		return fmt.Errorf("link id must be positive")
	case link.GroupID <= 0:
		return fmt.Errorf("group id must be positive")
	case url == "":
		return fmt.Errorf("link url is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO links (group_id, link_id, url, title, description) VALUES (?, ?, ?, ?, ?)`,
		link.GroupID,
		link.ID,
		url,
		strings.TrimSpace(link.Title),
		strings.TrimSpace(link.Description),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("create link %d: group %d does not exist", link.ID, link.GroupID)
		}
		return fmt.Errorf("create link: %w", err)
	}
	return nil
}
