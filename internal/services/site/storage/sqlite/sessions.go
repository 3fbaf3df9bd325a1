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

var _ storage.SessionValueStore = (*Store)(nil)

// GetSessionValue returns a session value. Sessions idle longer than the
// configured TTL are purged and read as absent; live sessions are touched.
func (s *Store) GetSessionValue(ctx context.Context, sessionID string, key string) (value string, found bool, err error) {
	ctx, span := startSpan(ctx, "sqlite.GetSessionValue", attribute.String("site.session.key", key))
	defer func() { endSpan(span, err) }()

	if s == nil || s.sqlDB == nil {
		return "", false, fmt.Errorf("get session value: %w", storage.ErrUnavailable)
	}
	sessionID = strings.TrimSpace(sessionID)
	key = strings.TrimSpace(key)
	if sessionID == "" || key == "" {
		return "", false, fmt.Errorf("session id and key are required")
	}

	now := toMillis(s.now())
	cutoff := now - s.sessionTTL.Milliseconds()

	var touchedAt int64
	err = s.sqlDB.QueryRowContext(
		ctx,
		`SELECT value, touched_at FROM session_values WHERE session_id = ? AND key = ?`,
		sessionID,
		key,
	).Scan(&value, &touchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, unavailable("get session value", err)
	}

	if touchedAt < cutoff {
		if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM session_values WHERE session_id = ?`, sessionID); err != nil {
			return "", false, unavailable("purge expired session", err)
		}
		return "", false, nil
	}
	if _, err := s.sqlDB.ExecContext(ctx, `UPDATE session_values SET touched_at = ? WHERE session_id = ?`, now, sessionID); err != nil {
		return "", false, unavailable("touch session", err)
	}
	return value, true, nil
}

// SetSessionValue stores a session value, replacing any previous one, and
// touches the rest of the session. Expired sessions are swept first.
func (s *Store) SetSessionValue(ctx context.Context, sessionID string, key string, value string) (err error) {
	ctx, span := startSpan(ctx, "sqlite.SetSessionValue", attribute.String("site.session.key", key))
	defer func() { endSpan(span, err) }()

	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("set session value: %w", storage.ErrUnavailable)
	}
	sessionID = strings.TrimSpace(sessionID)
	key = strings.TrimSpace(key)
	if sessionID == "" || key == "" {
		return fmt.Errorf("session id and key are required")
	}

	now := toMillis(s.now())
	if _, err := s.purgeExpired(ctx, now); err != nil {
		return err
	}
	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO session_values (session_id, key, value, created_at, touched_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (session_id, key) DO UPDATE SET value = excluded.value, touched_at = excluded.touched_at`,
		sessionID,
		key,
		value,
		now,
		now,
	)
	if err != nil {
		return unavailable("set session value", err)
	}
	if _, err := s.sqlDB.ExecContext(ctx, `UPDATE session_values SET touched_at = ? WHERE session_id = ?`, now, sessionID); err != nil {
		return unavailable("touch session", err)
	}
	return nil
}

// PurgeExpiredSessions deletes every session value idle longer than the TTL
// and reports how many rows were removed.
func (s *Store) PurgeExpiredSessions(ctx context.Context) (purged int64, err error) {
	ctx, span := startSpan(ctx, "sqlite.PurgeExpiredSessions")
	defer func() { endSpan(span, err) }()

	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("purge expired sessions: %w", storage.ErrUnavailable)
	}
	return s.purgeExpired(ctx, toMillis(s.now()))
}

func (s *Store) purgeExpired(ctx context.Context, now int64) (int64, error) {
	result, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM session_values WHERE touched_at < ?`,
		now-s.sessionTTL.Milliseconds(),
	)
	if err != nil {
		return 0, unavailable("purge expired sessions", err)
	}
	purged, err := result.RowsAffected()
	if err != nil {
		return 0, unavailable("purge expired sessions", err)
	}
	return purged, nil
}
