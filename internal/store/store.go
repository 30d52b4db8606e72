// Package store keeps privacy-conscious visitor metrics and outbound link click
// counts in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Timestamps are stored as UTC text in this layout so they sort lexicographically
// and stay readable by SQLite's date functions.
const timeLayout = "2006-01-02 15:04:05"

type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type LinkClick struct {
	Kind      string    `json:"kind"`
	TargetID  string    `json:"target_id"`
	URL       string    `json:"url"`
	Clicks    int64     `json:"clicks"`
	CreatedAt time.Time `json:"created_at"`
}

type Stats struct {
	TotalVisitors    int64       `json:"total_visitors"`
	UniqueVisitors   int64       `json:"unique_visitors"`
	VisitorsToday    int64       `json:"visitors_today"`
	VisitorsThisWeek int64       `json:"visitors_this_week"`
	TotalLinks       int64       `json:"total_links"`
	TotalClicks      int64       `json:"total_clicks"`
	TopLinks         []LinkClick `json:"top_links"`
	RecentVisitors   []Visit     `json:"recent_visitors"`
}

type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,  -- never the raw IP
	user_agent TEXT NOT NULL DEFAULT '',
	path TEXT NOT NULL DEFAULT '',
	timestamp TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_timestamp ON visitors (timestamp);

CREATE TABLE IF NOT EXISTS link_clicks (
	kind TEXT NOT NULL,
	target_id TEXT NOT NULL,
	url TEXT NOT NULL,
	clicks INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	PRIMARY KEY (kind, target_id)
);`

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	// One connection: SQLite serializes writers anyway and ":memory:" databases are per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.ParseInLocation(timeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

// RecordVisit stores one page view.
func (s *Store) RecordVisit(ctx context.Context, v Visit) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, v.HashedIP, v.UserAgent, v.Path, formatTime(v.Timestamp))
	if err != nil {
		return fmt.Errorf("insert visitor: %w", err)
	}
	return nil
}

// RecordClick counts one click on the link identified by kind and targetID.
func (s *Store) RecordClick(ctx context.Context, kind, targetID, url string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO link_clicks (kind, target_id, url, clicks, created_at)
		VALUES (?, ?, ?, 1, ?)
		ON CONFLICT (kind, target_id) DO UPDATE SET clicks = clicks + 1, url = excluded.url
	`, kind, targetID, url, formatTime(at))
	if err != nil {
		return fmt.Errorf("record click: %w", err)
	}
	return nil
}

// DeleteLink forgets the counter for a link. It reports whether one existed.
func (s *Store) DeleteLink(ctx context.Context, kind, targetID string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM link_clicks WHERE kind = ? AND target_id = ?`, kind, targetID)
	if err != nil {
		return false, fmt.Errorf("delete link: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// Cleanup deletes visitor records older than cutoff.
func (s *Store) Cleanup(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, formatTime(cutoff))
	if err != nil {
		return 0, fmt.Errorf("delete old visitors: %w", err)
	}
	return result.RowsAffected()
}

// Links lists every counted link, most clicked first.
func (s *Store) Links(ctx context.Context, limit int) ([]LinkClick, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, target_id, url, clicks, created_at
		FROM link_clicks
		ORDER BY clicks DESC, created_at DESC, kind, target_id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	defer rows.Close()

	var links []LinkClick
	for rows.Next() {
		var (
			l       LinkClick
			created string
		)
		if err := rows.Scan(&l.Kind, &l.TargetID, &l.URL, &l.Clicks, &created); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		l.CreatedAt = parseTime(created)
		links = append(links, l)
	}
	return links, rows.Err()
}

// Visitors lists the most recent visits.
func (s *Store) Visitors(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query visitors: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var (
			v  Visit
			ts string
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		v.Timestamp = parseTime(ts)
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// Stats summarizes visits and clicks as of now.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	stats := &Stats{}
	now = now.UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		query string
		args  []any
		dst   *int64
	}{
		{`SELECT COUNT(*) FROM visitors`, nil, &stats.TotalVisitors},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil, &stats.UniqueVisitors},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{formatTime(startOfDay)}, &stats.VisitorsToday},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{formatTime(now.AddDate(0, 0, -7))}, &stats.VisitorsThisWeek},
		{`SELECT COUNT(*) FROM link_clicks`, nil, &stats.TotalLinks},
		{`SELECT COALESCE(SUM(clicks), 0) FROM link_clicks`, nil, &stats.TotalClicks},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("%s: %w", c.query, err)
		}
	}

	var err error
	if stats.TopLinks, err = s.Links(ctx, 10); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.Visitors(ctx, 50); err != nil {
		return nil, err
	}
	return stats, nil
}
