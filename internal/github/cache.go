package github

import (
	"bytes"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const cacheSchemaSQL = `
CREATE TABLE IF NOT EXISTS responses (
	key        TEXT PRIMARY KEY,
	url        TEXT NOT NULL,
	status     INTEGER NOT NULL,
	body       BLOB NOT NULL,
	fetched_at DATETIME NOT NULL
);
`

// Cache is a SQLite-backed store of successful GET responses, used to soften
// unauthenticated rate limits across builds. A fresh hit substitutes for the
// network call; enrichment semantics (single attempt, degrade on failure) are
// unchanged.
type Cache struct {
	conn *sql.DB
	ttl  time.Duration
	now  func() time.Time
}

// OpenCache opens (or creates) the cache database and applies the schema.
func OpenCache(path string, ttl time.Duration) (*Cache, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("github: open cache: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("github: ping cache: %w", err)
	}
	if _, err := conn.Exec(cacheSchemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("github: apply cache schema: %w", err)
	}
	return &Cache{conn: conn, ttl: ttl, now: time.Now}, nil
}

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	return c.conn.Close()
}

func (c *Cache) get(key string) (status int, body []byte, ok bool) {
	var fetchedAt time.Time
	err := c.conn.QueryRow(
		`SELECT status, body, fetched_at FROM responses WHERE key = ?`, key,
	).Scan(&status, &body, &fetchedAt)
	if err != nil {
		return 0, nil, false
	}
	if c.ttl > 0 && c.now().Sub(fetchedAt) > c.ttl {
		return 0, nil, false
	}
	return status, body, true
}

func (c *Cache) put(key, url string, status int, body []byte) error {
	_, err := c.conn.Exec(`
		INSERT INTO responses (key, url, status, body, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			url        = excluded.url,
			status     = excluded.status,
			body       = excluded.body,
			fetched_at = excluded.fetched_at
	`, key, url, status, body, c.now())
	if err != nil {
		return fmt.Errorf("github: store response: %w", err)
	}
	return nil
}

// CachingDoer wraps an HTTPDoer, serving fresh cached bodies for GET requests
// and storing successful responses. Non-GET requests pass straight through.
type CachingDoer struct {
	doer  HTTPDoer
	cache *Cache
}

// NewCachingDoer creates a caching wrapper around doer.
func NewCachingDoer(doer HTTPDoer, cache *Cache) *CachingDoer {
	return &CachingDoer{doer: doer, cache: cache}
}

// Do implements HTTPDoer.
func (d *CachingDoer) Do(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return d.doer.Do(req)
	}

	key := cacheKey(req.URL.String())
	if status, body, ok := d.cache.get(key); ok {
		return syntheticResponse(req, status, body), nil
	}

	resp, err := d.doer.Do(req)
	if err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("github: read response for cache: %w", err)
	}
	if closeErr != nil {
		return nil, closeErr
	}

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		// A failed cache write must not fail the call.
		_ = d.cache.put(key, req.URL.String(), resp.StatusCode, body)
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}

func syntheticResponse(req *http.Request, status int, body []byte) *http.Response {
	return &http.Response{
		StatusCode:    status,
		Status:        http.StatusText(status),
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        make(http.Header),
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}

func cacheKey(url string) string {
	h := sha256.Sum256([]byte(url))
	return hex.EncodeToString(h[:])
}
