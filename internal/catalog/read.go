package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/graphkit/cypherdsl"
)

// ErrNotFound is returned when no entry matches the requested id or name.
var ErrNotFound = errors.New("statement not found")

// Entry is one stored statement.
type Entry struct {
	ID          string
	Name        string
	Body        string // kind-tagged JSON envelope
	Rendered    string // default-version rendered text
	ContentHash string
	CreatedAt   string
}

// Statement decodes the entry's body back into a statement. The decoded
// statement renders identically to Rendered.
func (e Entry) Statement() (*cypherdsl.Statement, error) {
	stmt := cypherdsl.NewStatement()
	if err := json.Unmarshal([]byte(e.Body), stmt); err != nil {
		return nil, fmt.Errorf("decode statement %q: %w", e.Name, err)
	}
	return stmt, nil
}

// Get returns the entry with the given id.
func (c *Catalog) Get(ctx context.Context, id string) (Entry, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT id, name, body, rendered, content_hash, created_at
		FROM statements
		WHERE id = ?
	`, id)
	return scanEntry(row)
}

// GetByName returns the entry with the given name.
func (c *Catalog) GetByName(ctx context.Context, name string) (Entry, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT id, name, body, rendered, content_hash, created_at
		FROM statements
		WHERE name = ?
	`, name)
	return scanEntry(row)
}

// List returns all entries ordered deterministically by name.
// Returns an empty slice (not nil) when the catalog is empty.
func (c *Catalog) List(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, name, body, rendered, content_hash, created_at
		FROM statements
		ORDER BY name COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list statements: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Body, &e.Rendered, &e.ContentHash, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan statement: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate statements: %w", err)
	}

	return entries, nil
}

func scanEntry(row *sql.Row) (Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.Name, &e.Body, &e.Rendered, &e.ContentHash, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("scan statement: %w", err)
	}
	return e, nil
}
