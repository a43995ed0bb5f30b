package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/graphkit/cypherdsl"
)

// Save stores a statement under the given name and returns the stored entry.
//
// A new entry gets a time-sortable UUIDv7 id. Saving an existing name
// replaces the body, rendered text, and content hash while keeping the
// original id, so external references stay valid across revisions.
func (c *Catalog) Save(ctx context.Context, name string, stmt *cypherdsl.Statement) (Entry, error) {
	if name == "" {
		return Entry{}, fmt.Errorf("save statement: name may not be empty")
	}
	if stmt == nil {
		return Entry{}, fmt.Errorf("save statement: statement may not be nil")
	}

	body, err := json.Marshal(stmt)
	if err != nil {
		return Entry{}, fmt.Errorf("save statement: marshal body: %w", err)
	}

	entry := Entry{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Name:        name,
		Body:        string(body),
		Rendered:    stmt.String(),
		ContentHash: cypherdsl.ContentHash(stmt),
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO statements (id, name, body, rendered, content_hash)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			body = excluded.body,
			rendered = excluded.rendered,
			content_hash = excluded.content_hash
	`,
		entry.ID,
		entry.Name,
		entry.Body,
		entry.Rendered,
		entry.ContentHash,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("save statement: %w", err)
	}

	// On upsert the pre-existing id wins; read the row back for the caller.
	return c.GetByName(ctx, name)
}

// Delete removes the named statement. Deleting an absent name is a no-op.
func (c *Catalog) Delete(ctx context.Context, name string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM statements WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete statement: %w", err)
	}
	return nil
}
