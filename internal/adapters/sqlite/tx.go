package sqlite

import (
	"context"
	"database/sql"
	"time"
)

// documentTx wraps the statements a document write needs
type documentTx struct {
	ctx context.Context
	tx  *sql.Tx
}

// Upsert inserts or replaces a document body
func (t *documentTx) Upsert(key string, body []byte) error {
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT OR REPLACE INTO documents (key, body, updated_at)
		VALUES (?, ?, ?)
	`, key, string(body), time.Now().UnixMilli())
	return err
}

// Delete removes a document
func (t *documentTx) Delete(key string) error {
	_, err := t.tx.ExecContext(t.ctx, `DELETE FROM documents WHERE key = ?`, key)
	return err
}

// Commit commits the transaction
func (t *documentTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *documentTx) Rollback() error {
	return t.tx.Rollback()
}
