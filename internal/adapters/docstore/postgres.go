package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/zenhabit/zenhabit-engine/internal/core/domain"
)

// PostgresStore keeps the journal document in a single-row key/value table.
// The collection is small enough that whole-document rewrites beat a
// normalized schema here, and it keeps the persistence contract identical
// across backends.
type PostgresStore struct {
	db *sqlx.DB
}

var _ domain.DocumentStore = (*PostgresStore)(nil)

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the backing table when missing. Called once at
// startup.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS journal_documents (
			key        TEXT PRIMARY KEY,
			document   JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("ensure journal_documents table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Read(ctx context.Context) ([]byte, error) {
	var document []byte
	query := `SELECT document FROM journal_documents WHERE key = $1`

	err := s.db.GetContext(ctx, &document, query, documentKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "42P01" {
			return nil, fmt.Errorf("journal_documents table missing, run schema setup: %w", err)
		}
		return nil, fmt.Errorf("read journal document: %w", err)
	}
	return document, nil
}

func (s *PostgresStore) Write(ctx context.Context, document []byte) error {
	query := `
		INSERT INTO journal_documents (key, document, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`

	if _, err := s.db.ExecContext(ctx, query, documentKey, document, time.Now().UTC()); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "42P01" {
			return fmt.Errorf("journal_documents table missing, run schema setup: %w", err)
		}
		return fmt.Errorf("write journal document: %w", err)
	}
	return nil
}
