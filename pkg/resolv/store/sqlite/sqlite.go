// Package sqlite implements store.Store on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/resolv/pkg/resolv/internalerr"
	"github.com/cognicore/resolv/pkg/resolv/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes the
// schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS kb_clauses (
	kb_name TEXT NOT NULL,
	literals TEXT NOT NULL,
	PRIMARY KEY(kb_name, literals)
);

CREATE TABLE IF NOT EXISTS proofs (
	id TEXT PRIMARY KEY,
	kb_name TEXT NOT NULL,
	query TEXT NOT NULL,
	outcome TEXT NOT NULL,
	iterations INTEGER NOT NULL,
	derived INTEGER NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_proofs_created ON proofs(created_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertClause stores one clause of a named knowledge base. The literal
// list is JSON-encoded so the pair (kb, clause) stays unique.
func (s *sqliteStore) UpsertClause(ctx context.Context, kbName string, literals []string) error {
	if kbName == "" || len(literals) == 0 {
		return fmt.Errorf("%w: empty knowledge base name or clause", internalerr.ErrInvalidInput)
	}
	encoded, err := json.Marshal(literals)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kb_clauses (kb_name, literals) VALUES (?, ?)
		 ON CONFLICT(kb_name, literals) DO NOTHING`,
		kbName, string(encoded))
	return err
}

// GetClauses returns every clause of a named knowledge base.
func (s *sqliteStore) GetClauses(ctx context.Context, kbName string) ([][]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT literals FROM kb_clauses WHERE kb_name = ? ORDER BY literals`, kbName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var encoded string
		if err := rows.Scan(&encoded); err != nil {
			return nil, err
		}
		var lits []string
		if err := json.Unmarshal([]byte(encoded), &lits); err != nil {
			return nil, err
		}
		out = append(out, lits)
	}
	return out, rows.Err()
}

// ListKnowledgeBases returns the distinct knowledge base names.
func (s *sqliteStore) ListKnowledgeBases(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT kb_name FROM kb_clauses ORDER BY kb_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// SaveProof stores a proof session.
func (s *sqliteStore) SaveProof(ctx context.Context, p store.Proof) error {
	if p.ID == "" {
		return fmt.Errorf("%w: proof id", internalerr.ErrInvalidInput)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO proofs (id, kb_name, query, outcome, iterations, derived, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.KBName, p.Query, p.Outcome, p.Iterations, p.Derived,
		p.CreatedAt.UTC().Format(time.RFC3339Nano))
	return err
}

// GetProof returns a proof session by ID.
func (s *sqliteStore) GetProof(ctx context.Context, id string) (store.Proof, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, kb_name, query, outcome, iterations, derived, created_at
		 FROM proofs WHERE id = ?`, id)
	p, err := scanProof(row)
	if err == sql.ErrNoRows {
		return store.Proof{}, fmt.Errorf("%w: proof %s", internalerr.ErrNotFound, id)
	}
	return p, err
}

// ListProofs returns the most recent proof sessions.
func (s *sqliteStore) ListProofs(ctx context.Context, limit int) ([]store.Proof, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kb_name, query, outcome, iterations, derived, created_at
		 FROM proofs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Proof
	for rows.Next() {
		p, err := scanProof(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProof(row scanner) (store.Proof, error) {
	var p store.Proof
	var created string
	if err := row.Scan(&p.ID, &p.KBName, &p.Query, &p.Outcome, &p.Iterations, &p.Derived, &created); err != nil {
		return store.Proof{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return store.Proof{}, err
	}
	p.CreatedAt = t
	return p, nil
}
