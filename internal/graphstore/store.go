// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graphstore mirrors the stub graph into a SQLite database so
// downstream tooling can ask dependency questions without re-reading
// and re-walking stubs.json.
// Implements: docs/ARCHITECTURE § Graph Store.
package graphstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/blueprint-probe/pkg/types"
)

// Store manages the graph database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the SQLite database at cfg.DBPath and
// ensures the schema exists.
func NewStore(cfg types.GraphStoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS stubs (
			name TEXT PRIMARY KEY,
			stub_type TEXT NOT NULL,
			path TEXT NOT NULL,
			code_name TEXT,
			labels TEXT NOT NULL,
			spec_ok INTEGER NOT NULL,
			mathlib_ok INTEGER NOT NULL,
			not_ready INTEGER NOT NULL,
			proof_ok INTEGER,
			spec_start INTEGER NOT NULL,
			spec_end INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS deps (
			stub TEXT NOT NULL REFERENCES stubs(name),
			dep TEXT NOT NULL,
			kind TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_deps_stub ON deps(stub)`,
		`CREATE INDEX IF NOT EXISTS idx_deps_dep ON deps(dep)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Load replaces the database contents with the given stub mapping.
// The whole load is one transaction: on any error the previous contents
// survive intact.
func (s *Store) Load(ctx context.Context, all map[string]types.Stub) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"deps", "stubs"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	stubStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO stubs (name, stub_type, path, code_name, labels, spec_ok, mathlib_ok, not_ready, proof_ok, spec_start, spec_end)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing stub insert: %w", err)
	}
	defer stubStmt.Close()

	depStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO deps (stub, dep, kind) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing dep insert: %w", err)
	}
	defer depStmt.Close()

	for name, stub := range all {
		labelsJSON, _ := json.Marshal(stub.Labels)

		var proofOK any
		if stub.ProofOK != nil {
			proofOK = *stub.ProofOK
		}

		_, err := stubStmt.ExecContext(ctx,
			name, stub.Type, stub.Path, stub.CodeName, string(labelsJSON),
			stub.SpecOK, stub.MathlibOK, stub.NotReady, proofOK,
			stub.Spec.Start, stub.Spec.End,
		)
		if err != nil {
			return fmt.Errorf("inserting stub %s: %w", name, err)
		}

		for _, dep := range stub.SpecDependencies {
			if _, err := depStmt.ExecContext(ctx, name, dep, "spec"); err != nil {
				return fmt.Errorf("inserting dep of %s: %w", name, err)
			}
		}
		for _, dep := range stub.ProofDependencies {
			if _, err := depStmt.ExecContext(ctx, name, dep, "proof"); err != nil {
				return fmt.Errorf("inserting dep of %s: %w", name, err)
			}
		}
	}

	return tx.Commit()
}

// Edge is one dependency relation returned by a query.
type Edge struct {
	// Name is the other end of the edge.
	Name string `json:"name"`

	// Kind is "spec" or "proof".
	Kind string `json:"kind"`
}

// Dependencies returns what a stub depends on, ordered by name.
func (s *Store) Dependencies(ctx context.Context, name string) ([]Edge, error) {
	return s.queryEdges(ctx,
		`SELECT dep, kind FROM deps WHERE stub = ? ORDER BY dep, kind LIMIT ?`, name)
}

// Dependents returns the stubs that depend on name, ordered by name.
func (s *Store) Dependents(ctx context.Context, name string) ([]Edge, error) {
	return s.queryEdges(ctx,
		`SELECT stub, kind FROM deps WHERE dep = ? ORDER BY stub, kind LIMIT ?`, name)
}

func (s *Store) queryEdges(ctx context.Context, query, name string) ([]Edge, error) {
	rows, err := s.db.QueryContext(ctx, query, name, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("querying edges: %w", err)
	}
	defer rows.Close()

	var edges []Edge
	for rows.Next() {
		var e Edge
		if err := rows.Scan(&e.Name, &e.Kind); err != nil {
			return nil, fmt.Errorf("scanning edge: %w", err)
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// Count returns the number of stored stubs.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM stubs`).Scan(&n)
	return n, err
}
