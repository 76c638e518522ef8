package config

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
)

// SetupSchema creates the tables required by Store if they do not
// already exist. It is safe to call on every startup.
func SetupSchema(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS config_snapshots
(
    snapshot_name TEXT PRIMARY KEY,
    config_json   TEXT      NOT NULL,
    updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	return err
}

// Store persists resolved configuration snapshots in a SQL database so
// named configurations can be shared between documents and sessions.
// All methods are safe for concurrent use.
type Store struct {
	db         *sql.DB
	logger     *slog.Logger
	stmtSave   *sql.Stmt
	stmtLoad   *sql.Stmt
	stmtList   *sql.Stmt
	stmtDelete *sql.Stmt
}

// NewStore prepares the statements the store uses. SetupSchema must
// have been run against the database first.
func NewStore(db *sql.DB, logger *slog.Logger) (*Store, error) {
	s := &Store{db: db, logger: logger}
	var err error
	if s.stmtSave, err = db.Prepare(`
INSERT INTO config_snapshots (snapshot_name, config_json, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(snapshot_name) DO UPDATE SET config_json = excluded.config_json,
                                         updated_at  = CURRENT_TIMESTAMP;`); err != nil {
		return nil, fmt.Errorf("failed to prepare save statement: %w", err)
	}
	if s.stmtLoad, err = db.Prepare(`SELECT config_json FROM config_snapshots WHERE snapshot_name = ?`); err != nil {
		return nil, fmt.Errorf("failed to prepare load statement: %w", err)
	}
	if s.stmtList, err = db.Prepare(`SELECT snapshot_name FROM config_snapshots ORDER BY snapshot_name`); err != nil {
		return nil, fmt.Errorf("failed to prepare list statement: %w", err)
	}
	if s.stmtDelete, err = db.Prepare(`DELETE FROM config_snapshots WHERE snapshot_name = ?`); err != nil {
		return nil, fmt.Errorf("failed to prepare delete statement: %w", err)
	}
	return s, nil
}

// Save stores a configuration snapshot under name, replacing any
// previous snapshot with the same name.
func (s *Store) Save(ctx context.Context, name string, data Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %q: %w", name, err)
	}
	if _, err = s.stmtSave.ExecContext(ctx, name, string(raw)); err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", name, err)
	}
	s.logger.InfoContext(ctx, "Configuration snapshot saved",
		slog.String("name", name),
	)
	return nil
}

// Load retrieves a snapshot by name. The error wraps sql.ErrNoRows
// when no snapshot with that name exists.
func (s *Store) Load(ctx context.Context, name string) (Data, error) {
	var raw string
	if err := s.stmtLoad.QueryRowContext(ctx, name).Scan(&raw); err != nil {
		return Data{}, fmt.Errorf("failed to load snapshot %q: %w", name, err)
	}
	var data Data
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return Data{}, fmt.Errorf("failed to decode snapshot %q: %w", name, err)
	}
	return data, nil
}

// List returns the names of all stored snapshots in sorted order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.stmtList.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// Delete removes a snapshot by name. Deleting a nonexistent snapshot
// is a no-op.
func (s *Store) Delete(ctx context.Context, name string) error {
	if _, err := s.stmtDelete.ExecContext(ctx, name); err != nil {
		return fmt.Errorf("failed to delete snapshot %q: %w", name, err)
	}
	return nil
}

// Close releases the prepared statements. The database handle itself
// belongs to the caller and stays open.
func (s *Store) Close() {
	for _, stmt := range []*sql.Stmt{s.stmtSave, s.stmtLoad, s.stmtList, s.stmtDelete} {
		if stmt != nil {
			_ = stmt.Close()
		}
	}
}
