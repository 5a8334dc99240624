// Package history keeps a log of completed rounds in SQLite.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/leapstack-labs/brewround/internal/core"

	_ "modernc.org/sqlite"
)

// ErrRoundNotFound is returned when no round has the requested id.
var ErrRoundNotFound = errors.New("round not found")

// Summary describes a recorded round without its orders.
type Summary struct {
	ID        string    `json:"id" yaml:"id"`
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	Orders    int       `json:"orders" yaml:"orders"`
}

// Store reads and writes rounds.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := openDB(ctx, "file:"+path+"?"+pragmas)
	if err != nil {
		return nil, err
	}

	s := NewWithDB(db, logger)
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// OpenExisting opens the database at path read-only. It neither creates
// the file nor migrates it.
func OpenExisting(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	db, err := openDB(ctx, "file:"+path+"?mode=ro&"+pragmas)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db, logger), nil
}

const pragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	// One connection keeps pragmas and in-memory databases consistent.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}
	return db, nil
}

// NewWithDB wraps an already opened database. It does not migrate.
func NewWithDB(db *sql.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{db: db, logger: logger}
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRound stores r with its orders in one transaction and returns its
// id. A round without an id is given a new one.
func (s *Store) RecordRound(ctx context.Context, r *core.Round) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO rounds (id, started_at, recorded_at) VALUES (?, ?, ?)`,
		r.ID, formatTime(r.StartedAt), formatTime(time.Now()),
	); err != nil {
		return "", fmt.Errorf("failed to insert round: %w", err)
	}

	for i, o := range r.Orders {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO round_orders (round_id, position, name, drink) VALUES (?, ?, ?, ?)`,
			r.ID, i, o.Name, o.Drink,
		); err != nil {
			return "", fmt.Errorf("failed to insert order for %s: %w", o.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit round: %w", err)
	}

	s.logger.Debug("recorded round", slog.String("id", r.ID), slog.Int("orders", len(r.Orders)))
	return r.ID, nil
}

// ListRounds returns up to limit rounds, newest first. A limit of zero or
// less returns all of them.
func (s *Store) ListRounds(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.started_at, COUNT(o.position)
		FROM rounds r
		LEFT JOIN round_orders o ON o.round_id = r.id
		GROUP BY r.id, r.started_at
		ORDER BY r.started_at DESC, r.id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var started string
		if err := rows.Scan(&sum.ID, &started, &sum.Orders); err != nil {
			return nil, fmt.Errorf("failed to scan round: %w", err)
		}
		if sum.StartedAt, err = parseTime(started); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	return out, nil
}

// CountRounds returns how many rounds have been recorded.
func (s *Store) CountRounds(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rounds`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rounds: %w", err)
	}
	return n, nil
}

// GetRound returns the round with id and its orders in the order taken.
func (s *Store) GetRound(ctx context.Context, id string) (*core.Round, error) {
	var started string
	err := s.db.QueryRowContext(ctx, `SELECT started_at FROM rounds WHERE id = ?`, id).Scan(&started)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRoundNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	r := &core.Round{ID: id}
	if r.StartedAt, err = parseTime(started); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, drink FROM round_orders WHERE round_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var o core.Order
		if err := rows.Scan(&o.Name, &o.Drink); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		r.Orders = append(r.Orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return r, nil
}

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}
