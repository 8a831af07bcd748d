// Package snapshot records compiled CSS in a local SQLite database so a
// later build can be compared with an earlier one.
package snapshot

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
)

// ErrNoSnapshot is returned when nothing was recorded for a theme and kind.
var ErrNoSnapshot = errors.New("no snapshot recorded")

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	slug TEXT NOT NULL,
	kind TEXT NOT NULL,
	digest TEXT NOT NULL,
	css TEXT NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS snapshots_slug_kind ON snapshots (slug, kind, id);
`

// Snapshot is one recorded stylesheet.
type Snapshot struct {
	ID        int64
	Slug      string
	Kind      string
	Digest    string
	CSS       string
	CreatedAt time.Time
}

// Store reads and writes snapshots.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating snapshot directory: %w", err)
	}

	log.Debug(log.CatSnapshot, "Opening database", "path", path)
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		log.ErrorErr(log.CatSnapshot, "Failed to open database", err, "path", path)
		return nil, err
	}
	// SQLite has a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		log.ErrorErr(log.CatSnapshot, "Failed to create schema", err, "path", path)
		return nil, fmt.Errorf("creating snapshot schema: %w", err)
	}
	return &Store{db: db, path: path, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Digest returns the hex SHA-256 of css.
func Digest(css string) string {
	sum := sha256.Sum256([]byte(css))
	return hex.EncodeToString(sum[:])
}

// Save records css for slug and kind. When the latest snapshot already has
// the same content nothing is written and created is false.
func (s *Store) Save(ctx context.Context, slug, kind, css string) (snap Snapshot, created bool, err error) {
	digest := Digest(css)

	latest, err := s.Latest(ctx, slug, kind)
	switch {
	case err == nil && latest.Digest == digest:
		log.Debug(log.CatSnapshot, "Snapshot unchanged", "slug", slug, "kind", kind)
		return latest, false, nil
	case err != nil && !errors.Is(err, ErrNoSnapshot):
		return Snapshot{}, false, err
	}

	snap = Snapshot{Slug: slug, Kind: kind, Digest: digest, CSS: css, CreatedAt: s.now().UTC().Truncate(time.Millisecond)}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (slug, kind, digest, css, created_at) VALUES (?, ?, ?, ?, ?)`,
		slug, kind, digest, css, snap.CreatedAt.UnixMilli())
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("saving snapshot: %w", err)
	}
	if snap.ID, err = res.LastInsertId(); err != nil {
		return Snapshot{}, false, fmt.Errorf("saving snapshot: %w", err)
	}

	log.Info(log.CatSnapshot, "Snapshot saved", "slug", slug, "kind", kind, "id", snap.ID, "bytes", len(css))
	return snap, true, nil
}

// Latest returns the most recent snapshot for slug and kind.
func (s *Store) Latest(ctx context.Context, slug, kind string) (Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, slug, kind, digest, css, created_at
		FROM snapshots
		WHERE slug = ? AND kind = ?
		ORDER BY id DESC
		LIMIT 1`, slug, kind)

	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("%w for %s (%s)", ErrNoSnapshot, slug, kind)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}
	return snap, nil
}

// List returns snapshots for slug, newest first, without their CSS. An empty
// slug lists every theme. limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, slug string, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, slug, kind, digest, '', created_at
		FROM snapshots
		WHERE ? = '' OR slug = ?
		ORDER BY id DESC
		LIMIT ?`, slug, slug, limit)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("listing snapshots: %w", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Prune keeps the newest keep snapshots per slug and kind and deletes the
// rest. keep <= 0 deletes nothing.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM snapshots
		WHERE id IN (
			SELECT id FROM (
				SELECT id, ROW_NUMBER() OVER (PARTITION BY slug, kind ORDER BY id DESC) AS rn
				FROM snapshots
			) WHERE rn > ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning snapshots: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("pruning snapshots: %w", err)
	}
	if n > 0 {
		log.Info(log.CatSnapshot, "Snapshots pruned", "deleted", n, "keep", keep)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (Snapshot, error) {
	var (
		snap    Snapshot
		created int64
	)
	if err := row.Scan(&snap.ID, &snap.Slug, &snap.Kind, &snap.Digest, &snap.CSS, &created); err != nil {
		return Snapshot{}, err
	}
	snap.CreatedAt = time.UnixMilli(created).UTC()
	return snap, nil
}
