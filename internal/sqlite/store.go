// Package sqlite implements the boundctl snapshot store.
//
// snapshots.jsonl in the data directory is the source of truth. On Open the
// SQLite database is recreated and loaded from it; every Save and Delete
// commits to SQLite first and then rewrites the JSONL file atomically.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/bounded/pkg/bstring"
	"github.com/mesh-intelligence/bounded/pkg/types"
)

// Store persists named snapshots of bounded strings.
type Store struct {
	mu      sync.RWMutex
	db      *sql.DB
	dataDir string
	logger  *zap.Logger
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for store events. The default discards.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open creates dataDir if needed, rebuilds the database from
// snapshots.jsonl and returns a ready Store. The caller must Close it.
func Open(dataDir string, opts ...Option) (*Store, error) {
	s := &Store{
		dataDir: dataDir,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.dataDir == "" {
		s.dataDir = "."
	}
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(s.dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	s.db = db

	n, err := s.loadJSONL()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load %s: %w", snapshotsJSONL, err)
	}

	s.logger.Debug("snapshot store opened",
		zap.String("data_dir", s.dataDir),
		zap.Int("snapshots", n))
	return s, nil
}

// Close releases the database. It is idempotent; afterwards every other
// method returns types.ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Save stores a copy of str under name and returns the new snapshot ID,
// a UUID v7.
func (s *Store) Save(name string, str *bstring.String) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", types.ErrInvalidName
	}
	if str == nil {
		return "", fmt.Errorf("save %q: nil string", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return "", types.ErrStoreClosed
	}

	snap := Snapshot{
		ID:        generateUUID(),
		Name:      name,
		Capacity:  str.Cap(),
		Content:   append([]byte(nil), str.Bytes()...),
		CreatedAt: s.now().UTC(),
	}
	if err := insertSnapshot(s.db, snap); err != nil {
		return "", err
	}
	if err := s.persistJSONL(); err != nil {
		return "", fmt.Errorf("persist %s: %w", snapshotsJSONL, err)
	}

	s.logger.Info("snapshot saved",
		zap.String("snapshot_id", snap.ID),
		zap.String("name", snap.Name),
		zap.Int("len", len(snap.Content)),
		zap.Int("capacity", snap.Capacity))
	return snap.ID, nil
}

// Get returns the snapshot with the given ID.
func (s *Store) Get(id string) (Snapshot, error) {
	if err := validateID(id); err != nil {
		return Snapshot{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return Snapshot{}, types.ErrStoreClosed
	}

	row := s.db.QueryRow("SELECT "+snapshotColumns+" FROM snapshots WHERE snapshot_id = ?", id)
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, types.ErrNotFound
	}
	return snap, err
}

// Load returns the stored string rebuilt with its original capacity.
func (s *Store) Load(id string) (*bstring.String, error) {
	snap, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return snap.Bounded(), nil
}

// List returns every snapshot, oldest first. UUID v7 IDs sort by creation time.
func (s *Store) List() ([]Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	return s.listLocked()
}

// Delete removes the snapshot with the given ID.
func (s *Store) Delete(id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return types.ErrStoreClosed
	}

	res, err := s.db.Exec("DELETE FROM snapshots WHERE snapshot_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	if err := s.persistJSONL(); err != nil {
		return fmt.Errorf("persist %s: %w", snapshotsJSONL, err)
	}

	s.logger.Info("snapshot deleted", zap.String("snapshot_id", id))
	return nil
}

func (s *Store) listLocked() ([]Snapshot, error) {
	rows, err := s.db.Query("SELECT " + snapshotColumns + " FROM snapshots ORDER BY snapshot_id")
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// loadJSONL inserts every record of snapshots.jsonl. Records that do not
// decode or fail validation are skipped with a warning.
func (s *Store) loadJSONL() (int, error) {
	records, err := readJSONL(filepath.Join(s.dataDir, snapshotsJSONL))
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, rec := range records {
		var snap Snapshot
		if err := json.Unmarshal(rec, &snap); err != nil {
			s.logger.Warn("skipping malformed snapshot record", zap.Error(err))
			continue
		}
		if validateID(snap.ID) != nil || snap.Capacity < len(snap.Content) {
			s.logger.Warn("skipping invalid snapshot record", zap.String("snapshot_id", snap.ID))
			continue
		}
		if err := insertSnapshot(s.db, snap); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

// persistJSONL rewrites snapshots.jsonl from the database.
// The caller must hold s.mu.
func (s *Store) persistJSONL() error {
	snaps, err := s.listLocked()
	if err != nil {
		return err
	}
	records := make([]json.RawMessage, 0, len(snaps))
	for _, snap := range snaps {
		rec, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("marshal snapshot %s: %w", snap.ID, err)
		}
		records = append(records, rec)
	}
	return writeJSONL(filepath.Join(s.dataDir, snapshotsJSONL), records)
}

func insertSnapshot(db *sql.DB, snap Snapshot) error {
	_, err := db.Exec(insertSnapshotSQL,
		snap.ID, snap.Name, snap.Capacity, snap.Content, snap.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(r rowScanner) (Snapshot, error) {
	var (
		snap      Snapshot
		createdAt string
	)
	if err := r.Scan(&snap.ID, &snap.Name, &snap.Capacity, &snap.Content, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, err
		}
		return Snapshot{}, fmt.Errorf("scanning snapshot: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	snap.CreatedAt = t
	return snap, nil
}

func validateID(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", types.ErrInvalidID, id)
	}
	return nil
}

// generateUUID generates a new UUID v7 for snapshot IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
