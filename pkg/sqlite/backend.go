// Package sqlite provides the public API for the SQLite snapshot store.
// It exposes the factory and the store contract while keeping the
// implementation internal.
package sqlite

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/bounded/internal/sqlite"
	"github.com/mesh-intelligence/bounded/pkg/bstring"
)

// Snapshot is a stored copy of a bounded string.
type Snapshot = sqlite.Snapshot

// Store persists named snapshots of bounded strings. Implementations are
// safe for concurrent use.
type Store interface {
	Save(name string, str *bstring.String) (string, error)
	Get(id string) (Snapshot, error)
	Load(id string) (*bstring.String, error)
	List() ([]Snapshot, error)
	Delete(id string) error
	Close() error
}

// Open opens the snapshot store in dataDir, creating it if needed.
// A nil logger discards store events.
//
// Example:
//
//	store, err := sqlite.Open(".bounded-db", logger)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//	id, err := store.Save("greeting", bstring.From(64, "hello"))
func Open(dataDir string, logger *zap.Logger) (Store, error) {
	s, err := sqlite.Open(dataDir, sqlite.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return s, nil
}
