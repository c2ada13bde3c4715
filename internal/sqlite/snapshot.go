package sqlite

import (
	"time"

	"github.com/mesh-intelligence/bounded/pkg/bstring"
)

// Snapshot is a stored copy of a bounded string. Content holds the raw bytes,
// which need not be valid UTF-8.
type Snapshot struct {
	ID        string    `json:"snapshot_id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Content   []byte    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Bounded rebuilds the bounded string with its original capacity.
func (s Snapshot) Bounded() *bstring.String {
	return bstring.FromBytes(s.Capacity, s.Content)
}
