package sqlite

// schemaSQL creates the snapshot table. The database is rebuilt from
// snapshots.jsonl on every Open, so no migrations are needed.
const schemaSQL = `
CREATE TABLE snapshots (
    snapshot_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    capacity INTEGER NOT NULL,
    content BLOB,
    created_at TEXT NOT NULL
);
CREATE INDEX idx_snapshots_name ON snapshots(name);
`

const (
	dbFileName        = "snapshots.db"
	snapshotsJSONL    = "snapshots.jsonl"
	snapshotColumns   = "snapshot_id, name, capacity, content, created_at"
	insertSnapshotSQL = "INSERT INTO snapshots (" + snapshotColumns + ") VALUES (?, ?, ?, ?, ?)"
)
