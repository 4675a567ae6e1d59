// ABOUTME: SQLite schema for the precomputed recommendation artifacts
// ABOUTME: Movie table and similarity matrix share one build id and one file
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Build metadata singleton; both artifacts are written under one build_id
CREATE TABLE IF NOT EXISTS build_info (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    build_id TEXT NOT NULL,
    movie_count INTEGER NOT NULL,
    vocab_size INTEGER NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Movie table; row_idx is the canonical index order
CREATE TABLE IF NOT EXISTS movies (
    row_idx INTEGER PRIMARY KEY,
    movie_id INTEGER NOT NULL,
    title TEXT NOT NULL,
    tags TEXT NOT NULL
);

-- Similarity matrix, one row per record as a float64 blob
CREATE TABLE IF NOT EXISTS similarity (
    row_idx INTEGER PRIMARY KEY,
    vector BLOB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_movies_title ON movies(title);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
