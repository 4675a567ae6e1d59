// ABOUTME: Persistence for the movie table and similarity matrix artifacts
// ABOUTME: Writes both in one transaction under one build id; validates on load
package sqlite

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/harper/movierec-standalone/internal/models"
)

// ErrCorruptArtifact is returned when the artifacts are missing,
// unreadable, or dimensionally inconsistent. Queries must never be
// served against a movie table paired with a mismatched matrix.
var ErrCorruptArtifact = errors.New("corrupt artifact")

// ArtifactStore persists and loads the precomputed artifacts
type ArtifactStore struct {
	db *DB
}

// NewArtifactStore creates a new ArtifactStore
func NewArtifactStore(db *DB) *ArtifactStore {
	return &ArtifactStore{db: db}
}

// Save replaces both artifacts atomically. The movie table and the
// similarity matrix are stamped with the same freshly generated build id,
// so a reader can never observe rows from two different builds.
func (s *ArtifactStore) Save(movies []models.Movie, similarity [][]float64, vocabSize int) (string, error) {
	if len(movies) != len(similarity) {
		return "", fmt.Errorf("movie table has %d rows but matrix has %d", len(movies), len(similarity))
	}

	buildID := uuid.New().String()

	tx, err := s.db.Conn().Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"build_info", "movies", "similarity"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return "", fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if _, err := tx.Exec(`
		INSERT INTO build_info (id, build_id, movie_count, vocab_size)
		VALUES (1, ?, ?, ?)
	`, buildID, len(movies), vocabSize); err != nil {
		return "", fmt.Errorf("writing build info: %w", err)
	}

	movieStmt, err := tx.Prepare("INSERT INTO movies (row_idx, movie_id, title, tags) VALUES (?, ?, ?, ?)")
	if err != nil {
		return "", fmt.Errorf("preparing movie insert: %w", err)
	}
	defer movieStmt.Close()

	for i, m := range movies {
		if _, err := movieStmt.Exec(i, m.ID, m.Title, strings.Join(m.Tags, " ")); err != nil {
			return "", fmt.Errorf("writing movie row %d: %w", i, err)
		}
	}

	simStmt, err := tx.Prepare("INSERT INTO similarity (row_idx, vector) VALUES (?, ?)")
	if err != nil {
		return "", fmt.Errorf("preparing similarity insert: %w", err)
	}
	defer simStmt.Close()

	for i, row := range similarity {
		if len(row) != len(movies) {
			return "", fmt.Errorf("matrix row %d has %d columns, want %d", i, len(row), len(movies))
		}
		if _, err := simStmt.Exec(i, vectorToBlob(row)); err != nil {
			return "", fmt.Errorf("writing similarity row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing artifacts: %w", err)
	}

	return buildID, nil
}

// Load reads both artifacts and validates that they belong together.
// Any inconsistency fails with ErrCorruptArtifact: missing build info,
// row counts that disagree with the recorded movie count, gaps in the
// canonical index order, or a matrix row whose dimension differs from
// the movie table length.
func (s *ArtifactStore) Load() ([]models.Movie, [][]float64, error) {
	var (
		buildID    string
		movieCount int
	)
	err := s.db.QueryRow("SELECT build_id, movie_count FROM build_info WHERE id = 1").
		Scan(&buildID, &movieCount)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: missing build info: %v", ErrCorruptArtifact, err)
	}

	movies, err := s.loadMovies(movieCount)
	if err != nil {
		return nil, nil, err
	}

	similarity, err := s.loadSimilarity(movieCount)
	if err != nil {
		return nil, nil, err
	}

	return movies, similarity, nil
}

// BuildID returns the build id of the stored artifacts.
func (s *ArtifactStore) BuildID() (string, error) {
	var buildID string
	err := s.db.QueryRow("SELECT build_id FROM build_info WHERE id = 1").Scan(&buildID)
	if err != nil {
		return "", fmt.Errorf("%w: missing build info: %v", ErrCorruptArtifact, err)
	}
	return buildID, nil
}

func (s *ArtifactStore) loadMovies(movieCount int) ([]models.Movie, error) {
	rows, err := s.db.Query("SELECT row_idx, movie_id, title, tags FROM movies ORDER BY row_idx ASC")
	if err != nil {
		return nil, fmt.Errorf("%w: reading movies: %v", ErrCorruptArtifact, err)
	}
	defer func() { _ = rows.Close() }()

	movies := make([]models.Movie, 0, movieCount)
	for rows.Next() {
		var (
			rowIdx int
			movie  models.Movie
			tags   string
		)
		if err := rows.Scan(&rowIdx, &movie.ID, &movie.Title, &tags); err != nil {
			return nil, fmt.Errorf("%w: scanning movie row: %v", ErrCorruptArtifact, err)
		}
		if rowIdx != len(movies) {
			return nil, fmt.Errorf("%w: movie rows not contiguous at index %d", ErrCorruptArtifact, rowIdx)
		}
		if tags != "" {
			movie.Tags = strings.Fields(tags)
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading movies: %v", ErrCorruptArtifact, err)
	}

	if len(movies) != movieCount {
		return nil, fmt.Errorf("%w: build info records %d movies, table has %d",
			ErrCorruptArtifact, movieCount, len(movies))
	}

	return movies, nil
}

func (s *ArtifactStore) loadSimilarity(movieCount int) ([][]float64, error) {
	rows, err := s.db.Query("SELECT row_idx, vector FROM similarity ORDER BY row_idx ASC")
	if err != nil {
		return nil, fmt.Errorf("%w: reading similarity: %v", ErrCorruptArtifact, err)
	}
	defer func() { _ = rows.Close() }()

	similarity := make([][]float64, 0, movieCount)
	for rows.Next() {
		var (
			rowIdx int
			blob   []byte
		)
		if err := rows.Scan(&rowIdx, &blob); err != nil {
			return nil, fmt.Errorf("%w: scanning similarity row: %v", ErrCorruptArtifact, err)
		}
		if rowIdx != len(similarity) {
			return nil, fmt.Errorf("%w: similarity rows not contiguous at index %d", ErrCorruptArtifact, rowIdx)
		}

		vector := blobToVector(blob)
		if len(vector) != movieCount {
			return nil, fmt.Errorf("%w: similarity row %d has dimension %d, want %d",
				ErrCorruptArtifact, rowIdx, len(vector), movieCount)
		}
		similarity = append(similarity, vector)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading similarity: %v", ErrCorruptArtifact, err)
	}

	if len(similarity) != movieCount {
		return nil, fmt.Errorf("%w: matrix has %d rows, movie table has %d",
			ErrCorruptArtifact, len(similarity), movieCount)
	}

	return similarity, nil
}

// vectorToBlob converts a float64 slice to binary blob
func vectorToBlob(vector []float64) []byte {
	blob := make([]byte, len(vector)*8)
	for i, v := range vector {
		binary.LittleEndian.PutUint64(blob[i*8:], math.Float64bits(v))
	}
	return blob
}

// blobToVector converts a binary blob to float64 slice
func blobToVector(blob []byte) []float64 {
	count := len(blob) / 8
	vector := make([]float64, count)
	for i := 0; i < count; i++ {
		bits := binary.LittleEndian.Uint64(blob[i*8:])
		vector[i] = math.Float64frombits(bits)
	}
	return vector
}
