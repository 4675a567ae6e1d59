// ABOUTME: Loader for the TMDB 5000 dataset (movies + credits CSVs)
// ABOUTME: Joins the two files by movie id into RawMovie records, skipping bad rows
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/harper/movierec-standalone/internal/models"
)

// credits holds the cast and director extracted from one credits row.
type credits struct {
	cast     []string
	director string
}

// namedEntry is the common shape of the dataset's embedded JSON lists
// (genres, keywords, cast all carry a "name" field).
type namedEntry struct {
	Name string `json:"name"`
}

// crewEntry is one crew member in the credits "crew" column.
type crewEntry struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Load reads the movies and credits CSV files and joins them on movie id.
// Row order of the movies file becomes the canonical working-set order.
// Rows with an unparseable id or malformed embedded JSON are skipped with
// a warning; a missing credits entry just leaves cast and director empty.
func Load(moviesPath, creditsPath string) ([]models.RawMovie, error) {
	creditsByID, err := loadCredits(creditsPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(moviesPath)
	if err != nil {
		return nil, fmt.Errorf("opening movies file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading movies header: %w", err)
	}
	cols, err := columnIndex(header, "id", "title", "overview", "genres", "keywords")
	if err != nil {
		return nil, fmt.Errorf("movies file: %w", err)
	}

	var movies []models.RawMovie
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading movies row %d: %w", line+1, err)
		}
		line++

		if len(record) < len(header) {
			log.Printf("Warning: skipping movies row %d: %d fields, want %d", line, len(record), len(header))
			continue
		}

		id, err := strconv.Atoi(strings.TrimSpace(record[cols["id"]]))
		if err != nil {
			log.Printf("Warning: skipping movies row %d: bad id %q", line, record[cols["id"]])
			continue
		}

		genres, gerr := parseNames(record[cols["genres"]])
		keywords, kerr := parseNames(record[cols["keywords"]])
		if gerr != nil || kerr != nil {
			log.Printf("Warning: skipping movie %d: malformed embedded JSON", id)
			continue
		}

		raw := models.RawMovie{
			ID:       id,
			Title:    record[cols["title"]],
			Overview: record[cols["overview"]],
			Genres:   genres,
			Keywords: keywords,
		}
		if c, ok := creditsByID[id]; ok {
			raw.Cast = c.cast
			raw.Director = c.director
		}

		movies = append(movies, raw)
	}

	if len(movies) == 0 {
		return nil, fmt.Errorf("movies file %s contains no usable rows", moviesPath)
	}

	return movies, nil
}

// loadCredits reads the credits CSV into a movie id lookup.
func loadCredits(path string) (map[int]credits, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening credits file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading credits header: %w", err)
	}
	cols, err := columnIndex(header, "movie_id", "cast", "crew")
	if err != nil {
		return nil, fmt.Errorf("credits file: %w", err)
	}

	byID := make(map[int]credits)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading credits row %d: %w", line+1, err)
		}
		line++

		if len(record) < len(header) {
			log.Printf("Warning: skipping credits row %d: %d fields, want %d", line, len(record), len(header))
			continue
		}

		id, err := strconv.Atoi(strings.TrimSpace(record[cols["movie_id"]]))
		if err != nil {
			log.Printf("Warning: skipping credits row %d: bad movie_id %q", line, record[cols["movie_id"]])
			continue
		}

		cast, cerr := parseNames(record[cols["cast"]])
		director, derr := parseDirector(record[cols["crew"]])
		if cerr != nil || derr != nil {
			log.Printf("Warning: skipping credits for movie %d: malformed embedded JSON", id)
			continue
		}

		byID[id] = credits{cast: cast, director: director}
	}

	return byID, nil
}

// parseNames decodes an embedded JSON list and returns the name fields in order.
func parseNames(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var entries []namedEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Name != "" {
			names = append(names, e.Name)
		}
	}
	return names, nil
}

// parseDirector decodes the crew column and returns the first Director entry.
func parseDirector(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	var crew []crewEntry
	if err := json.Unmarshal([]byte(raw), &crew); err != nil {
		return "", err
	}

	for _, member := range crew {
		if member.Job == "Director" {
			return member.Name, nil
		}
	}
	return "", nil
}

// columnIndex maps required header names to their positions
func columnIndex(header []string, required ...string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return index, nil
}
