// ABOUTME: Tests for the TMDB dataset loader
// ABOUTME: Verifies CSV joining, embedded JSON parsing, and skip-and-continue

package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

const moviesCSV = `budget,genres,id,keywords,overview,title
100,"[{""id"": 28, ""name"": ""Action""}, {""id"": 878, ""name"": ""Science Fiction""}]",1,"[{""id"": 1, ""name"": ""space""}]",A crew explores space,Star Voyage
200,"[{""id"": 18, ""name"": ""Drama""}]",2,[],A quiet family story,Still Waters
300,not-json,3,[],Broken row,Broken Movie
`

const creditsCSV = `movie_id,title,cast,crew
1,Star Voyage,"[{""name"": ""Ada Lovelace""}, {""name"": ""Grace Hopper""}]","[{""name"": ""Stanley Kubrick"", ""job"": ""Director""}, {""name"": ""Someone Else"", ""job"": ""Producer""}]"
2,Still Waters,[],[]
`

func writeTestDataset(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	moviesPath := filepath.Join(dir, "movies.csv")
	if err := os.WriteFile(moviesPath, []byte(moviesCSV), 0644); err != nil {
		t.Fatalf("writing movies fixture: %v", err)
	}

	creditsPath := filepath.Join(dir, "credits.csv")
	if err := os.WriteFile(creditsPath, []byte(creditsCSV), 0644); err != nil {
		t.Fatalf("writing credits fixture: %v", err)
	}

	return moviesPath, creditsPath
}

func TestLoad_JoinsMoviesAndCredits(t *testing.T) {
	moviesPath, creditsPath := writeTestDataset(t)

	movies, err := Load(moviesPath, creditsPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Row 3 has malformed genres JSON and must be skipped.
	if len(movies) != 2 {
		t.Fatalf("Load() returned %d movies, want 2", len(movies))
	}

	first := movies[0]
	if first.ID != 1 || first.Title != "Star Voyage" {
		t.Errorf("first movie = %d %q, want 1 %q", first.ID, first.Title, "Star Voyage")
	}
	if len(first.Genres) != 2 || first.Genres[1] != "Science Fiction" {
		t.Errorf("genres = %v, want [Action, Science Fiction]", first.Genres)
	}
	if len(first.Keywords) != 1 || first.Keywords[0] != "space" {
		t.Errorf("keywords = %v, want [space]", first.Keywords)
	}
	if len(first.Cast) != 2 || first.Cast[0] != "Ada Lovelace" {
		t.Errorf("cast = %v, want [Ada Lovelace, Grace Hopper]", first.Cast)
	}
	if first.Director != "Stanley Kubrick" {
		t.Errorf("director = %q, want %q", first.Director, "Stanley Kubrick")
	}
}

func TestLoad_MissingCreditsLeavesFieldsEmpty(t *testing.T) {
	moviesPath, creditsPath := writeTestDataset(t)

	movies, err := Load(moviesPath, creditsPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	second := movies[1]
	if second.Title != "Still Waters" {
		t.Fatalf("second movie = %q, want Still Waters", second.Title)
	}
	if len(second.Cast) != 0 || second.Director != "" {
		t.Errorf("empty credits produced cast=%v director=%q", second.Cast, second.Director)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, creditsPath := writeTestDataset(t)

	if _, err := Load("/nonexistent/movies.csv", creditsPath); err == nil {
		t.Error("Load() with missing movies file should fail")
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	moviesPath := filepath.Join(dir, "movies.csv")
	if err := os.WriteFile(moviesPath, []byte("id,title\n1,Only Columns\n"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	creditsPath := filepath.Join(dir, "credits.csv")
	if err := os.WriteFile(creditsPath, []byte("movie_id,title,cast,crew\n"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(moviesPath, creditsPath); err == nil {
		t.Error("Load() without an overview column should fail")
	}
}

func TestParseDirector(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"director present", `[{"name": "Ava DuVernay", "job": "Director"}]`, "Ava DuVernay", false},
		{"no director", `[{"name": "Someone", "job": "Editor"}]`, "", false},
		{"empty", "", "", false},
		{"malformed", "{", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDirector(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDirector() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseDirector() = %q, want %q", got, tt.want)
			}
		})
	}
}
