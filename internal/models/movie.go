// ABOUTME: Data models for movies and recommendations
// ABOUTME: RawMovie is the dataset shape; Movie is the persisted working-set row
package models

// RawMovie is one joined row from the movies and credits files before
// feature building. Cast holds the billed cast in dataset order.
type RawMovie struct {
	ID       int
	Title    string
	Overview string
	Genres   []string
	Keywords []string
	Cast     []string
	Director string
}

// Movie is a working-set entry. Row order in the table is the canonical
// order shared with the similarity matrix.
type Movie struct {
	ID    int      `json:"movie_id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags,omitempty"`
}

// Recommendation is one ranked result for a query title.
type Recommendation struct {
	MovieID    int     `json:"movie_id"`
	Title      string  `json:"title"`
	Similarity float64 `json:"similarity"`
	PosterURL  string  `json:"poster_url,omitempty"`
}
