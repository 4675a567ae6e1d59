// ABOUTME: Top-N recommender over the loaded movie table and similarity matrix
// ABOUTME: Stateless queries against immutable in-memory artifacts
package core

import (
	"errors"
	"fmt"
	"sort"

	"github.com/harper/movierec-standalone/internal/models"
)

// ErrNotFound is returned when a query title has no exact match in the
// movie table.
var ErrNotFound = errors.New("title not found")

// Recommender answers similarity queries against a movie table and its
// matching similarity matrix. Both are read-only after construction, so
// concurrent queries need no locking.
type Recommender struct {
	movies     []models.Movie
	similarity [][]float64
}

// NewRecommender pairs a movie table with its similarity matrix. The
// caller (the artifact loader) is responsible for having validated that
// the two were built together.
func NewRecommender(movies []models.Movie, similarity [][]float64) *Recommender {
	return &Recommender{movies: movies, similarity: similarity}
}

// Movies returns the movie table in canonical row order.
func (r *Recommender) Movies() []models.Movie {
	return r.movies
}

// FindIndex resolves a title to its row index with a case-sensitive exact
// match. When duplicate titles exist the first (lowest) row index wins.
func (r *Recommender) FindIndex(title string) (int, error) {
	for i, m := range r.movies {
		if m.Title == title {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrNotFound, title)
}

// Recommend returns the topN movies most similar to the given title,
// ordered by similarity descending with ties broken by ascending row
// index. The query movie itself is excluded. For any resolvable title
// this never fails, even when every other similarity is zero.
func (r *Recommender) Recommend(title string, topN int) ([]models.Recommendation, error) {
	idx, err := r.FindIndex(title)
	if err != nil {
		return nil, err
	}

	row := r.similarity[idx]
	candidates := make([]int, 0, len(r.movies)-1)
	for i := range r.movies {
		if i != idx {
			candidates = append(candidates, i)
		}
	}

	sort.Slice(candidates, func(a, b int) bool {
		i, j := candidates[a], candidates[b]
		if row[i] != row[j] {
			return row[i] > row[j]
		}
		return i < j
	})

	if topN > len(candidates) {
		topN = len(candidates)
	}

	results := make([]models.Recommendation, topN)
	for k := 0; k < topN; k++ {
		i := candidates[k]
		results[k] = models.Recommendation{
			MovieID:    r.movies[i].ID,
			Title:      r.movies[i].Title,
			Similarity: row[i],
		}
	}

	return results, nil
}
