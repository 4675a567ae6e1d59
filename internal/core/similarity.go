// ABOUTME: Pairwise cosine similarity matrix over count vectors
// ABOUTME: One-time offline cost; the recommender only reads rows afterwards
package core

import "math"

// SimilarityMatrix computes the dense pairwise cosine similarity matrix
// for the given feature matrix. The result is square and symmetric with
// the diagonal fixed at 1.0. Off-diagonal pairs where either row has a
// zero norm are 0. Only the upper triangle is computed; the lower is
// mirrored.
func SimilarityMatrix(features [][]float64) [][]float64 {
	n := len(features)

	norms := make([]float64, n)
	for i, row := range features {
		var sum float64
		for _, v := range row {
			sum += v * v
		}
		norms[i] = math.Sqrt(sum)
	}

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1.0
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var sim float64
			if norms[i] > 0 && norms[j] > 0 {
				var dot float64
				for c, v := range features[i] {
					dot += v * features[j][c]
				}
				sim = dot / (norms[i] * norms[j])
			}
			matrix[i][j] = sim
			matrix[j][i] = sim
		}
	}

	return matrix
}

// CosineSimilarity calculates cosine similarity between two vectors
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
