// ABOUTME: Bag-of-words vectorizer over a bounded vocabulary
// ABOUTME: Builds the top-K vocabulary and the per-movie count matrix
package core

import "sort"

// Vocabulary maps tokens to stable column indexes, bounded to the top-K
// tokens by corpus frequency with stop-words excluded. Column order is
// frequency descending, token ascending on ties, so the same corpus and
// the same K always produce the same columns.
type Vocabulary struct {
	index  map[string]int
	tokens []string
}

// BuildVocabulary derives a vocabulary from the full corpus of tag
// sequences. K bounds the vocabulary size; a non-positive K keeps every
// non-stop-word token.
func BuildVocabulary(corpus [][]string, k int) *Vocabulary {
	freq := make(map[string]int)
	for _, tags := range corpus {
		for _, tag := range tags {
			if tag == "" || IsStopWord(tag) {
				continue
			}
			freq[tag]++
		}
	}

	tokens := make([]string, 0, len(freq))
	for tok := range freq {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if freq[tokens[i]] != freq[tokens[j]] {
			return freq[tokens[i]] > freq[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})

	if k > 0 && len(tokens) > k {
		tokens = tokens[:k]
	}

	index := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		index[tok] = i
	}

	return &Vocabulary{index: index, tokens: tokens}
}

// Size returns the number of vocabulary columns.
func (v *Vocabulary) Size() int {
	return len(v.tokens)
}

// Tokens returns the vocabulary tokens in column order.
func (v *Vocabulary) Tokens() []string {
	return v.tokens
}

// Column returns the column index for a token, or -1 if the token is not
// in the vocabulary.
func (v *Vocabulary) Column(token string) int {
	if i, ok := v.index[token]; ok {
		return i
	}
	return -1
}

// Vectorize converts one tag sequence into a dense count vector over the
// vocabulary. Out-of-vocabulary tokens are ignored.
func (v *Vocabulary) Vectorize(tags []string) []float64 {
	vec := make([]float64, len(v.tokens))
	for _, tag := range tags {
		if col := v.Column(tag); col >= 0 {
			vec[col]++
		}
	}
	return vec
}

// CountMatrix builds the dense feature matrix for the whole corpus:
// row i is the count vector of corpus entry i.
func (v *Vocabulary) CountMatrix(corpus [][]string) [][]float64 {
	matrix := make([][]float64, len(corpus))
	for i, tags := range corpus {
		matrix[i] = v.Vectorize(tags)
	}
	return matrix
}
