// ABOUTME: Feature builder that turns raw movie metadata into a tag sequence
// ABOUTME: Pure transform, no I/O; missing fields contribute nothing
package core

import (
	"strings"

	"github.com/harper/movierec-standalone/internal/models"
)

// MaxCastTags bounds how many leading cast names become tags.
const MaxCastTags = 3

// BuildTags concatenates a movie's descriptive fields into one ordered,
// lowercase token sequence: overview words, genres, keywords, the first
// MaxCastTags cast names and the director. Multi-word names are collapsed
// to a single token so "Science Fiction" and "Sam Mendes" each count as
// one tag.
func BuildTags(raw models.RawMovie) []string {
	tags := make([]string, 0, 32)

	for _, word := range strings.Fields(raw.Overview) {
		tags = append(tags, strings.ToLower(word))
	}
	for _, genre := range raw.Genres {
		if tag := collapse(genre); tag != "" {
			tags = append(tags, tag)
		}
	}
	for _, keyword := range raw.Keywords {
		if tag := collapse(keyword); tag != "" {
			tags = append(tags, tag)
		}
	}
	cast := raw.Cast
	if len(cast) > MaxCastTags {
		cast = cast[:MaxCastTags]
	}
	for _, name := range cast {
		if tag := collapse(name); tag != "" {
			tags = append(tags, tag)
		}
	}
	if tag := collapse(raw.Director); tag != "" {
		tags = append(tags, tag)
	}

	return tags
}

// collapse lowercases a name and removes all internal whitespace
func collapse(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
