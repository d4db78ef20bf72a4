package search

import (
	"math"
	"strings"

	"timetable-sync/feature/schedule/models"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// minimumSimilarity is the percentage a fuzzy match must strictly exceed
// to count as a hit.
const minimumSimilarity = 30

// Entity is one resolvable timetable entity in the search index.
type Entity struct {
	Name string      `json:"name"`
	Kind models.Kind `json:"type"`
	ID   int         `json:"id"`
	URL  string      `json:"url"`
}

// Resolve finds the entity best matching a free-text query.
//
// A case-insensitive exact name match wins immediately. Otherwise every
// entity is scored by edit-distance similarity, both on the raw lowercased
// strings and on their Latin transliterations, keeping the higher of the two.
// The first entity reaching the best score wins ties, and nil is returned
// when no score strictly exceeds the minimum.
func Resolve(entities []Entity, query string) *Entity {
	if query == "" || len(entities) == 0 {
		return nil
	}

	queryLower := strings.ToLower(query)
	latinQuery := Transliterate(queryLower)

	bestScore := 0
	var best *Entity

	for i := range entities {
		name := strings.ToLower(entities[i].Name)

		if queryLower == name {
			return &entities[i]
		}

		score := similarity(queryLower, name)
		if latinScore := similarity(latinQuery, Transliterate(name)); latinScore > score {
			score = latinScore
		}

		if score > bestScore {
			bestScore = score
			best = &entities[i]
		}
	}

	if best != nil && bestScore > minimumSimilarity {
		return best
	}
	return nil
}

// similarity scores two strings on a 0-100 scale. Rounding to an integer
// keeps the strict threshold comparison away from float noise.
func similarity(a, b string) int {
	return int(math.Round(strutil.Similarity(a, b, metrics.NewLevenshtein()) * 100))
}
