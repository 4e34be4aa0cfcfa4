package ui

import (
	"sort"
	"strings"
)

// MaxSuggestionDistance is the largest edit distance still offered as a
// "did you mean" suggestion.
const MaxSuggestionDistance = 3

// FindSimilar finds candidates within MaxSuggestionDistance of target,
// closest first. Matching is case-insensitive.
//
// Example:
//
//	FindSimilar("base65", []string{"hex", "base64", "bytes"})
//	// Returns: ["base64"]
func FindSimilar(target string, candidates []string) []string {
	type scored struct {
		value    string
		distance int
	}

	var matches []scored
	for _, candidate := range candidates {
		dist := LevenshteinDistance(strings.ToLower(target), strings.ToLower(candidate))
		if dist <= MaxSuggestionDistance {
			matches = append(matches, scored{candidate, dist})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	result := make([]string, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.value)
	}
	return result
}

// LevenshteinDistance calculates the minimum number of single-character
// edits (insertions, deletions, or substitutions) required to change one
// string into the other.
func LevenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			d := matrix[i-1][j] + 1 // deletion
			if ins := matrix[i][j-1] + 1; ins < d {
				d = ins
			}
			if sub := matrix[i-1][j-1] + cost; sub < d {
				d = sub
			}
			matrix[i][j] = d
		}
	}

	return matrix[len(s1)][len(s2)]
}
