package catalog

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	// DefaultSuggestions is the number of names returned by a one-shot search.
	DefaultSuggestions = 3
	// DefaultCutoff is the minimum similarity for typo-tolerant matches.
	DefaultCutoff = 0.6
)

// Closest returns up to n names resembling query. Names containing the query
// characters in order come first, closest first; the remaining slots are
// filled with names whose edit-distance similarity reaches cutoff.
func Closest(query string, names []string, n int, cutoff float64) []string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || n <= 0 {
		return nil
	}

	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	sort.Stable(ranks)

	seen := make(map[int]struct{}, len(ranks))
	out := make([]string, 0, n)
	for _, rank := range ranks {
		if len(out) == n {
			return out
		}
		seen[rank.OriginalIndex] = struct{}{}
		out = append(out, names[rank.OriginalIndex])
	}

	type scored struct {
		index int
		score float64
	}
	lower := strings.ToLower(trimmed)
	var similar []scored
	for i, name := range names {
		if _, ok := seen[i]; ok {
			continue
		}
		if score := Similarity(lower, strings.ToLower(name)); score >= cutoff {
			similar = append(similar, scored{index: i, score: score})
		}
	}
	sort.SliceStable(similar, func(a, b int) bool {
		return similar[a].score > similar[b].score
	})
	for _, s := range similar {
		if len(out) == n {
			break
		}
		out = append(out, names[s.index])
	}
	return out
}

// Similarity returns 1 minus the edit distance normalised by the longer
// string, so identical strings score 1 and unrelated ones approach 0.
func Similarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
