package session

import (
	"sort"
	"strconv"
)

// SortChapterKeys orders chapter keys for navigation: when two keys both
// parse as decimal numbers they compare numerically, so "10" lands after
// "9"; any other pair falls back to plain string comparison.
func SortChapterKeys(keys []string) []string {
	sorted := make([]string, len(keys))
	copy(sorted, keys)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, aerr := strconv.ParseFloat(sorted[i], 64)
		b, berr := strconv.ParseFloat(sorted[j], 64)
		if aerr == nil && berr == nil {
			return a < b
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}
