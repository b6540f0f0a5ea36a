package stats

import (
	"cmp"
)

// Mode returns the most frequent value and its count.
// Among tied values the smallest one wins.
func Mode[T cmp.Ordered](values []T) (T, int, error) {
	var best T
	if len(values) == 0 {
		return best, 0, ErrNoValues
	}

	counts := make(map[T]int)
	bestCount := 0
	for _, v := range values {
		counts[v]++
		c := counts[v]
		if c > bestCount || (c == bestCount && v < best) {
			best, bestCount = v, c
		}
	}
	return best, bestCount, nil
}
