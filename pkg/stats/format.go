package stats

import (
	"fmt"
	"math"
)

const secondsPerDay = 24 * 60 * 60

// FormatDuration renders whole seconds as "[N day[s], ]H:MM:SS".
// Negative values use floored days, so -10 renders as "-1 day, 23:59:50".
func FormatDuration(seconds int64) string {
	days := seconds / secondsPerDay
	rem := seconds % secondsPerDay
	if rem < 0 {
		rem += secondsPerDay
		days--
	}
	clock := fmt.Sprintf("%d:%02d:%02d", rem/3600, (rem%3600)/60, rem%60)
	switch {
	case days == 0:
		return clock
	case days == 1 || days == -1:
		return fmt.Sprintf("%d day, %s", days, clock)
	default:
		return fmt.Sprintf("%d days, %s", days, clock)
	}
}

// truncateSeconds drops the fractional part of a second count.
func truncateSeconds(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxInt64 {
		return 0, fmt.Errorf("%w: duration %v out of range", ErrNoValues, v)
	}
	return int64(v), nil
}
