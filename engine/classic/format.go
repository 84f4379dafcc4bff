package classic

import (
	"math"
	"strconv"
	"time"
)

// Seconds returns d in seconds rounded to two decimals.
func Seconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}

// FormatSeconds renders d as seconds with exactly two decimals, e.g. "12.34".
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(Seconds(d), 'f', 2, 64)
}

// roundElapsed truncates the precision of d to what FormatSeconds shows.
func roundElapsed(d time.Duration) time.Duration {
	return time.Duration(math.Round(Seconds(d) * float64(time.Second)))
}
