// Package format renders coffee amounts for display.
package format

import (
	"fmt"
	"math"
)

type unit struct {
	threshold float64
	suffix    string
}

// Largest first so the first matching threshold wins.
var units = []unit{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// Amount renders a value the way the game displays currency and costs:
// whole numbers below 1000, then two decimals with a K/M/B/T suffix.
func Amount(v float64) string {
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}
	for _, u := range units {
		if v >= u.threshold {
			return fmt.Sprintf("%s%.2f%s", neg, v/u.threshold, u.suffix)
		}
	}
	return fmt.Sprintf("%s%d", neg, int64(math.Floor(v)))
}
