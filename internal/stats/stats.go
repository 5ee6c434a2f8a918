// Package stats contains run statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mvolden/perk/internal/format"
	"github.com/mvolden/perk/internal/model"
)

const sparkChars = " .:-=+*#%@"

// RunMetrics computes taps-per-minute and coffees-earned-per-minute for a run.
func RunMetrics(taps int, earned float64, durationMs int64) (tapsPerMin, earnPerMin float64) {
	if durationMs <= 0 {
		return 0, 0
	}
	minutes := float64(durationMs) / 60000.0
	if minutes <= 0 {
		return 0, 0
	}
	tapsPerMin = float64(taps) / minutes
	earnPerMin = earned / minutes
	return tapsPerMin, earnPerMin
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints a summary block for runs.
func RenderSummary(w io.Writer, runs []model.RunAggregate) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs found.")
		return err
	}
	var totalEarned, totalSpent, totalEarnRate float64
	var totalTaps int
	bestEarned := 0.0
	for _, r := range runs {
		_, earnRate := RunMetrics(r.Taps, r.Earned, r.DurationMs)
		totalEarned += r.Earned
		totalSpent += r.Spent
		totalEarnRate += earnRate
		totalTaps += r.Taps
		if r.Earned > bestEarned {
			bestEarned = r.Earned
		}
	}
	count := float64(len(runs))
	lines := []string{
		"Summary",
		fmt.Sprintf("Runs: %d", len(runs)),
		fmt.Sprintf("Total taps: %d", totalTaps),
		fmt.Sprintf("Total earned: %s", format.Amount(totalEarned)),
		fmt.Sprintf("Total spent: %s", format.Amount(totalSpent)),
		fmt.Sprintf("Best run: %s earned", format.Amount(bestEarned)),
		fmt.Sprintf("Avg earn rate: %s/min", format.Amount(totalEarnRate/count)),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderRunTable prints an aligned per-run table, most recent last.
func RenderRunTable(w io.Writer, runs []model.RunAggregate) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs found.")
		return err
	}
	headers := []string{"Ended", "Label", "Duration", "Taps", "Buys", "Earned", "Spent"}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.EndedAt.Format("2006-01-02 15:04"),
			r.Label,
			formatDuration(r.DurationMs),
			fmt.Sprintf("%d", r.Taps),
			fmt.Sprintf("%d", r.Purchases),
			format.Amount(r.Earned),
			format.Amount(r.Spent),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true, 5: true, 6: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderEarningsCurve prints a smoothed per-run earnings plot plus a
// sparkline, sized to the given total width (0 means autodetect).
func RenderEarningsCurve(w io.Writer, runs []model.RunAggregate, window, totalWidth int) error {
	if len(runs) == 0 {
		return nil
	}
	earned := make([]float64, len(runs))
	for i, r := range runs {
		earned[i] = r.Earned
	}
	smoothed := MovingAverage(earned, window)
	if err := RenderCurve(w, "Earnings per run", smoothed, totalWidth, defaultPlotHeight); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Trend: %s\n\n", Sparkline(smoothed))
	return err
}

func formatDuration(ms int64) string {
	secs := ms / 1000
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
}
