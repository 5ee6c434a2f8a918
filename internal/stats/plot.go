// Package stats contains run statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	defaultPlotHeight   = 10
	minPlotWidth        = 10
	axisSeparator       = " | "
	terminalWidthBackup = 80
)

var axisLabels = []string{"max", "", "min"}

// RenderCurve prints a single-series column plot. Width is the total output
// width including the axis gutter; 0 autodetects the terminal.
func RenderCurve(w io.Writer, title string, values []float64, totalWidth, height int) error {
	if len(values) == 0 {
		return nil
	}
	if height <= 0 {
		height = defaultPlotHeight
	}
	width := PlotWidthFor(totalWidth)

	points := resample(values, width)
	minVal, maxVal := minMax(points)
	if math.Abs(maxVal-minVal) < 1e-9 {
		minVal--
		maxVal++
	}

	grid := make([][]byte, height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(" ", len(points)))
	}
	for x, v := range points {
		row := height - 1 - int(math.Round((v-minVal)/(maxVal-minVal)*float64(height-1)))
		if row < 0 {
			row = 0
		}
		if row >= height {
			row = height - 1
		}
		grid[row][x] = '*'
		for y := row + 1; y < height; y++ {
			grid[y][x] = '.'
		}
	}

	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "min=%.2f max=%.2f\n", minVal, maxVal); err != nil {
		return err
	}
	gutter := axisGutterWidth()
	for y, row := range grid {
		label := ""
		switch y {
		case 0:
			label = axisLabels[0]
		case height - 1:
			label = axisLabels[2]
		}
		if _, err := fmt.Fprintf(w, "%*s%s%s\n", gutter-len(axisSeparator), label, axisSeparator, string(row)); err != nil {
			return err
		}
	}
	return nil
}

// PlotWidthFor returns the plot body width available inside a total output
// width, autodetecting the terminal when totalWidth is 0.
func PlotWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		totalWidth = autoTotalWidth()
	}
	width := totalWidth - axisGutterWidth()
	if width < minPlotWidth {
		width = minPlotWidth
	}
	return width
}

func axisGutterWidth() int {
	return len(axisLabels[0]) + len(axisSeparator)
}

func autoTotalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// resample squeezes or keeps the series so it fits the plot width, averaging
// source points that map to the same column.
func resample(values []float64, width int) []float64 {
	if len(values) <= width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	counts := make([]int, width)
	for i, v := range values {
		col := i * width / len(values)
		if col >= width {
			col = width - 1
		}
		out[col] += v
		counts[col]++
	}
	for i := range out {
		if counts[i] > 0 {
			out[i] /= float64(counts[i])
		}
	}
	return out
}

func minMax(values []float64) (minVal, maxVal float64) {
	minVal = values[0]
	maxVal = values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}
