package stats

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderCurveOutputShape(t *testing.T) {
	var buf bytes.Buffer
	values := []float64{1, 2, 3, 4, 5, 6}
	if err := RenderCurve(&buf, "Earnings per run", values, 40, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Title, min/max line, then one line per plot row.
	if len(lines) != 2+5 {
		t.Fatalf("expected 7 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "Earnings per run" {
		t.Fatalf("unexpected title line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "min=1.00") || !strings.Contains(lines[1], "max=6.00") {
		t.Fatalf("unexpected range line: %q", lines[1])
	}
	if !strings.Contains(buf.String(), "*") {
		t.Fatalf("expected plotted points in output")
	}
}

func TestRenderCurveEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderCurve(&buf, "x", nil, 40, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for empty series, got %q", buf.String())
	}
}

func TestPlotWidthFor(t *testing.T) {
	total := 80
	expected := total - axisGutterWidth()
	if expected < minPlotWidth {
		expected = minPlotWidth
	}
	if got := PlotWidthFor(total); got != expected {
		t.Fatalf("expected width %d, got %d", expected, got)
	}
	if got := PlotWidthFor(5); got != minPlotWidth {
		t.Fatalf("expected min width %d, got %d", minPlotWidth, got)
	}
}

func TestResample(t *testing.T) {
	values := []float64{1, 1, 3, 3}
	out := resample(values, 2)
	if len(out) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(out))
	}
	if out[0] != 1 || out[1] != 3 {
		t.Fatalf("unexpected resample: %v", out)
	}
	same := resample([]float64{1, 2}, 10)
	if len(same) != 2 || same[0] != 1 || same[1] != 2 {
		t.Fatalf("short series should copy through, got %v", same)
	}
}
