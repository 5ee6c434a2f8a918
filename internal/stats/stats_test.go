package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/mvolden/perk/internal/model"
)

func TestRunMetrics(t *testing.T) {
	tapsPerMin, earnPerMin := RunMetrics(120, 600, 60000)
	if math.Abs(tapsPerMin-120) > 1e-9 {
		t.Fatalf("expected 120 taps/min, got %v", tapsPerMin)
	}
	if math.Abs(earnPerMin-600) > 1e-9 {
		t.Fatalf("expected 600 earned/min, got %v", earnPerMin)
	}
}

func TestRunMetricsZeroDuration(t *testing.T) {
	tapsPerMin, earnPerMin := RunMetrics(50, 100, 0)
	if tapsPerMin != 0 || earnPerMin != 0 {
		t.Fatalf("expected zero metrics for zero duration, got %v %v", tapsPerMin, earnPerMin)
	}
}

func TestMovingAverage(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	out := MovingAverage(values, 2)
	expected := []float64{1, 1.5, 2.5, 3.5, 4.5}
	for i := range expected {
		if math.Abs(out[i]-expected[i]) > 1e-9 {
			t.Fatalf("index %d: expected %v, got %v", i, expected[i], out[i])
		}
	}
}

func TestMovingAverageWindowOne(t *testing.T) {
	values := []float64{3, 1, 4}
	out := MovingAverage(values, 1)
	for i := range values {
		if out[i] != values[i] {
			t.Fatalf("window 1 should copy values, got %v", out)
		}
	}
}

func TestSparkline(t *testing.T) {
	out := Sparkline([]float64{0, 5, 10})
	if len(out) != 3 {
		t.Fatalf("expected 3 chars, got %q", out)
	}
	if out[0] != sparkChars[0] || out[2] != sparkChars[len(sparkChars)-1] {
		t.Fatalf("expected min/max endpoints, got %q", out)
	}
}

func TestSparklineFlat(t *testing.T) {
	out := Sparkline([]float64{7, 7, 7, 7})
	if len(out) != 4 {
		t.Fatalf("expected 4 chars, got %q", out)
	}
	for i := 1; i < len(out); i++ {
		if out[i] != out[0] {
			t.Fatalf("flat series should render uniformly, got %q", out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No runs found.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderSummary(t *testing.T) {
	runs := []model.RunAggregate{
		{RunID: 1, Taps: 100, Earned: 1500, Spent: 500, DurationMs: 60000},
		{RunID: 2, Taps: 50, Earned: 2500000, Spent: 0, DurationMs: 120000},
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, runs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Runs: 2", "Total taps: 150", "Total earned: 2.50M", "Best run: 2.50M earned", "Total spent: 500"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q: %s", want, out)
		}
	}
}

func TestRenderRunTableAlignment(t *testing.T) {
	endedAt := time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC)
	runs := []model.RunAggregate{
		{RunID: 1, Label: "morning", EndedAt: endedAt, DurationMs: 95000, Taps: 42, Purchases: 3, Earned: 999, Spent: 20},
	}
	var buf bytes.Buffer
	if err := RenderRunTable(&buf, runs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Ended", "morning", "1m35s", "42", "999"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q: %s", want, out)
		}
	}
}

func TestFormatTableWidths(t *testing.T) {
	lines := formatTable([]string{"A", "Name"}, [][]string{{"1", "long-name"}, {"22", "x"}}, map[int]bool{0: true})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], " 1") {
		t.Fatalf("expected right-aligned first column, got %q", lines[1])
	}
}
