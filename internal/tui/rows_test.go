package tui

import (
	"strings"
	"testing"

	"github.com/mvolden/perk/internal/engine"
)

func TestEffectLabel(t *testing.T) {
	cases := []struct {
		kind   engine.Kind
		effect float64
		want   string
	}{
		{engine.KindTap, 1, "+1/tap"},
		{engine.KindTap, 25, "+25/tap"},
		{engine.KindIdle, 0.5, "+0.5/s"},
		{engine.KindIdle, 360, "+360/s"},
		{engine.KindMultiplier, 1.5, "x1.5"},
		{engine.KindMultiplier, 5, "x5"},
	}
	for _, tc := range cases {
		if got := effectLabel(tc.kind, tc.effect); got != tc.want {
			t.Fatalf("effectLabel(%s, %v): expected %q, got %q", tc.kind, tc.effect, tc.want, got)
		}
	}
}

func TestRateLabel(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{0.5, "0.5"},
		{0.75, "0.75"},
		{1, "1"},
		{18.45, "18.45"},
		{999, "999"},
		{1500, "1.50K"},
	}
	for _, tc := range cases {
		if got := rateLabel(tc.in); got != tc.want {
			t.Fatalf("rateLabel(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestUpgradeRow(t *testing.T) {
	item := engine.Item{ID: 0, Name: "Stronger Thumb", Effect: 1, Owned: 2, Cost: 26.45, Affordable: true}
	row := upgradeRow(engine.KindTap, item)
	if len(row) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(row))
	}
	if row[0] != "Stronger Thumb" || row[1] != "+1/tap" || row[2] != "2" || row[3] != "26" {
		t.Fatalf("unexpected row: %v", row)
	}
}

func TestUpgradeRowUnaffordableIsStyled(t *testing.T) {
	item := engine.Item{Name: "Coffee Empire", Effect: 5, Cost: 2000000, Affordable: false}
	row := upgradeRow(engine.KindMultiplier, item)
	if !strings.Contains(row[3], "2.00M") {
		t.Fatalf("expected formatted cost in %q", row[3])
	}
}

func TestTruncateName(t *testing.T) {
	if got := truncateName("short", 18); got != "short" {
		t.Fatalf("short name should pass through, got %q", got)
	}
	got := truncateName("an exceedingly long upgrade name", 10)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}

func TestRenderFooterSegments(t *testing.T) {
	m := &Model{hasLast: true, lastEarned: 1500, allRuns: 3, allEarned: 2500000}
	out := m.renderFooter()
	for _, want := range []string{"space: tap", "Last run 1.50K", "All-time 2.50M over 3 runs"} {
		if !strings.Contains(out, want) {
			t.Fatalf("footer missing %q: %s", want, out)
		}
	}
}
