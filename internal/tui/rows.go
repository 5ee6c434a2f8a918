package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mvolden/perk/internal/engine"
	"github.com/mvolden/perk/internal/format"
)

var unaffordableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5A5A5A"))

func upgradeRow(kind engine.Kind, item engine.Item) table.Row {
	cost := format.Amount(item.Cost)
	if !item.Affordable {
		cost = unaffordableStyle.Render(cost)
	}
	return table.Row{
		truncateName(item.Name, 18),
		effectLabel(kind, item.Effect),
		fmt.Sprintf("%d", item.Owned),
		cost,
	}
}

// effectLabel renders the per-kind meaning of the effect magnitude.
func effectLabel(kind engine.Kind, effect float64) string {
	switch kind {
	case engine.KindTap:
		return fmt.Sprintf("+%s/tap", trimFloat(effect))
	case engine.KindIdle:
		return fmt.Sprintf("+%s/s", trimFloat(effect))
	case engine.KindMultiplier:
		return fmt.Sprintf("x%s", trimFloat(effect))
	default:
		return trimFloat(effect)
	}
}

// rateLabel renders a production rate: fractional rates keep their decimals
// (0.5/s must not floor to 0), large ones use the currency suffix ladder.
func rateLabel(v float64) string {
	if v >= 1000 {
		return format.Amount(v)
	}
	return trimFloat(v)
}

func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}

func truncateName(name string, width int) string {
	if runewidth.StringWidth(name) <= width {
		return name
	}
	return runewidth.Truncate(name, width, "…")
}
