// Package engine implements the idle-clicker game state.
package engine

import "math"

// Kind identifies which derived stat an upgrade feeds.
type Kind int

const (
	// KindTap upgrades raise the per-tap yield.
	KindTap Kind = iota
	// KindIdle upgrades raise the passive per-second yield.
	KindIdle
	// KindMultiplier upgrades raise the global multiplier.
	KindMultiplier
)

// Kinds lists the upgrade kinds in display order.
var Kinds = []Kind{KindTap, KindIdle, KindMultiplier}

// String returns the display label for the kind.
func (k Kind) String() string {
	switch k {
	case KindTap:
		return "Tap"
	case KindIdle:
		return "Idle"
	case KindMultiplier:
		return "Multiplier"
	default:
		return "Unknown"
	}
}

// GrowthRate returns the cost growth factor per owned unit.
func (k Kind) GrowthRate() float64 {
	if k == KindMultiplier {
		return 1.20
	}
	return 1.15
}

// Upgrade is a purchasable unit that permanently alters one derived stat.
// Effect is interpreted per kind: coffees added per tap, coffees added per
// second, or the multiplier value itself.
type Upgrade struct {
	ID       int
	Kind     Kind
	Name     string
	BaseCost float64
	Effect   float64
	Owned    int
}

// CurrentCost returns the price of the next unit. It is always derived from
// BaseCost and Owned, never stored.
func (u Upgrade) CurrentCost() float64 {
	return u.BaseCost * math.Pow(u.Kind.GrowthRate(), float64(u.Owned))
}
