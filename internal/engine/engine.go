package engine

import "sync"

// Engine owns all game state: the coffee accumulator, the three upgrade
// groups, and the derived production stats. All mutations are serialized
// behind a mutex so timer-driven ticks and user input may arrive from
// different goroutines.
type Engine struct {
	mu sync.Mutex

	currency float64

	tap        []Upgrade
	idle       []Upgrade
	multiplier []Upgrade

	perTap    float64
	perSecond float64
	multTotal float64

	totals Totals
}

// Snapshot is a read-only copy of observable engine state for rendering.
type Snapshot struct {
	Currency   float64
	PerTap     float64
	PerSecond  float64
	Multiplier float64
	Groups     map[Kind][]Item
}

// Item is the rendering view of one upgrade.
type Item struct {
	ID         int
	Name       string
	Effect     float64
	Owned      int
	Cost       float64
	Affordable bool
}

// Totals accumulates per-run counters for the run recorder.
type Totals struct {
	Taps      int
	Ticks     int
	Purchases int
	Earned    float64
	Spent     float64
}

// New seeds the catalog and computes the initial derived stats
// (per-tap 1, per-second 0, multiplier 1).
func New() *Engine {
	e := &Engine{}
	e.tap, e.idle, e.multiplier = Catalog()
	e.recompute()
	return e
}

// Tap grants one tap's worth of coffees and returns the amount gained.
// It never fails.
func (e *Engine) Tap() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	gain := e.perTap * e.multTotal
	e.currency += gain
	e.totals.Taps++
	e.totals.Earned += gain
	return gain
}

// Tick grants one second of passive production and returns the amount
// gained. With no idle upgrades owned the gain is zero.
func (e *Engine) Tick() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	gain := e.perSecond * e.multTotal
	e.currency += gain
	e.totals.Ticks++
	e.totals.Earned += gain
	return gain
}

// Purchase buys one unit of the upgrade at index within the kind's group.
// An unaffordable purchase is a silent no-op returning false; so is an
// out-of-range index, which only a misbehaving caller can produce.
func (e *Engine) Purchase(kind Kind, index int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	group := e.group(kind)
	if group == nil || index < 0 || index >= len(group) {
		return false
	}
	cost := group[index].CurrentCost()
	if e.currency < cost {
		return false
	}
	e.currency -= cost
	group[index].Owned++
	e.totals.Purchases++
	e.totals.Spent += cost
	e.recompute()
	return true
}

// Snapshot returns a deep copy of the observable state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{
		Currency:   e.currency,
		PerTap:     e.perTap,
		PerSecond:  e.perSecond,
		Multiplier: e.multTotal,
		Groups:     make(map[Kind][]Item, len(Kinds)),
	}
	for _, kind := range Kinds {
		group := e.group(kind)
		items := make([]Item, len(group))
		for i, u := range group {
			cost := u.CurrentCost()
			items[i] = Item{
				ID:         u.ID,
				Name:       u.Name,
				Effect:     u.Effect,
				Owned:      u.Owned,
				Cost:       cost,
				Affordable: e.currency >= cost,
			}
		}
		snap.Groups[kind] = items
	}
	return snap
}

// Totals returns the run counters accumulated so far.
func (e *Engine) Totals() Totals {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totals
}

func (e *Engine) group(kind Kind) []Upgrade {
	switch kind {
	case KindTap:
		return e.tap
	case KindIdle:
		return e.idle
	case KindMultiplier:
		return e.multiplier
	default:
		return nil
	}
}

// recompute re-derives the production stats from owned counts. It is a pure
// function of the upgrade groups and idempotent, so extra calls are harmless.
// Only Purchase changes owned counts, so only Purchase (and New) call it.
func (e *Engine) recompute() {
	perTap := 1.0
	for _, u := range e.tap {
		perTap += float64(u.Owned) * u.Effect
	}
	perSecond := 0.0
	for _, u := range e.idle {
		perSecond += float64(u.Owned) * u.Effect
	}
	mult := 1.0
	for _, u := range e.multiplier {
		mult += float64(u.Owned) * (u.Effect - 1)
	}
	e.perTap = perTap
	e.perSecond = perSecond
	e.multTotal = mult
}
