package engine

// Catalog returns the fixed upgrade seed data: the tap, idle, and multiplier
// groups in display order, all counts at zero. Group order never changes
// after initialization.
func Catalog() (tap, idle, multiplier []Upgrade) {
	tap = []Upgrade{
		{ID: 0, Kind: KindTap, Name: "Stronger Thumb", BaseCost: 20, Effect: 1},
		{ID: 1, Kind: KindTap, Name: "Double Shot", BaseCost: 250, Effect: 5},
		{ID: 2, Kind: KindTap, Name: "Espresso Machine", BaseCost: 3000, Effect: 25},
		{ID: 3, Kind: KindTap, Name: "Barista Training", BaseCost: 40000, Effect: 120},
	}
	idle = []Upgrade{
		{ID: 0, Kind: KindIdle, Name: "Drip Brewer", BaseCost: 15, Effect: 0.5},
		{ID: 1, Kind: KindIdle, Name: "Coffee Cart", BaseCost: 120, Effect: 2},
		{ID: 2, Kind: KindIdle, Name: "Corner Cafe", BaseCost: 1300, Effect: 12},
		{ID: 3, Kind: KindIdle, Name: "Roastery", BaseCost: 16000, Effect: 65},
		{ID: 4, Kind: KindIdle, Name: "Coffee Factory", BaseCost: 200000, Effect: 360},
	}
	multiplier = []Upgrade{
		{ID: 0, Kind: KindMultiplier, Name: "Premium Beans", BaseCost: 500, Effect: 1.5},
		{ID: 1, Kind: KindMultiplier, Name: "Golden Grinder", BaseCost: 10000, Effect: 2},
		{ID: 2, Kind: KindMultiplier, Name: "Caffeine Rush", BaseCost: 150000, Effect: 3},
		{ID: 3, Kind: KindMultiplier, Name: "Coffee Empire", BaseCost: 2000000, Effect: 5},
	}
	return tap, idle, multiplier
}
