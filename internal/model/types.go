// Package model defines shared data structures.
package model

import "time"

// RunConfig defines settings for a game run.
type RunConfig struct {
	Label string
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Since       *time.Time
	Last        int
	CurveWindow int
}

// RunStats captures a completed game run.
type RunStats struct {
	Label         string
	StartedAt     time.Time
	EndedAt       time.Time
	DurationMs    int64
	Taps          int
	Ticks         int
	Purchases     int
	Earned        float64
	Spent         float64
	EndCurrency   float64
	EndPerTap     float64
	EndPerSecond  float64
	EndMultiplier float64
}

// RunAggregate summarizes a run for reporting.
type RunAggregate struct {
	RunID      int64
	Label      string
	EndedAt    time.Time
	DurationMs int64
	Taps       int
	Purchases  int
	Earned     float64
	Spent      float64
}
