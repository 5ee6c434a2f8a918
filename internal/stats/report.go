// Package stats contains run statistics calculations and reporting.
package stats

import (
	"context"

	"github.com/mvolden/perk/internal/model"
	"github.com/mvolden/perk/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Runs []model.RunAggregate
}

// BuildReport loads and prepares run data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	runs, err := st.ListRuns(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	return Report{Runs: runs}, nil
}
