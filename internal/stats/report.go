// Package stats contains lifetime statistics calculations and reporting.
package stats

import (
	"context"
	"io"

	"github.com/davelt/healthtui/internal/model"
	"github.com/davelt/healthtui/internal/store"
)

// Trend length caps the sparkline input so a long archive stays readable.
const trendLimit = 200

// Report contains precomputed data for stats rendering.
type Report struct {
	Aggregates []model.TopicAggregate
	Activities []model.StoredActivity
	Trend      []bool
}

// BuildReport loads and prepares archived data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	aggs, err := st.TopicAggregates(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	activities, err := st.ListActivities(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	trend, err := st.RecentQuizResults(ctx, cfg, trendLimit)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Aggregates: aggs,
		Activities: activities,
		Trend:      trend,
	}, nil
}

// Render writes the full stats report: summary, per-topic table, accuracy
// trend, and activity history.
func Render(w io.Writer, report Report, trendWindow int) error {
	if err := RenderSummary(w, report); err != nil {
		return err
	}
	if err := RenderTopics(w, report.Aggregates); err != nil {
		return err
	}
	if err := RenderTrend(w, report.Trend, trendWindow); err != nil {
		return err
	}
	return RenderHistory(w, report.Activities)
}
