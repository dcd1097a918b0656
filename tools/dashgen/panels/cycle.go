package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// NextCycle shows time until the next scheduled poll cycle.
func NextCycle() *stat.PanelBuilder {
	return single("Next Cycle", "Time until the next scheduled poll cycle", TSHeight, StatWidth).
		WithTarget(PromQuery(`medwatch_scheduler_next_cycle_timestamp{`+Job+`} - time()`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsRedGreen(0)).
		ColorMode(common.BigValueColorModeBackground)
}

// ListingsRate shows raw listings fetched per minute by kind.
func ListingsRate() *timeseries.PanelBuilder {
	return series("Listings / min", "Raw listings received from the source per minute", StatWidth).
		WithTarget(PromQuery(`medwatch:listings_fetched:rate5m * 60`, "{{kind}}", "A"))
}

// CycleFailures shows per-search failures by reason.
func CycleFailures() *timeseries.PanelBuilder {
	return series("Search Failures / min", "Per-search cycle failures per minute, by reason", StatWidth).
		WithTarget(PromQuery(`medwatch:cycle_failures:rate5m * 60`, "{{reason}}", "A")).
		Legend(TableLegend("mean", "max")).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds())
}

// CycleDuration shows p95 duration of whole cycles and of single searches.
func CycleDuration() *timeseries.PanelBuilder {
	return series("Cycle Duration (p95)", "95th percentile duration of full cycles and single searches", StatWidth).
		WithTarget(PromQuery(quantile("0.95", "medwatch_cycle_duration_seconds", ""), "cycle", "A")).
		WithTarget(PromQuery(quantile("0.95", "medwatch_search_evaluation_duration_seconds", "kind"), "{{kind}}", "B")).
		Unit("s").
		Tooltip(MultiTooltip())
}
