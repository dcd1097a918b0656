package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SourceRequestsRate shows collector API calls by endpoint.
func SourceRequestsRate() *timeseries.PanelBuilder {
	return series("Source Calls", "Listing source API calls per second, by endpoint", ThirdWidth).
		WithTarget(PromQuery(`medwatch:source_requests:rate5m`, "{{endpoint}}", "A")).
		Unit("reqps")
}

// DailyUsage shows source calls made since the quota last reset.
func DailyUsage() *timeseries.PanelBuilder {
	return series("Daily Usage", "Listing source calls made since the quota last reset", ThirdWidth).
		WithTarget(PromQuery(`medwatch_source_daily_usage{`+Job+`}`, "usage", "A"))
}

// LimitHits shows daily limit hits in the past day.
func LimitHits() *stat.PanelBuilder {
	return single("Limit Hits (24h)", "Times the daily source limit was reached in the last 24 hours", TSHeight, ThirdWidth).
		WithTarget(PromQuery(`increase(medwatch_source_daily_limit_hits_total{`+Job+`}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
